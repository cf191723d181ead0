// Package geocode resolves free-form addresses to coordinates.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dispatch/config"
	"dispatch/internal/domain/service"

	"github.com/pkg/errors"
)

// yandexGeocoder implements service.Geocoder with the Yandex Geocoder HTTP API.
type yandexGeocoder struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// yandexResponse covers the part of the Yandex answer we read.
type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					MetaDataProperty struct {
						GeocoderMetaData struct {
							Text string `json:"text"`
						} `json:"GeocoderMetaData"`
					} `json:"metaDataProperty"`
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// NewYandexGeocoder creates a geocoder from configuration.
func NewYandexGeocoder(cfg *config.GeocoderConfig, logger *slog.Logger) service.Geocoder {
	g := &yandexGeocoder{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
	if cfg != nil {
		g.apiKey = cfg.APIKey
		g.endpoint = cfg.Endpoint
		if cfg.Timeout > 0 {
			g.httpClient.Timeout = cfg.Timeout
		}
	}

	return g
}

// Geocode returns the first match for address. A missing API key or an
// empty answer yields a zero result without error.
func (g *yandexGeocoder) Geocode(ctx context.Context, address string) (service.GeocodeResult, error) {
	if g.apiKey == "" {
		g.logger.WarnContext(ctx, "Geocoder API key is not set, skipping geocoding",
			slog.String("address", address),
		)

		return service.GeocodeResult{}, nil
	}

	query := url.Values{}
	query.Set("apikey", g.apiKey)
	query.Set("format", "json")
	query.Set("geocode", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return service.GeocodeResult{}, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return service.GeocodeResult{}, errors.Wrap(err, "geocoder request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return service.GeocodeResult{}, errors.Errorf("geocoder returned non-success status: %d", resp.StatusCode)
	}

	var body yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return service.GeocodeResult{}, errors.Wrap(err, "failed to decode geocoder response")
	}

	members := body.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return service.GeocodeResult{}, nil
	}

	geoObject := members[0].GeoObject
	lat, lon, err := parsePos(geoObject.Point.Pos)
	if err != nil {
		return service.GeocodeResult{}, err
	}

	return service.GeocodeResult{
		Latitude:  lat,
		Longitude: lon,
		Address:   geoObject.MetaDataProperty.GeocoderMetaData.Text,
	}, nil
}

// parsePos reads the "lon lat" pair Yandex uses.
func parsePos(pos string) (lat, lon float64, err error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("unexpected geocoder position %q", pos)
	}

	lon, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid longitude %q", fields[0])
	}
	lat, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid latitude %q", fields[1])
	}

	return lat, lon, nil
}
