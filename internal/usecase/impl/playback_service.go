package impl

import (
	"context"
	"log/slog"
	"time"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// playbackService implements the PlaybackUsecase interface.
type playbackService struct {
	beaconRepo repository.BeaconRepository
	metrics    service.MetricsRecorder
	location   *time.Location
	logger     *slog.Logger
	now        func() time.Time
}

// PlaybackServiceParams holds dependencies for PlaybackService, injected by Fx.
type PlaybackServiceParams struct {
	fx.In

	BeaconRepo repository.BeaconRepository
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPlaybackService is the constructor for playbackService. Calendar days are
// cut in the configured timezone.
func NewPlaybackService(params PlaybackServiceParams) (usecase.PlaybackUsecase, error) {
	location, err := time.LoadLocation(params.Config.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load timezone %q", params.Config.Timezone)
	}

	return &playbackService{
		beaconRepo: params.BeaconRepo,
		metrics:    params.Metrics,
		location:   location,
		logger:     params.Logger,
		now:        time.Now,
	}, nil
}

func (srv *playbackService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record stores a beacon fix. A missing timestamp means now.
func (srv *playbackService) Record(ctx context.Context, input *usecase.BeaconInput, source string) (*entity.BeaconCoordinate, error) {
	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
	}

	coordinate := &entity.BeaconCoordinate{
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		RecordedAt: srv.now(),
	}
	if input.RecordedAt != nil {
		coordinate.RecordedAt = *input.RecordedAt
	}

	if err := srv.beaconRepo.Create(ctx, coordinate); err != nil {
		return nil, translateError(err, "failed to record beacon coordinate")
	}

	srv.metrics.BeaconRecorded(source)
	srv.log(ctx).Debug("Beacon coordinate recorded",
		slog.String("source", source),
		slog.Float64("latitude", coordinate.Latitude),
		slog.Float64("longitude", coordinate.Longitude),
	)

	return coordinate, nil
}

// ByDay returns the fixes of the local calendar day, oldest first.
func (srv *playbackService) ByDay(ctx context.Context, date string) ([]entity.BeaconCoordinate, error) {
	from, err := time.ParseInLocation(time.DateOnly, date, srv.location)
	if err != nil {
		return nil, domainerrors.ErrInvalidDate.WithDetails("expected YYYY-MM-DD")
	}
	to := from.AddDate(0, 0, 1)

	coordinates, err := srv.beaconRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, translateError(err, "failed to list beacon coordinates")
	}

	return coordinates, nil
}

// Track builds the GeoJSON route of a day. A single fix yields a Point and
// an empty day yields no feature.
func (srv *playbackService) Track(ctx context.Context, date string) (*usecase.Track, error) {
	coordinates, err := srv.ByDay(ctx, date)
	if err != nil {
		return nil, err
	}

	track := &usecase.Track{Date: date, Points: len(coordinates)}
	if len(coordinates) == 0 {
		return track, nil
	}

	line := make(orb.LineString, 0, len(coordinates))
	for _, c := range coordinates {
		line = append(line, orb.Point{c.Longitude, c.Latitude})
	}

	var feature *geojson.Feature
	if len(line) == 1 {
		feature = geojson.NewFeature(line[0])
	} else {
		track.LengthMeters = geo.Length(line)
		feature = geojson.NewFeature(line)
	}
	feature.BBox = geojson.NewBBox(line.Bound())
	feature.Properties["date"] = date
	feature.Properties["points"] = track.Points
	feature.Properties["length_meters"] = track.LengthMeters
	feature.Properties["start"] = coordinates[0].RecordedAt
	feature.Properties["end"] = coordinates[len(coordinates)-1].RecordedAt
	track.Feature = feature

	return track, nil
}
