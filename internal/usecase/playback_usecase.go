package usecase

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// BeaconInput is a GPS fix reported by the beacon.
type BeaconInput struct {
	Latitude   float64    `json:"latitude" validate:"latitude"`
	Longitude  float64    `json:"longitude" validate:"longitude"`
	RecordedAt *time.Time `json:"recorded_at"`
}

// Track is the beacon route of one day.
type Track struct {
	Date         string           `json:"date"`
	Points       int              `json:"points"`
	LengthMeters float64          `json:"length_meters"`
	Feature      *geojson.Feature `json:"feature"`
}

// PlaybackUsecase stores beacon fixes and replays them per day.
type PlaybackUsecase interface {
	// Record stores a fix. Source labels where it came from ("mqtt", "http").
	Record(ctx context.Context, input *BeaconInput, source string) (*entity.BeaconCoordinate, error)

	// ByDay returns the fixes of a local calendar day (YYYY-MM-DD), oldest first.
	ByDay(ctx context.Context, date string) ([]entity.BeaconCoordinate, error)

	// Track returns the day's fixes as a GeoJSON LineString with its length.
	Track(ctx context.Context, date string) (*Track, error)
}
