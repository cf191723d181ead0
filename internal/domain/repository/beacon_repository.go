package repository

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoBeaconCoordinates is returned by Latest when nothing was recorded yet.
var ErrNoBeaconCoordinates = errors.New("no beacon coordinates")

// BeaconRepository stores the GPS fixes of the vehicle beacon.
type BeaconRepository interface {
	// Create persists a fix and fills its id.
	Create(ctx context.Context, coordinate *entity.BeaconCoordinate) error

	// ListBetween returns the fixes recorded in [from, to), oldest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]entity.BeaconCoordinate, error)

	// Latest returns the most recent fix.
	Latest(ctx context.Context) (*entity.BeaconCoordinate, error)
}
