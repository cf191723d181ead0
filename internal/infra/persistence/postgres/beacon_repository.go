package postgres

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// beaconRepository implements the repository.BeaconRepository interface.
type beaconRepository struct {
	db *gorm.DB
}

// NewBeaconRepository is the constructor for beaconRepository.
func NewBeaconRepository(db *gorm.DB) repository.BeaconRepository {
	return &beaconRepository{
		db: db,
	}
}

// Create persists a fix.
func (repo *beaconRepository) Create(ctx context.Context, coordinate *entity.BeaconCoordinate) error {
	coordinateM := &model.BeaconCoordinateModel{
		Latitude:   coordinate.Latitude,
		Longitude:  coordinate.Longitude,
		RecordedAt: coordinate.RecordedAt,
	}

	if err := repo.db.WithContext(ctx).Create(coordinateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store beacon coordinate")
	}

	coordinate.ID = coordinateM.ID

	return nil
}

// ListBetween returns the fixes recorded in [from, to), oldest first.
func (repo *beaconRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entity.BeaconCoordinate, error) {
	var models []model.BeaconCoordinateModel

	if err := repo.db.WithContext(ctx).
		Where("recorded_at >= ? AND recorded_at < ?", from, to).
		Order("recorded_at, id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list beacon coordinates")
	}

	coordinates := make([]entity.BeaconCoordinate, 0, len(models))
	for i := range models {
		coordinates = append(coordinates, toBeaconDomain(&models[i]))
	}

	return coordinates, nil
}

// Latest returns the most recent fix.
func (repo *beaconRepository) Latest(ctx context.Context) (*entity.BeaconCoordinate, error) {
	var coordinateM model.BeaconCoordinateModel

	if err := repo.db.WithContext(ctx).
		Order("recorded_at DESC, id DESC").
		First(&coordinateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoBeaconCoordinates
		}

		return nil, errors.Wrap(err, "failed to find latest beacon coordinate")
	}

	coordinate := toBeaconDomain(&coordinateM)

	return &coordinate, nil
}

func toBeaconDomain(data *model.BeaconCoordinateModel) entity.BeaconCoordinate {
	return entity.BeaconCoordinate{
		ID:         data.ID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		RecordedAt: data.RecordedAt,
	}
}
