package postgres

import (
	"context"

	"dispatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the dispatch tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.ExecutorModel{},
		&model.SubscriberModel{},
		&model.TaskModel{},
		&model.TaskExecutorModel{},
		&model.TaskExecutorHistoryModel{},
		&model.WorkTimeModel{},
		&model.BeaconCoordinateModel{},
	)

	return errors.Wrap(err, "failed to migrate database schema")
}
