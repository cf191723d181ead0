package repository

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for work time persistence.
var (
	// ErrWorkTimeNotFound is returned when a work time record is not found.
	ErrWorkTimeNotFound = errors.New("work time not found")
	// ErrDuplicateWorkTime is returned when the executor already has a record for the date.
	ErrDuplicateWorkTime = errors.New("work time already exists")
)

// WorkTimeFilter narrows WorkTimeRepository.List. Nil fields do not filter.
// From and To bound the work date inclusively.
type WorkTimeFilter struct {
	ExecID   *int
	WorkDate *time.Time
	From     *time.Time
	To       *time.Time
}

// WorkTimeRepository defines the interface for timesheet database operations.
// Returned records carry the executor's surname and name.
type WorkTimeRepository interface {
	// List returns the matching records, newest work date first.
	List(ctx context.Context, filter WorkTimeFilter) ([]entity.WorkTime, error)

	// FindByID retrieves a record by id.
	FindByID(ctx context.Context, id int) (*entity.WorkTime, error)

	// Create persists a record and fills its id and timestamps.
	Create(ctx context.Context, record *entity.WorkTime) error

	// Update replaces executor, date and minutes of an existing record.
	Update(ctx context.Context, record *entity.WorkTime) error

	// Delete removes a record.
	Delete(ctx context.Context, id int) error
}
