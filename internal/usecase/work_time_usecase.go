package usecase

import (
	"context"
	"io"
	"time"

	"dispatch/internal/domain/entity"
)

// WorkTimeInput creates or replaces a timesheet record.
type WorkTimeInput struct {
	ExecID      int       `json:"exec_id" validate:"required,gt=0"`
	WorkDate    time.Time `json:"work_date" validate:"required"`
	WorkMinutes int       `json:"work_minutes" validate:"gte=0,lte=1440"`
}

// WorkTimeUsecase manages the executors' timesheet.
type WorkTimeUsecase interface {
	// List returns records newest date first, optionally filtered.
	List(ctx context.Context, execID *int, workDate *time.Time) ([]entity.WorkTime, error)
	Get(ctx context.Context, id int) (*entity.WorkTime, error)
	Create(ctx context.Context, input *WorkTimeInput) (*entity.WorkTime, error)
	Update(ctx context.Context, id int, input *WorkTimeInput) (*entity.WorkTime, error)
	Delete(ctx context.Context, id int) error

	// ExportMonth writes the month's timesheet as xlsx.
	ExportMonth(ctx context.Context, month time.Time, w io.Writer) error
}
