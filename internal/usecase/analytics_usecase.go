package usecase

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
)

// AnalyticsUsecase computes reports over tasks.
type AnalyticsUsecase interface {
	// Overdue reports how late the tasks planned in [from, to) finished and
	// how the overdue time splits between their executors.
	Overdue(ctx context.Context, from, to time.Time) ([]entity.TaskOverdue, error)
}
