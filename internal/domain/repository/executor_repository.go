package repository

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for executor persistence.
var (
	// ErrExecutorNotFound is returned when an executor is not found.
	ErrExecutorNotFound = errors.New("executor not found")
	// ErrDuplicateExecutor is returned when the Telegram id is already linked to another executor.
	ErrDuplicateExecutor = errors.New("executor already exists")
)

// ExecutorRepository defines the interface for executor-related database operations.
type ExecutorRepository interface {
	// List returns all executors ordered by surname.
	List(ctx context.Context) ([]entity.Executor, error)

	// FindByID retrieves an executor by id.
	FindByID(ctx context.Context, id int) (*entity.Executor, error)

	// FindByIDs returns the executors that exist among ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []int) ([]entity.Executor, error)

	// FindByTelegramID retrieves the executor linked to a Telegram account.
	FindByTelegramID(ctx context.Context, telegramID int64) (*entity.Executor, error)

	// Create persists a new executor and fills its id.
	Create(ctx context.Context, executor *entity.Executor) error
}
