package usecase

import (
	"context"

	"dispatch/internal/domain/entity"
)

// CreateExecutorInput holds the fields accepted when adding an executor.
type CreateExecutorInput struct {
	Surname    string      `json:"surname" validate:"required,max=128"`
	Name       string      `json:"name" validate:"max=128"`
	Phone      string      `json:"phone" validate:"max=32"`
	TelegramID *int64      `json:"id_telegram" validate:"omitempty,gt=0"`
	Role       entity.Role `json:"role" validate:"omitempty,oneof=admin user guest master reserve"`
}

// ExecutorUsecase manages field technicians.
type ExecutorUsecase interface {
	List(ctx context.Context) ([]entity.Executor, error)
	Create(ctx context.Context, input *CreateExecutorInput) (*entity.Executor, error)

	// Search ranks executors by fuzzy match of "surname name" against query.
	Search(ctx context.Context, query string) ([]entity.Executor, error)

	// Me returns the executor of the authenticated principal.
	Me(ctx context.Context) (*entity.Executor, error)

	FindByTelegramID(ctx context.Context, telegramID int64) (*entity.Executor, error)
}
