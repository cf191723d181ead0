package usecase

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
)

// CreateTaskInput holds the fields accepted when creating a task.
type CreateTaskInput struct {
	AddressRaw       string              `json:"address_raw" validate:"required"`
	Latitude         float64             `json:"latitude" validate:"latitude"`
	Longitude        float64             `json:"longitude" validate:"longitude"`
	ServiceMinutes   int                 `json:"service_minutes" validate:"gte=0"`
	PlannedStart     time.Time           `json:"planned_start" validate:"required"`
	DueDatetime      time.Time           `json:"due_datetime" validate:"required"`
	Movable          *bool               `json:"movable"`
	Priority         entity.TaskPriority `json:"priority" validate:"omitempty,oneof=A B C"`
	Type             entity.TaskType     `json:"type" validate:"omitempty,oneof=connection service incident"`
	Status           entity.TaskStatus   `json:"status" validate:"omitempty,oneof=scheduled in_progress done cancelled"`
	Notes            *string             `json:"notes"`
	ContractNumber   *string             `json:"contract_number"`
	ActualStart      *time.Time          `json:"actual_start"`
	ActualEnd        *time.Time          `json:"actual_end"`
	DetectedStart    *time.Time          `json:"detected_start"`
	DetectedEnd      *time.Time          `json:"detected_end"`
	DetectConfidence *int                `json:"detect_confidence" validate:"omitempty,gte=0,lte=100"`
	ExecutorIDs      []int               `json:"executor_ids"`
}

// UpdateTaskInput is a partial update. A non-nil ExecutorIDs replaces the
// assignment list; removed links are archived.
type UpdateTaskInput struct {
	AddressRaw       *string              `json:"address_raw" validate:"omitempty,min=1"`
	Latitude         *float64             `json:"latitude" validate:"omitempty,latitude"`
	Longitude        *float64             `json:"longitude" validate:"omitempty,longitude"`
	ServiceMinutes   *int                 `json:"service_minutes" validate:"omitempty,gte=0"`
	PlannedStart     *time.Time           `json:"planned_start"`
	DueDatetime      *time.Time           `json:"due_datetime"`
	Movable          *bool                `json:"movable"`
	Priority         *entity.TaskPriority `json:"priority" validate:"omitempty,oneof=A B C"`
	Type             *entity.TaskType     `json:"type" validate:"omitempty,oneof=connection service incident"`
	Status           *entity.TaskStatus   `json:"status" validate:"omitempty,oneof=scheduled in_progress done cancelled"`
	Notes            *string              `json:"notes"`
	ContractNumber   *string              `json:"contract_number"`
	ActualStart      *time.Time           `json:"actual_start"`
	ActualEnd        *time.Time           `json:"actual_end"`
	DetectedStart    *time.Time           `json:"detected_start"`
	DetectedEnd      *time.Time           `json:"detected_end"`
	DetectConfidence *int                 `json:"detect_confidence" validate:"omitempty,gte=0,lte=100"`
	ExecutorIDs      *[]int               `json:"executor_ids"`
}

// TaskUsecase manages tasks and their executor assignments.
type TaskUsecase interface {
	List(ctx context.Context) ([]entity.Task, error)
	Get(ctx context.Context, taskID int) (*entity.Task, error)
	Create(ctx context.Context, input *CreateTaskInput) (*entity.Task, error)
	Update(ctx context.Context, taskID int, input *UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, taskID int) error

	// ListExecutors returns the executors currently assigned to a task.
	ListExecutors(ctx context.Context, taskID int) ([]entity.Executor, error)

	// AssignExecutor links an executor to a task.
	AssignExecutor(ctx context.Context, taskID, execID int) (*entity.Task, error)

	// RemoveExecutor unlinks an executor and archives the assignment.
	RemoveExecutor(ctx context.Context, taskID, execID int) error
}
