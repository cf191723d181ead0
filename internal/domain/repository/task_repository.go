package repository

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for task persistence.
var (
	// ErrTaskNotFound is returned when a task is not found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrAssignmentNotFound is returned when the executor is not linked to the task.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrDuplicateAssignment is returned when the executor is already linked to the task.
	ErrDuplicateAssignment = errors.New("assignment already exists")
)

// TaskRepository defines the interface for task-related database operations.
// Returned tasks carry their currently assigned executors.
type TaskRepository interface {
	// List returns all tasks ordered by planned start.
	List(ctx context.Context) ([]entity.Task, error)

	// FindByID retrieves a task by id.
	FindByID(ctx context.Context, id int) (*entity.Task, error)

	// ListPlannedBetween returns the non-cancelled tasks with planned start in [from, to).
	ListPlannedBetween(ctx context.Context, from, to time.Time) ([]entity.Task, error)

	// Create persists a task and fills its id and timestamps.
	Create(ctx context.Context, task *entity.Task) error

	// Update overwrites the task columns. Assignments are not touched.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task together with its current assignments.
	Delete(ctx context.Context, id int) error
}

// AssignmentRepository stores the links between tasks and executors and the
// archive of removed links.
type AssignmentRepository interface {
	// FindByTask returns the current links of a task in assignment order.
	FindByTask(ctx context.Context, taskID int) ([]entity.TaskAssignment, error)

	// FindByTasks returns the current links of all given tasks.
	FindByTasks(ctx context.Context, taskIDs []int) ([]entity.TaskAssignment, error)

	// Find retrieves a single link.
	Find(ctx context.Context, taskID, execID int) (*entity.TaskAssignment, error)

	// Create links an executor to a task and fills AssignedAt when zero.
	Create(ctx context.Context, assignment *entity.TaskAssignment) error

	// Delete removes a single link.
	Delete(ctx context.Context, taskID, execID int) error

	// Archive stores a removed link.
	Archive(ctx context.Context, history *entity.TaskAssignmentHistory) error

	// HistoryByTasks returns the archived links of all given tasks.
	HistoryByTasks(ctx context.Context, taskIDs []int) ([]entity.TaskAssignmentHistory, error)
}
