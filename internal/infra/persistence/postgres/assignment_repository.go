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

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// FindByTask returns the current links of a task in assignment order.
func (repo *assignmentRepository) FindByTask(ctx context.Context, taskID int) ([]entity.TaskAssignment, error) {
	return repo.FindByTasks(ctx, []int{taskID})
}

// FindByTasks returns the current links of all given tasks.
func (repo *assignmentRepository) FindByTasks(ctx context.Context, taskIDs []int) ([]entity.TaskAssignment, error) {
	if len(taskIDs) == 0 {
		return []entity.TaskAssignment{}, nil
	}

	var models []model.TaskExecutorModel
	if err := repo.db.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Order("task_id, assigned_at, exec_id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find task assignments")
	}

	assignments := make([]entity.TaskAssignment, 0, len(models))
	for i := range models {
		assignments = append(assignments, toAssignmentDomain(&models[i]))
	}

	return assignments, nil
}

// Find retrieves a single link.
func (repo *assignmentRepository) Find(ctx context.Context, taskID, execID int) (*entity.TaskAssignment, error) {
	var linkM model.TaskExecutorModel

	if err := repo.db.WithContext(ctx).
		Where("task_id = ? AND exec_id = ?", taskID, execID).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find task assignment")
	}

	assignment := toAssignmentDomain(&linkM)

	return &assignment, nil
}

// Create links an executor to a task.
func (repo *assignmentRepository) Create(ctx context.Context, assignment *entity.TaskAssignment) error {
	if assignment.AssignedAt.IsZero() {
		assignment.AssignedAt = time.Now()
	}

	linkM := &model.TaskExecutorModel{
		TaskID:     assignment.TaskID,
		ExecID:     assignment.ExecID,
		AssignedAt: assignment.AssignedAt,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAssignment
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrExecutorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task assignment")
	}

	return nil
}

// Delete removes a single link.
func (repo *assignmentRepository) Delete(ctx context.Context, taskID, execID int) error {
	result := repo.db.WithContext(ctx).
		Where("task_id = ? AND exec_id = ?", taskID, execID).
		Delete(&model.TaskExecutorModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task assignment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

// Archive stores a removed link.
func (repo *assignmentRepository) Archive(ctx context.Context, history *entity.TaskAssignmentHistory) error {
	historyM := &model.TaskExecutorHistoryModel{
		TaskID:     history.TaskID,
		ExecID:     history.ExecID,
		AssignedAt: history.AssignedAt,
		RemovedAt:  history.RemovedAt,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to archive task assignment")
	}

	history.HistoryID = historyM.ID

	return nil
}

// HistoryByTasks returns the archived links of all given tasks.
func (repo *assignmentRepository) HistoryByTasks(ctx context.Context, taskIDs []int) ([]entity.TaskAssignmentHistory, error) {
	if len(taskIDs) == 0 {
		return []entity.TaskAssignmentHistory{}, nil
	}

	var models []model.TaskExecutorHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("task_id IN ?", taskIDs).
		Order("task_id, assigned_at, id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find task assignment history")
	}

	history := make([]entity.TaskAssignmentHistory, 0, len(models))
	for _, m := range models {
		history = append(history, entity.TaskAssignmentHistory{
			HistoryID:  m.ID,
			TaskID:     m.TaskID,
			ExecID:     m.ExecID,
			AssignedAt: m.AssignedAt,
			RemovedAt:  m.RemovedAt,
		})
	}

	return history, nil
}

func toAssignmentDomain(data *model.TaskExecutorModel) entity.TaskAssignment {
	return entity.TaskAssignment{
		TaskID:     data.TaskID,
		ExecID:     data.ExecID,
		AssignedAt: data.AssignedAt,
	}
}
