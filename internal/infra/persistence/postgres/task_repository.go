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
	"gorm.io/gorm/clause"
)

// taskRepository implements the repository.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// assignedExecutorRow is an executor joined with its link to a task.
type assignedExecutorRow struct {
	TaskID int
	model.ExecutorModel
}

// List returns all tasks ordered by planned start.
func (repo *taskRepository) List(ctx context.Context) ([]entity.Task, error) {
	var models []model.TaskModel

	if err := repo.db.WithContext(ctx).
		Order("planned_start, task_id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return repo.withExecutors(ctx, models)
}

// FindByID retrieves a task by id.
func (repo *taskRepository) FindByID(ctx context.Context, id int) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("task_id = ?", id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by ID")
	}

	tasks, err := repo.withExecutors(ctx, []model.TaskModel{taskM})
	if err != nil {
		return nil, err
	}

	return &tasks[0], nil
}

// ListPlannedBetween returns the non-cancelled tasks with planned start in [from, to).
func (repo *taskRepository) ListPlannedBetween(ctx context.Context, from, to time.Time) ([]entity.Task, error) {
	var models []model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("planned_start >= ? AND planned_start < ?", from, to).
		Where("status <> ?", string(entity.TaskCancelled)).
		Order("planned_start, task_id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list planned tasks")
	}

	return repo.withExecutors(ctx, models)
}

// Create persists a task and links the executors already set on it.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSubscriberNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	if len(task.Executors) > 0 {
		now := time.Now()
		links := make([]model.TaskExecutorModel, 0, len(task.Executors))
		for _, executor := range task.Executors {
			links = append(links, model.TaskExecutorModel{
				TaskID:     taskM.TaskID,
				ExecID:     executor.ExecID,
				AssignedAt: now,
			})
		}

		if err := repo.db.WithContext(ctx).Create(&links).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrExecutorNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to link task executors")
		}
	}

	task.TaskID = taskM.TaskID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update overwrites the task columns.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("task_id = ?", task.TaskID).
		Select("*").
		Omit("task_id", "created_at", clause.Associations).
		Updates(taskM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrSubscriberNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Delete removes a task together with its current assignments.
func (repo *taskRepository) Delete(ctx context.Context, id int) error {
	if err := repo.db.WithContext(ctx).
		Where("task_id = ?", id).
		Delete(&model.TaskExecutorModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete task executors")
	}

	result := repo.db.WithContext(ctx).
		Where("task_id = ?", id).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// withExecutors maps task rows and attaches their assigned executors in one query.
func (repo *taskRepository) withExecutors(ctx context.Context, models []model.TaskModel) ([]entity.Task, error) {
	tasks := make([]entity.Task, 0, len(models))
	if len(models) == 0 {
		return tasks, nil
	}

	ids := make([]int, 0, len(models))
	for i := range models {
		ids = append(ids, models[i].TaskID)
	}

	var rows []assignedExecutorRow
	if err := repo.db.WithContext(ctx).
		Table("task_executors te").
		Select("te.task_id, e.*").
		Joins("JOIN executors e ON e.exec_id = te.exec_id").
		Where("te.task_id IN ?", ids).
		Order("te.assigned_at, e.exec_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load task executors")
	}

	byTask := make(map[int][]entity.Executor, len(models))
	for i := range rows {
		byTask[rows[i].TaskID] = append(byTask[rows[i].TaskID], toExecutorDomain(&rows[i].ExecutorModel))
	}

	for i := range models {
		task := toTaskDomain(&models[i])
		if executors, ok := byTask[task.TaskID]; ok {
			task.Executors = executors
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// --- Mapper Functions ---

func toTaskDomain(data *model.TaskModel) entity.Task {
	return entity.Task{
		TaskID:           data.TaskID,
		AddressRaw:       data.AddressRaw,
		Latitude:         data.Lat,
		Longitude:        data.Lon,
		ServiceMinutes:   data.ServiceMinutes,
		PlannedStart:     data.PlannedStart,
		DueDatetime:      data.DueDatetime,
		Movable:          data.Movable,
		Priority:         entity.TaskPriority(data.Priority),
		Type:             entity.TaskType(data.Type),
		Status:           entity.TaskStatus(data.Status),
		Notes:            data.Notes,
		ContractNumber:   data.ContractNumber,
		ActualStart:      data.ActualStart,
		ActualEnd:        data.ActualEnd,
		DetectedStart:    data.DetectedStart,
		DetectedEnd:      data.DetectedEnd,
		DetectConfidence: data.DetectConfidence,
		LastModifiedBy:   data.LastModifiedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		Executors:        []entity.Executor{},
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		TaskID:           data.TaskID,
		AddressRaw:       data.AddressRaw,
		Lat:              data.Latitude,
		Lon:              data.Longitude,
		ServiceMinutes:   data.ServiceMinutes,
		PlannedStart:     data.PlannedStart,
		DueDatetime:      data.DueDatetime,
		Movable:          data.Movable,
		Priority:         string(data.Priority),
		Type:             string(data.Type),
		Status:           string(data.Status),
		Notes:            data.Notes,
		ContractNumber:   data.ContractNumber,
		ActualStart:      data.ActualStart,
		ActualEnd:        data.ActualEnd,
		DetectedStart:    data.DetectedStart,
		DetectedEnd:      data.DetectedEnd,
		DetectConfidence: data.DetectConfidence,
		LastModifiedBy:   data.LastModifiedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
