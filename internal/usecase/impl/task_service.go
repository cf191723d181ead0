package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager      repository.TransactionManager
	taskRepo       repository.TaskRepository
	assignmentRepo repository.AssignmentRepository
	executorRepo   repository.ExecutorRepository
	publisher      service.EventPublisher
	metrics        service.MetricsRecorder
	logger         *slog.Logger
	now            func() time.Time
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	TaskRepo       repository.TaskRepository
	AssignmentRepo repository.AssignmentRepository
	ExecutorRepo   repository.ExecutorRepository
	Publisher      service.EventPublisher
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager:      params.TxManager,
		taskRepo:       params.TaskRepo,
		assignmentRepo: params.AssignmentRepo,
		executorRepo:   params.ExecutorRepo,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all tasks ordered by planned start.
func (srv *taskService) List(ctx context.Context) ([]entity.Task, error) {
	tasks, err := srv.taskRepo.List(ctx)
	if err != nil {
		return nil, translateError(err, "failed to list tasks")
	}

	return tasks, nil
}

// Get returns a task with its executors.
func (srv *taskService) Get(ctx context.Context, taskID int) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, translateError(err, "failed to find task")
	}

	return task, nil
}

// Create stores a task and links the known executors among input.ExecutorIDs.
func (srv *taskService) Create(ctx context.Context, input *usecase.CreateTaskInput) (*entity.Task, error) {
	task := &entity.Task{
		AddressRaw:       strings.TrimSpace(input.AddressRaw),
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		ServiceMinutes:   input.ServiceMinutes,
		PlannedStart:     input.PlannedStart,
		DueDatetime:      input.DueDatetime,
		Movable:          true,
		Priority:         input.Priority,
		Type:             input.Type,
		Status:           input.Status,
		Notes:            input.Notes,
		ContractNumber:   normalizeContract(input.ContractNumber),
		ActualStart:      input.ActualStart,
		ActualEnd:        input.ActualEnd,
		DetectedStart:    input.DetectedStart,
		DetectedEnd:      input.DetectedEnd,
		DetectConfidence: input.DetectConfidence,
		LastModifiedBy:   deliverycontext.ActorID(ctx),
	}
	if input.Movable != nil {
		task.Movable = *input.Movable
	}
	applyTaskDefaults(task)

	if err := validateTask(task); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureSubscriber(ctx, repoFactory.SubscriberRepo(), task.ContractNumber); err != nil {
			return err
		}

		executors, err := resolveExecutors(ctx, repoFactory.ExecutorRepo(), input.ExecutorIDs)
		if err != nil {
			return err
		}
		task.Executors = executors

		return repoFactory.TaskRepo().Create(ctx, task)
	})
	if err != nil {
		return nil, translateError(err, "failed to create task")
	}

	srv.log(ctx).Info("Task created", slog.Int("task_id", task.TaskID), slog.Int("executors", len(task.Executors)))
	srv.publish(ctx, service.TaskEventCreated, task.TaskID, task.ExecutorIDs())

	return task, nil
}

// Update applies a partial update. When ExecutorIDs is set, the assignment
// list is replaced and removed links are archived.
func (srv *taskService) Update(ctx context.Context, taskID int, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	var updated *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByID(ctx, taskID)
		if err != nil {
			return err
		}

		applyTaskUpdate(task, input)
		task.LastModifiedBy = deliverycontext.ActorID(ctx)
		if err := validateTask(task); err != nil {
			return err
		}
		if input.ContractNumber != nil {
			if err := ensureSubscriber(ctx, repoFactory.SubscriberRepo(), task.ContractNumber); err != nil {
				return err
			}
		}

		if err := taskRepo.Update(ctx, task); err != nil {
			return err
		}

		if input.ExecutorIDs != nil {
			executors, err := resolveExecutors(ctx, repoFactory.ExecutorRepo(), *input.ExecutorIDs)
			if err != nil {
				return err
			}
			if err := srv.replaceAssignments(ctx, repoFactory.AssignmentRepo(), taskID, executors); err != nil {
				return err
			}
		}

		updated, err = taskRepo.FindByID(ctx, taskID)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to update task")
	}

	srv.log(ctx).Info("Task updated", slog.Int("task_id", taskID))
	srv.publish(ctx, service.TaskEventUpdated, taskID, updated.ExecutorIDs())

	return updated, nil
}

// replaceAssignments makes the task's links equal to executors.
func (srv *taskService) replaceAssignments(ctx context.Context, assignmentRepo repository.AssignmentRepository, taskID int, executors []entity.Executor) error {
	current, err := assignmentRepo.FindByTask(ctx, taskID)
	if err != nil {
		return err
	}

	wanted := make(map[int]bool, len(executors))
	for _, e := range executors {
		wanted[e.ExecID] = true
	}

	existing := make(map[int]bool, len(current))
	removedAt := srv.now()
	for i := range current {
		link := current[i]
		existing[link.ExecID] = true
		if wanted[link.ExecID] {
			continue
		}
		if err := archiveAssignment(ctx, assignmentRepo, &link, removedAt); err != nil {
			return err
		}
	}

	for _, e := range executors {
		if existing[e.ExecID] {
			continue
		}
		if err := assignmentRepo.Create(ctx, &entity.TaskAssignment{TaskID: taskID, ExecID: e.ExecID}); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a task and its current links.
func (srv *taskService) Delete(ctx context.Context, taskID int) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TaskRepo().Delete(ctx, taskID)
	})
	if err != nil {
		return translateError(err, "failed to delete task")
	}

	srv.log(ctx).Info("Task deleted", slog.Int("task_id", taskID))
	srv.publish(ctx, service.TaskEventDeleted, taskID, nil)

	return nil
}

// ListExecutors returns the executors currently assigned to a task.
func (srv *taskService) ListExecutors(ctx context.Context, taskID int) ([]entity.Executor, error) {
	task, err := srv.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return task.Executors, nil
}

// AssignExecutor links an executor to a task and returns the updated task.
func (srv *taskService) AssignExecutor(ctx context.Context, taskID, execID int) (*entity.Task, error) {
	var updated *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		if _, err := repoFactory.ExecutorRepo().FindByID(ctx, execID); err != nil {
			return err
		}

		if err := repoFactory.AssignmentRepo().Create(ctx, &entity.TaskAssignment{TaskID: taskID, ExecID: execID}); err != nil {
			return err
		}

		task.LastModifiedBy = deliverycontext.ActorID(ctx)
		if err := taskRepo.Update(ctx, task); err != nil {
			return err
		}

		updated, err = taskRepo.FindByID(ctx, taskID)

		return err
	})
	if err != nil {
		return nil, translateError(err, "failed to assign executor")
	}

	srv.log(ctx).Info("Executor assigned", slog.Int("task_id", taskID), slog.Int("exec_id", execID))
	srv.publish(ctx, service.TaskEventExecutorAssigned, taskID, []int{execID})

	return updated, nil
}

// RemoveExecutor unlinks an executor and archives the assignment.
func (srv *taskService) RemoveExecutor(ctx context.Context, taskID, execID int) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assignmentRepo := repoFactory.AssignmentRepo()

		link, err := assignmentRepo.Find(ctx, taskID, execID)
		if err != nil {
			return err
		}

		return archiveAssignment(ctx, assignmentRepo, link, srv.now())
	})
	if err != nil {
		return translateError(err, "failed to remove executor")
	}

	srv.log(ctx).Info("Executor removed", slog.Int("task_id", taskID), slog.Int("exec_id", execID))
	srv.publish(ctx, service.TaskEventExecutorRemoved, taskID, []int{execID})

	return nil
}

// publish emits a task event. Failures are logged and never fail the caller.
func (srv *taskService) publish(ctx context.Context, eventType service.TaskEventType, taskID int, executorIDs []int) {
	event := &service.TaskEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		TaskID:      taskID,
		ExecutorIDs: executorIDs,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt:  srv.now().UTC(),
	}
	if actor := deliverycontext.ActorID(ctx); actor != nil {
		event.ActorID = *actor
	}

	err := srv.publisher.PublishTaskEvent(context.WithoutCancel(ctx), event)
	srv.metrics.EventPublished(eventType, err)
	if err != nil {
		srv.log(ctx).Warn("Failed to publish task event",
			slog.String("type", string(eventType)),
			slog.Int("task_id", taskID),
			slog.Any("error", err),
		)
	}
}

func archiveAssignment(ctx context.Context, assignmentRepo repository.AssignmentRepository, link *entity.TaskAssignment, removedAt time.Time) error {
	if err := assignmentRepo.Delete(ctx, link.TaskID, link.ExecID); err != nil {
		return err
	}

	return assignmentRepo.Archive(ctx, &entity.TaskAssignmentHistory{
		TaskID:     link.TaskID,
		ExecID:     link.ExecID,
		AssignedAt: link.AssignedAt,
		RemovedAt:  removedAt,
	})
}

// ensureSubscriber checks that a referenced contract exists. A nil contract
// means the task is not tied to a subscriber.
func ensureSubscriber(ctx context.Context, subscriberRepo repository.SubscriberRepository, contract *string) error {
	if contract == nil {
		return nil
	}
	_, err := subscriberRepo.FindByContract(ctx, *contract)

	return err
}

// resolveExecutors loads the executors for ids in the given order. Unknown
// and repeated ids are skipped.
func resolveExecutors(ctx context.Context, executorRepo repository.ExecutorRepository, ids []int) ([]entity.Executor, error) {
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return []entity.Executor{}, nil
	}

	found, err := executorRepo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]entity.Executor, len(found))
	for _, e := range found {
		byID[e.ExecID] = e
	}

	executors := make([]entity.Executor, 0, len(found))
	for _, id := range unique {
		if e, ok := byID[id]; ok {
			executors = append(executors, e)
		}
	}

	return executors, nil
}

func applyTaskDefaults(task *entity.Task) {
	if task.Priority == "" {
		task.Priority = entity.PriorityB
	}
	if task.Type == "" {
		task.Type = entity.TaskTypeService
	}
	if task.Status == "" {
		task.Status = entity.TaskScheduled
	}
}

func applyTaskUpdate(task *entity.Task, input *usecase.UpdateTaskInput) {
	if input.AddressRaw != nil {
		task.AddressRaw = strings.TrimSpace(*input.AddressRaw)
	}
	if input.Latitude != nil {
		task.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		task.Longitude = *input.Longitude
	}
	if input.ServiceMinutes != nil {
		task.ServiceMinutes = *input.ServiceMinutes
	}
	if input.PlannedStart != nil {
		task.PlannedStart = *input.PlannedStart
	}
	if input.DueDatetime != nil {
		task.DueDatetime = *input.DueDatetime
	}
	if input.Movable != nil {
		task.Movable = *input.Movable
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Type != nil {
		task.Type = *input.Type
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Notes != nil {
		task.Notes = input.Notes
	}
	if input.ContractNumber != nil {
		task.ContractNumber = normalizeContract(input.ContractNumber)
	}
	if input.ActualStart != nil {
		task.ActualStart = input.ActualStart
	}
	if input.ActualEnd != nil {
		task.ActualEnd = input.ActualEnd
	}
	if input.DetectedStart != nil {
		task.DetectedStart = input.DetectedStart
	}
	if input.DetectedEnd != nil {
		task.DetectedEnd = input.DetectedEnd
	}
	if input.DetectConfidence != nil {
		task.DetectConfidence = input.DetectConfidence
	}
}

func validateTask(task *entity.Task) error {
	switch {
	case task.AddressRaw == "":
		return domainerrors.ErrValidationFailed.WithDetails("address_raw is required")
	case !task.Priority.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown priority")
	case !task.Type.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown type")
	case !task.Status.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown status")
	case task.DueDatetime.Before(task.PlannedStart):
		return domainerrors.ErrValidationFailed.WithDetails("due_datetime is before planned_start")
	}

	return nil
}

// normalizeContract treats a blank contract number as no contract.
func normalizeContract(contract *string) *string {
	if contract == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*contract)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
