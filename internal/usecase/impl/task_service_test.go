package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	mockRepo "dispatch/internal/mocks/repository"
	mockService "dispatch/internal/mocks/service"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var taskTestNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type taskServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	taskRepo       *mockRepo.MockTaskRepository
	assignmentRepo *mockRepo.MockAssignmentRepository
	executorRepo   *mockRepo.MockExecutorRepository
	subscriberRepo *mockRepo.MockSubscriberRepository
	publisher      *mockService.MockEventPublisher
	metrics        *mockService.MockMetricsRecorder
}

func newTestTaskService(t *testing.T) (*taskService, taskServiceMocks) {
	t.Helper()

	m := taskServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		taskRepo:       mockRepo.NewMockTaskRepository(t),
		assignmentRepo: mockRepo.NewMockAssignmentRepository(t),
		executorRepo:   mockRepo.NewMockExecutorRepository(t),
		subscriberRepo: mockRepo.NewMockSubscriberRepository(t),
		publisher:      mockService.NewMockEventPublisher(t),
		metrics:        mockService.NewMockMetricsRecorder(t),
	}

	// Transactions run against the same mocks.
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).Maybe()
	m.factory.EXPECT().TaskRepo().Return(m.taskRepo).Maybe()
	m.factory.EXPECT().AssignmentRepo().Return(m.assignmentRepo).Maybe()
	m.factory.EXPECT().ExecutorRepo().Return(m.executorRepo).Maybe()
	m.factory.EXPECT().SubscriberRepo().Return(m.subscriberRepo).Maybe()

	srv := NewTaskService(TaskServiceParams{
		TxManager:      m.txManager,
		TaskRepo:       m.taskRepo,
		AssignmentRepo: m.assignmentRepo,
		ExecutorRepo:   m.executorRepo,
		Publisher:      m.publisher,
		Metrics:        m.metrics,
		Logger:         newTestLogger(),
	}).(*taskService)
	srv.now = func() time.Time { return taskTestNow }

	return srv, m
}

func actorContext(execID int) context.Context {
	ctx := deliverycontext.WithPrincipal(context.Background(), &entity.Principal{ExecID: execID, Role: entity.RoleAdmin})

	return deliverycontext.WithRequestID(ctx, "req-1")
}

func (m taskServiceMocks) expectEvent(eventType service.TaskEventType, check func(*service.TaskEvent)) {
	m.publisher.EXPECT().PublishTaskEvent(mock.Anything, mock.MatchedBy(func(e *service.TaskEvent) bool {
		return e.Type == eventType
	})).RunAndReturn(func(_ context.Context, e *service.TaskEvent) error {
		if check != nil {
			check(e)
		}

		return nil
	}).Once()
	m.metrics.EXPECT().EventPublished(eventType, nil).Return().Once()
}

func TestTaskService_CreateAppliesDefaultsAndResolvesExecutors(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := actorContext(7)

	m.executorRepo.EXPECT().FindByIDs(ctx, []int{3, 1, 99}).Return([]entity.Executor{
		{ExecID: 1, Surname: "Петров"},
		{ExecID: 3, Surname: "Иванов"},
	}, nil)
	m.taskRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Task")).RunAndReturn(
		func(_ context.Context, task *entity.Task) error {
			task.TaskID = 42

			return nil
		})
	m.expectEvent(service.TaskEventCreated, func(e *service.TaskEvent) {
		assert.Equal(t, 42, e.TaskID)
		assert.Equal(t, []int{3, 1}, e.ExecutorIDs)
		assert.Equal(t, 7, e.ActorID)
		assert.Equal(t, "req-1", e.RequestID)
		assert.NotEmpty(t, e.EventID)
		assert.Equal(t, taskTestNow, e.OccurredAt)
	})

	task, err := srv.Create(ctx, &usecase.CreateTaskInput{
		AddressRaw:     " Тула, Ленина 10 ",
		PlannedStart:   taskTestNow,
		DueDatetime:    taskTestNow.Add(2 * time.Hour),
		ContractNumber: ptr("  "),
		ExecutorIDs:    []int{3, 1, 3, 99},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, task.TaskID)
	assert.Equal(t, "Тула, Ленина 10", task.AddressRaw)
	assert.Equal(t, entity.PriorityB, task.Priority)
	assert.Equal(t, entity.TaskTypeService, task.Type)
	assert.Equal(t, entity.TaskScheduled, task.Status)
	assert.True(t, task.Movable)
	assert.Nil(t, task.ContractNumber)
	require.NotNil(t, task.LastModifiedBy)
	assert.Equal(t, 7, *task.LastModifiedBy)
	assert.Equal(t, []int{3, 1}, task.ExecutorIDs())
}

func TestTaskService_CreateRejectsDueBeforeStart(t *testing.T) {
	srv, _ := newTestTaskService(t)

	task, err := srv.Create(context.Background(), &usecase.CreateTaskInput{
		AddressRaw:   "Тула",
		PlannedStart: taskTestNow,
		DueDatetime:  taskTestNow.Add(-time.Minute),
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, task)
}

func TestTaskService_CreatePublishFailureIsNotFatal(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()
	publishErr := errors.New("broker unavailable")

	m.taskRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishTaskEvent(mock.Anything, mock.Anything).Return(publishErr)
	m.metrics.EXPECT().EventPublished(service.TaskEventCreated, publishErr).Return().Once()

	task, err := srv.Create(ctx, &usecase.CreateTaskInput{
		AddressRaw:   "Тула",
		PlannedStart: taskTestNow,
		DueDatetime:  taskTestNow,
	})
	require.NoError(t, err)
	assert.Empty(t, task.Executors)
}

func TestTaskService_UpdateReplacesExecutors(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := actorContext(5)
	assignedAt := taskTestNow.Add(-24 * time.Hour)

	existing := &entity.Task{
		TaskID: 10, AddressRaw: "Тула", Priority: entity.PriorityA, Type: entity.TaskTypeIncident,
		Status: entity.TaskScheduled, PlannedStart: taskTestNow, DueDatetime: taskTestNow.Add(time.Hour),
	}
	reloaded := *existing
	reloaded.Executors = []entity.Executor{{ExecID: 2}, {ExecID: 3}}

	m.taskRepo.EXPECT().FindByID(ctx, 10).Return(existing, nil).Once()
	m.taskRepo.EXPECT().Update(ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return task.Status == entity.TaskInProgress && task.LastModifiedBy != nil && *task.LastModifiedBy == 5
	})).Return(nil)
	m.executorRepo.EXPECT().FindByIDs(ctx, []int{2, 3}).Return([]entity.Executor{{ExecID: 2}, {ExecID: 3}}, nil)
	m.assignmentRepo.EXPECT().FindByTask(ctx, 10).Return([]entity.TaskAssignment{
		{TaskID: 10, ExecID: 1, AssignedAt: assignedAt},
		{TaskID: 10, ExecID: 2, AssignedAt: assignedAt},
	}, nil)
	m.assignmentRepo.EXPECT().Delete(ctx, 10, 1).Return(nil)
	m.assignmentRepo.EXPECT().Archive(ctx, &entity.TaskAssignmentHistory{
		TaskID: 10, ExecID: 1, AssignedAt: assignedAt, RemovedAt: taskTestNow,
	}).Return(nil)
	m.assignmentRepo.EXPECT().Create(ctx, &entity.TaskAssignment{TaskID: 10, ExecID: 3}).Return(nil)
	m.taskRepo.EXPECT().FindByID(ctx, 10).Return(&reloaded, nil).Once()
	m.expectEvent(service.TaskEventUpdated, func(e *service.TaskEvent) {
		assert.Equal(t, []int{2, 3}, e.ExecutorIDs)
	})

	status := entity.TaskInProgress
	task, err := srv.Update(ctx, 10, &usecase.UpdateTaskInput{
		Status:      &status,
		ExecutorIDs: &[]int{2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, task.ExecutorIDs())
}

func TestTaskService_UpdateNotFound(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()

	m.taskRepo.EXPECT().FindByID(ctx, 404).Return(nil, repository.ErrTaskNotFound)

	task, err := srv.Update(ctx, 404, &usecase.UpdateTaskInput{})
	require.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	assert.Nil(t, task)
}

func TestTaskService_Delete(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()

	m.taskRepo.EXPECT().Delete(ctx, 1).Return(nil)
	m.expectEvent(service.TaskEventDeleted, nil)
	require.NoError(t, srv.Delete(ctx, 1))

	m.taskRepo.EXPECT().Delete(ctx, 2).Return(repository.ErrTaskNotFound)
	require.ErrorIs(t, srv.Delete(ctx, 2), domainerrors.ErrTaskNotFound)

	m.txManager.AssertNumberOfCalls(t, "Execute", 2)
}

func TestTaskService_CreateUnknownContract(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()

	m.subscriberRepo.EXPECT().FindByContract(ctx, "C-404").Return(nil, repository.ErrSubscriberNotFound)

	task, err := srv.Create(ctx, &usecase.CreateTaskInput{
		AddressRaw:     "Тула",
		PlannedStart:   taskTestNow,
		DueDatetime:    taskTestNow,
		ContractNumber: ptr(" C-404 "),
	})
	require.ErrorIs(t, err, domainerrors.ErrSubscriberNotFound)
	assert.Nil(t, task)
	m.taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_CreateKnownContract(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()

	m.subscriberRepo.EXPECT().FindByContract(ctx, "C-1").Return(&entity.Subscriber{ContractNumber: "C-1"}, nil)
	m.taskRepo.EXPECT().Create(ctx, mock.MatchedBy(func(task *entity.Task) bool {
		return task.ContractNumber != nil && *task.ContractNumber == "C-1"
	})).Return(nil)
	m.expectEvent(service.TaskEventCreated, nil)

	_, err := srv.Create(ctx, &usecase.CreateTaskInput{
		AddressRaw:     "Тула",
		PlannedStart:   taskTestNow,
		DueDatetime:    taskTestNow,
		ContractNumber: ptr("C-1"),
	})
	require.NoError(t, err)
}

func TestTaskService_UpdateUnknownContract(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()

	m.taskRepo.EXPECT().FindByID(ctx, 10).Return(&entity.Task{
		TaskID: 10, AddressRaw: "Тула", Priority: entity.PriorityB, Type: entity.TaskTypeService,
		Status: entity.TaskScheduled, PlannedStart: taskTestNow, DueDatetime: taskTestNow,
	}, nil)
	m.subscriberRepo.EXPECT().FindByContract(ctx, "C-404").Return(nil, repository.ErrSubscriberNotFound)

	task, err := srv.Update(ctx, 10, &usecase.UpdateTaskInput{ContractNumber: ptr("C-404")})
	require.ErrorIs(t, err, domainerrors.ErrSubscriberNotFound)
	assert.Nil(t, task)
	m.taskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_ListExecutors(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()

	m.taskRepo.EXPECT().FindByID(ctx, 1).Return(&entity.Task{TaskID: 1, Executors: []entity.Executor{{ExecID: 4}}}, nil)

	executors, err := srv.ListExecutors(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []entity.Executor{{ExecID: 4}}, executors)
}

func TestTaskService_AssignExecutor(t *testing.T) {
	tests := []struct {
		name      string
		assignErr error
		wantErr   error
	}{
		{name: "assigned"},
		{name: "already assigned", assignErr: repository.ErrDuplicateAssignment, wantErr: domainerrors.ErrAssignmentAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestTaskService(t)
			ctx := actorContext(1)
			task := &entity.Task{TaskID: 3, AddressRaw: "Тула"}

			m.taskRepo.EXPECT().FindByID(ctx, 3).Return(task, nil)
			m.executorRepo.EXPECT().FindByID(ctx, 8).Return(&entity.Executor{ExecID: 8}, nil)
			m.assignmentRepo.EXPECT().Create(ctx, &entity.TaskAssignment{TaskID: 3, ExecID: 8}).Return(tt.assignErr)
			if tt.wantErr == nil {
				m.taskRepo.EXPECT().Update(ctx, task).Return(nil)
				m.expectEvent(service.TaskEventExecutorAssigned, func(e *service.TaskEvent) {
					assert.Equal(t, []int{8}, e.ExecutorIDs)
				})
			}

			updated, err := srv.AssignExecutor(ctx, 3, 8)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, updated.TaskID)
		})
	}
}

func TestTaskService_AssignUnknownExecutor(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()

	m.taskRepo.EXPECT().FindByID(ctx, 3).Return(&entity.Task{TaskID: 3}, nil)
	m.executorRepo.EXPECT().FindByID(ctx, 8).Return(nil, repository.ErrExecutorNotFound)

	_, err := srv.AssignExecutor(ctx, 3, 8)
	require.ErrorIs(t, err, domainerrors.ErrExecutorNotFound)
}

func TestTaskService_RemoveExecutor(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()
	assignedAt := taskTestNow.Add(-time.Hour)

	m.assignmentRepo.EXPECT().Find(ctx, 3, 8).Return(&entity.TaskAssignment{TaskID: 3, ExecID: 8, AssignedAt: assignedAt}, nil)
	m.assignmentRepo.EXPECT().Delete(ctx, 3, 8).Return(nil)
	m.assignmentRepo.EXPECT().Archive(ctx, &entity.TaskAssignmentHistory{
		TaskID: 3, ExecID: 8, AssignedAt: assignedAt, RemovedAt: taskTestNow,
	}).Return(nil)
	m.expectEvent(service.TaskEventExecutorRemoved, nil)

	require.NoError(t, srv.RemoveExecutor(ctx, 3, 8))
}

func TestTaskService_RemoveMissingAssignment(t *testing.T) {
	srv, m := newTestTaskService(t)
	ctx := context.Background()

	m.assignmentRepo.EXPECT().Find(ctx, 3, 8).Return(nil, repository.ErrAssignmentNotFound)

	require.ErrorIs(t, srv.RemoveExecutor(ctx, 3, 8), domainerrors.ErrAssignmentNotFound)
}
