package impl

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockRepo "dispatch/internal/mocks/repository"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAnalyticsService(t *testing.T, now time.Time) (usecase.AnalyticsUsecase, *mockRepo.MockTaskRepository, *mockRepo.MockAssignmentRepository, *mockRepo.MockExecutorRepository) {
	t.Helper()

	taskRepo := mockRepo.NewMockTaskRepository(t)
	assignmentRepo := mockRepo.NewMockAssignmentRepository(t)
	executorRepo := mockRepo.NewMockExecutorRepository(t)

	srv := NewAnalyticsService(AnalyticsServiceParams{
		TaskRepo:       taskRepo,
		AssignmentRepo: assignmentRepo,
		ExecutorRepo:   executorRepo,
		Logger:         newTestLogger(),
	}).(*analyticsService)
	srv.now = func() time.Time { return now }

	return srv, taskRepo, assignmentRepo, executorRepo
}

func TestAnalyticsService_Overdue(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	now := base.Add(10 * time.Hour)
	from, to := base, base.AddDate(0, 1, 0)
	at := func(h float64) time.Time { return base.Add(time.Duration(h * float64(time.Hour))) }

	tasks := []entity.Task{
		// Finished two hours late. Executor 1 was on it the whole time,
		// executor 2 was removed an hour into the overdue period.
		{TaskID: 1, AddressRaw: "Тула, Ленина 1", PlannedStart: at(0), DueDatetime: at(1), ActualEnd: ptr(at(3))},
		// Finished on time.
		{TaskID: 2, AddressRaw: "Тула, Мира 2", PlannedStart: at(0), DueDatetime: at(5), ActualEnd: ptr(at(4))},
		// Still open, due four hours before now; executor 3 joined an hour after due.
		{TaskID: 3, AddressRaw: "Тула, Мира 3", PlannedStart: at(0), DueDatetime: at(6)},
	}

	srv, taskRepo, assignmentRepo, executorRepo := newTestAnalyticsService(t, now)
	ctx := context.Background()

	taskRepo.EXPECT().ListPlannedBetween(ctx, from, to).Return(tasks, nil)
	assignmentRepo.EXPECT().FindByTasks(ctx, []int{1, 2, 3}).Return([]entity.TaskAssignment{
		{TaskID: 1, ExecID: 1, AssignedAt: at(0)},
		{TaskID: 2, ExecID: 1, AssignedAt: at(0)},
		{TaskID: 3, ExecID: 3, AssignedAt: at(7)},
	}, nil)
	assignmentRepo.EXPECT().HistoryByTasks(ctx, []int{1, 2, 3}).Return([]entity.TaskAssignmentHistory{
		{TaskID: 1, ExecID: 2, AssignedAt: at(0), RemovedAt: at(2)},
	}, nil)
	executorRepo.EXPECT().FindByIDs(ctx, mock.MatchedBy(func(ids []int) bool {
		return assert.ElementsMatch(t, []int{1, 2, 3}, ids)
	})).Return([]entity.Executor{
		{ExecID: 1, Surname: "Иванов"},
		{ExecID: 3, Surname: "Сидоров"},
	}, nil)

	report, err := srv.Overdue(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, report, 2)

	first := report[0]
	assert.Equal(t, 1, first.TaskID)
	assert.InDelta(t, 2*3600, first.TotalOverdueSeconds, 1e-6)
	require.Len(t, first.Executors, 2)
	assert.Equal(t, 1, first.Executors[0].ExecID)
	assert.InDelta(t, 2*3600, first.Executors[0].OverdueAssignedSeconds, 1e-6)
	require.NotNil(t, first.Executors[0].Surname)
	assert.Equal(t, "Иванов", *first.Executors[0].Surname)
	assert.Equal(t, 2, first.Executors[1].ExecID)
	assert.InDelta(t, 3600, first.Executors[1].OverdueAssignedSeconds, 1e-6)
	assert.Nil(t, first.Executors[1].Surname)

	open := report[1]
	assert.Equal(t, 3, open.TaskID)
	assert.InDelta(t, 4*3600, open.TotalOverdueSeconds, 1e-6)
	require.Len(t, open.Executors, 1)
	assert.InDelta(t, 3*3600, open.Executors[0].OverdueAssignedSeconds, 1e-6)
}

func TestAnalyticsService_OverdueNoTasks(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	srv, taskRepo, _, _ := newTestAnalyticsService(t, now)
	ctx := context.Background()

	taskRepo.EXPECT().ListPlannedBetween(ctx, mock.Anything, mock.Anything).Return(nil, nil)

	report, err := srv.Overdue(ctx, now, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestAnalyticsService_OverdueInvalidRange(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	srv, _, _, _ := newTestAnalyticsService(t, now)

	_, err := srv.Overdue(context.Background(), now, now)
	require.ErrorIs(t, err, domainerrors.ErrInvalidDate)
}
