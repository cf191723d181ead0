package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/usecase"

	"go.uber.org/fx"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	taskRepo       repository.TaskRepository
	assignmentRepo repository.AssignmentRepository
	executorRepo   repository.ExecutorRepository
	logger         *slog.Logger
	now            func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	TaskRepo       repository.TaskRepository
	AssignmentRepo repository.AssignmentRepository
	ExecutorRepo   repository.ExecutorRepository
	Logger         *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		taskRepo:       params.TaskRepo,
		assignmentRepo: params.AssignmentRepo,
		executorRepo:   params.ExecutorRepo,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// assignmentInterval is the time an executor was linked to a task.
type assignmentInterval struct {
	execID int
	start  time.Time
	end    time.Time
}

// Overdue reports every late task planned in [from, to).
//
// A task is late by end - due, where end is actual_end or now for unfinished
// tasks. Each executor is charged with the overlap of its assignment
// intervals and [due, end]; current links run until end, archived links
// until they were removed.
func (srv *analyticsService) Overdue(ctx context.Context, from, to time.Time) ([]entity.TaskOverdue, error) {
	if !from.Before(to) {
		return nil, domainerrors.ErrInvalidDate.WithDetails("date_from must be before date_to")
	}

	tasks, err := srv.taskRepo.ListPlannedBetween(ctx, from, to)
	if err != nil {
		return nil, translateError(err, "failed to list tasks")
	}

	result := make([]entity.TaskOverdue, 0)
	if len(tasks) == 0 {
		return result, nil
	}

	taskIDs := make([]int, 0, len(tasks))
	for i := range tasks {
		taskIDs = append(taskIDs, tasks[i].TaskID)
	}

	current, err := srv.assignmentRepo.FindByTasks(ctx, taskIDs)
	if err != nil {
		return nil, translateError(err, "failed to load assignments")
	}
	history, err := srv.assignmentRepo.HistoryByTasks(ctx, taskIDs)
	if err != nil {
		return nil, translateError(err, "failed to load assignment history")
	}

	now := srv.now()
	surnames := map[int]*string{}
	for i := range tasks {
		task := &tasks[i]
		if task.DueDatetime.IsZero() {
			continue
		}

		end := now
		if task.ActualEnd != nil {
			end = *task.ActualEnd
		}

		total := end.Sub(task.DueDatetime)
		if total <= 0 {
			continue
		}

		var intervals []assignmentInterval
		for _, link := range current {
			if link.TaskID == task.TaskID {
				intervals = append(intervals, assignmentInterval{execID: link.ExecID, start: link.AssignedAt, end: end})
			}
		}
		for _, link := range history {
			if link.TaskID == task.TaskID {
				intervals = append(intervals, assignmentInterval{execID: link.ExecID, start: link.AssignedAt, end: link.RemovedAt})
			}
		}

		result = append(result, entity.TaskOverdue{
			TaskID:              task.TaskID,
			AddressRaw:          task.AddressRaw,
			TotalOverdueSeconds: total.Seconds(),
			Executors:           executorOverdue(intervals, task.DueDatetime, end, surnames),
		})
	}

	if err := srv.fillSurnames(ctx, result, surnames); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Overdue report computed",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("tasks", len(tasks)),
		slog.Int("overdue", len(result)),
	)

	return result, nil
}

// executorOverdue sums the overlap of each executor's intervals with
// [due, end], keeping executors in first-seen order. Every charged executor
// is registered in surnames for a later lookup.
func executorOverdue(intervals []assignmentInterval, due, end time.Time, surnames map[int]*string) []entity.ExecutorOverdue {
	stats := make([]entity.ExecutorOverdue, 0)
	index := map[int]int{}

	for _, iv := range intervals {
		start := iv.start
		if due.After(start) {
			start = due
		}
		stop := iv.end
		if end.Before(stop) {
			stop = end
		}

		d := stop.Sub(start)
		if d <= 0 {
			continue
		}

		i, ok := index[iv.execID]
		if !ok {
			i = len(stats)
			index[iv.execID] = i
			stats = append(stats, entity.ExecutorOverdue{ExecID: iv.execID})
			surnames[iv.execID] = nil
		}
		stats[i].OverdueAssignedSeconds += d.Seconds()
	}

	return stats
}

func (srv *analyticsService) fillSurnames(ctx context.Context, result []entity.TaskOverdue, surnames map[int]*string) error {
	if len(surnames) == 0 {
		return nil
	}

	ids := make([]int, 0, len(surnames))
	for id := range surnames {
		ids = append(ids, id)
	}

	executors, err := srv.executorRepo.FindByIDs(ctx, ids)
	if err != nil {
		return translateError(err, "failed to load executors")
	}
	for i := range executors {
		surname := executors[i].Surname
		surnames[executors[i].ExecID] = &surname
	}

	for i := range result {
		for j := range result[i].Executors {
			result[i].Executors[j].Surname = surnames[result[i].Executors[j].ExecID]
		}
	}

	return nil
}
