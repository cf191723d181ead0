package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workTimeService implements the WorkTimeUsecase interface.
type workTimeService struct {
	workTimeRepo repository.WorkTimeRepository
	executorRepo repository.ExecutorRepository
	exporter     service.TimesheetExporter
	logger       *slog.Logger
}

// WorkTimeServiceParams holds dependencies for WorkTimeService, injected by Fx.
type WorkTimeServiceParams struct {
	fx.In

	WorkTimeRepo repository.WorkTimeRepository
	ExecutorRepo repository.ExecutorRepository
	Exporter     service.TimesheetExporter
	Logger       *slog.Logger
}

// NewWorkTimeService is the constructor for workTimeService.
func NewWorkTimeService(params WorkTimeServiceParams) usecase.WorkTimeUsecase {
	return &workTimeService{
		workTimeRepo: params.WorkTimeRepo,
		executorRepo: params.ExecutorRepo,
		exporter:     params.Exporter,
		logger:       params.Logger,
	}
}

func (srv *workTimeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns records newest date first.
func (srv *workTimeService) List(ctx context.Context, execID *int, workDate *time.Time) ([]entity.WorkTime, error) {
	records, err := srv.workTimeRepo.List(ctx, repository.WorkTimeFilter{ExecID: execID, WorkDate: workDate})
	if err != nil {
		return nil, translateError(err, "failed to list work times")
	}

	return records, nil
}

func (srv *workTimeService) Get(ctx context.Context, id int) (*entity.WorkTime, error) {
	record, err := srv.workTimeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find work time")
	}

	return record, nil
}

// Create stores a record for an existing executor. A second record for the
// same executor and date is a conflict.
func (srv *workTimeService) Create(ctx context.Context, input *usecase.WorkTimeInput) (*entity.WorkTime, error) {
	if err := srv.checkInput(ctx, input); err != nil {
		return nil, err
	}

	record := &entity.WorkTime{
		ExecID:      input.ExecID,
		WorkDate:    dateOnly(input.WorkDate),
		WorkMinutes: input.WorkMinutes,
	}
	if err := srv.workTimeRepo.Create(ctx, record); err != nil {
		return nil, translateError(err, "failed to create work time")
	}

	srv.log(ctx).Info("Work time recorded",
		slog.Int("exec_id", record.ExecID),
		slog.String("work_date", record.WorkDate.Format(time.DateOnly)),
		slog.Int("work_minutes", record.WorkMinutes),
	)

	return srv.Get(ctx, record.ID)
}

// Update replaces a record.
func (srv *workTimeService) Update(ctx context.Context, id int, input *usecase.WorkTimeInput) (*entity.WorkTime, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := srv.checkInput(ctx, input); err != nil {
		return nil, err
	}

	record := &entity.WorkTime{
		ID:          id,
		ExecID:      input.ExecID,
		WorkDate:    dateOnly(input.WorkDate),
		WorkMinutes: input.WorkMinutes,
	}
	if err := srv.workTimeRepo.Update(ctx, record); err != nil {
		return nil, translateError(err, "failed to update work time")
	}

	return srv.Get(ctx, id)
}

func (srv *workTimeService) Delete(ctx context.Context, id int) error {
	if err := srv.workTimeRepo.Delete(ctx, id); err != nil {
		return translateError(err, "failed to delete work time")
	}

	return nil
}

// ExportMonth writes the timesheet of the month containing month.
func (srv *workTimeService) ExportMonth(ctx context.Context, month time.Time, w io.Writer) error {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	executors, err := srv.executorRepo.List(ctx)
	if err != nil {
		return translateError(err, "failed to list executors")
	}

	records, err := srv.workTimeRepo.List(ctx, repository.WorkTimeFilter{From: &first, To: &last})
	if err != nil {
		return translateError(err, "failed to list work times")
	}

	if err := srv.exporter.ExportMonth(w, first, executors, records); err != nil {
		return errors.Wrap(err, "failed to export timesheet")
	}

	srv.log(ctx).Info("Timesheet exported",
		slog.String("month", first.Format("2006-01")),
		slog.Int("records", len(records)),
	)

	return nil
}

func (srv *workTimeService) checkInput(ctx context.Context, input *usecase.WorkTimeInput) error {
	if input.WorkMinutes < 0 || input.WorkMinutes > 24*60 {
		return domainerrors.ErrValidationFailed.WithDetails("work_minutes must be within a day")
	}
	if input.WorkDate.IsZero() {
		return domainerrors.ErrInvalidDate
	}

	if _, err := srv.executorRepo.FindByID(ctx, input.ExecID); err != nil {
		return translateError(err, "failed to find executor")
	}

	return nil
}

// dateOnly drops the clock part, keeping the calendar date as given.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
