package impl

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	mockRepo "dispatch/internal/mocks/repository"
	mockService "dispatch/internal/mocks/service"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workTimeServiceMocks struct {
	workTimeRepo *mockRepo.MockWorkTimeRepository
	executorRepo *mockRepo.MockExecutorRepository
	exporter     *mockService.MockTimesheetExporter
}

func newTestWorkTimeService(t *testing.T) (usecase.WorkTimeUsecase, workTimeServiceMocks) {
	t.Helper()

	m := workTimeServiceMocks{
		workTimeRepo: mockRepo.NewMockWorkTimeRepository(t),
		executorRepo: mockRepo.NewMockExecutorRepository(t),
		exporter:     mockService.NewMockTimesheetExporter(t),
	}

	return NewWorkTimeService(WorkTimeServiceParams{
		WorkTimeRepo: m.workTimeRepo,
		ExecutorRepo: m.executorRepo,
		Exporter:     m.exporter,
		Logger:       newTestLogger(),
	}), m
}

func TestWorkTimeService_List(t *testing.T) {
	srv, m := newTestWorkTimeService(t)
	ctx := context.Background()
	execID := 3
	day := mustDate(t, "2026-03-02")

	m.workTimeRepo.EXPECT().List(ctx, repository.WorkTimeFilter{ExecID: &execID, WorkDate: &day}).
		Return([]entity.WorkTime{{ID: 1, ExecID: 3, WorkMinutes: 480}}, nil)

	records, err := srv.List(ctx, &execID, &day)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestWorkTimeService_Create(t *testing.T) {
	srv, m := newTestWorkTimeService(t)
	ctx := context.Background()

	m.executorRepo.EXPECT().FindByID(ctx, 3).Return(&entity.Executor{ExecID: 3, Surname: "Иванов"}, nil)
	m.workTimeRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.WorkTime) bool {
		return r.WorkDate.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) && r.WorkMinutes == 480
	})).RunAndReturn(func(_ context.Context, r *entity.WorkTime) error {
		r.ID = 9

		return nil
	})
	m.workTimeRepo.EXPECT().FindByID(ctx, 9).Return(&entity.WorkTime{ID: 9, ExecID: 3, Surname: "Иванов", WorkMinutes: 480}, nil)

	record, err := srv.Create(ctx, &usecase.WorkTimeInput{
		ExecID:      3,
		WorkDate:    time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC),
		WorkMinutes: 480,
	})
	require.NoError(t, err)
	assert.Equal(t, "Иванов", record.Surname)
}

func TestWorkTimeService_CreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.WorkTimeInput
		setup   func(m workTimeServiceMocks)
		wantErr error
	}{
		{
			name:    "minutes beyond a day",
			input:   usecase.WorkTimeInput{ExecID: 1, WorkDate: time.Now(), WorkMinutes: 1441},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown executor",
			input: usecase.WorkTimeInput{ExecID: 1, WorkDate: time.Now(), WorkMinutes: 60},
			setup: func(m workTimeServiceMocks) {
				m.executorRepo.EXPECT().FindByID(mock.Anything, 1).Return(nil, repository.ErrExecutorNotFound)
			},
			wantErr: domainerrors.ErrExecutorNotFound,
		},
		{
			name:  "duplicate date",
			input: usecase.WorkTimeInput{ExecID: 1, WorkDate: time.Now(), WorkMinutes: 60},
			setup: func(m workTimeServiceMocks) {
				m.executorRepo.EXPECT().FindByID(mock.Anything, 1).Return(&entity.Executor{ExecID: 1}, nil)
				m.workTimeRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateWorkTime)
			},
			wantErr: domainerrors.ErrWorkTimeAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestWorkTimeService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			record, err := srv.Create(context.Background(), &tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, record)
		})
	}
}

func TestWorkTimeService_UpdateMissing(t *testing.T) {
	srv, m := newTestWorkTimeService(t)
	ctx := context.Background()

	m.workTimeRepo.EXPECT().FindByID(ctx, 5).Return(nil, repository.ErrWorkTimeNotFound)

	_, err := srv.Update(ctx, 5, &usecase.WorkTimeInput{ExecID: 1, WorkDate: time.Now()})
	require.ErrorIs(t, err, domainerrors.ErrWorkTimeNotFound)
}

func TestWorkTimeService_Delete(t *testing.T) {
	srv, m := newTestWorkTimeService(t)
	ctx := context.Background()

	m.workTimeRepo.EXPECT().Delete(ctx, 5).Return(repository.ErrWorkTimeNotFound)

	require.ErrorIs(t, srv.Delete(ctx, 5), domainerrors.ErrWorkTimeNotFound)
}

func TestWorkTimeService_ExportMonth(t *testing.T) {
	srv, m := newTestWorkTimeService(t)
	ctx := context.Background()

	first := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	executors := []entity.Executor{{ExecID: 1, Surname: "Иванов"}}
	records := []entity.WorkTime{{ID: 1, ExecID: 1, WorkDate: first, WorkMinutes: 60}}

	m.executorRepo.EXPECT().List(ctx).Return(executors, nil)
	m.workTimeRepo.EXPECT().List(ctx, repository.WorkTimeFilter{From: &first, To: &last}).Return(records, nil)
	m.exporter.EXPECT().ExportMonth(mock.Anything, first, executors, records).RunAndReturn(
		func(w io.Writer, _ time.Time, _ []entity.Executor, _ []entity.WorkTime) error {
			_, err := w.Write([]byte("xlsx"))

			return err
		})

	var buf bytes.Buffer
	require.NoError(t, srv.ExportMonth(ctx, time.Date(2026, 2, 17, 9, 0, 0, 0, time.UTC), &buf))
	assert.Equal(t, "xlsx", buf.String())
}
