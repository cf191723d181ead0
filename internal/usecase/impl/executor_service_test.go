package impl

import (
	"context"
	"testing"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	mockRepo "dispatch/internal/mocks/repository"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestExecutorService(t *testing.T) (usecase.ExecutorUsecase, *mockRepo.MockExecutorRepository) {
	t.Helper()

	repo := mockRepo.NewMockExecutorRepository(t)

	return NewExecutorService(ExecutorServiceParams{ExecutorRepo: repo, Logger: newTestLogger()}), repo
}

func TestExecutorService_CreateDefaultsRole(t *testing.T) {
	srv, repo := newTestExecutorService(t)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.MatchedBy(func(e *entity.Executor) bool {
		return e.Surname == "Иванов" && e.Role == entity.RoleUser
	})).RunAndReturn(func(_ context.Context, e *entity.Executor) error {
		e.ExecID = 12

		return nil
	})

	executor, err := srv.Create(ctx, &usecase.CreateExecutorInput{Surname: " Иванов ", Name: "Иван"})
	require.NoError(t, err)
	assert.Equal(t, 12, executor.ExecID)
	assert.Equal(t, entity.RoleUser, executor.Role)
}

func TestExecutorService_CreateDuplicateTelegramID(t *testing.T) {
	srv, repo := newTestExecutorService(t)
	ctx := context.Background()
	telegramID := int64(5001)

	repo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateExecutor)

	executor, err := srv.Create(ctx, &usecase.CreateExecutorInput{Surname: "Иванов", TelegramID: &telegramID})
	require.ErrorIs(t, err, domainerrors.ErrExecutorAlreadyExists)
	assert.Nil(t, executor)
}

func TestExecutorService_Search(t *testing.T) {
	executors := []entity.Executor{
		{ExecID: 1, Surname: "Петров", Name: "Пётр"},
		{ExecID: 2, Surname: "Иванов", Name: "Иван"},
		{ExecID: 3, Surname: "Сидоров", Name: "Иван"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{name: "empty query keeps order", query: " ", wantIDs: []int{1, 2, 3}},
		{name: "surname prefix", query: "иван", wantIDs: []int{2, 3}},
		{name: "no match", query: "кузнецов", wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo := newTestExecutorService(t)
			repo.EXPECT().List(mock.Anything).Return(executors, nil)

			found, err := srv.Search(context.Background(), tt.query)
			require.NoError(t, err)

			ids := make([]int, 0, len(found))
			for _, e := range found {
				ids = append(ids, e.ExecID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestExecutorService_Me(t *testing.T) {
	srv, repo := newTestExecutorService(t)

	_, err := srv.Me(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	ctx := deliverycontext.WithPrincipal(context.Background(), &entity.Principal{ExecID: 4, Role: entity.RoleUser})
	repo.EXPECT().FindByID(ctx, 4).Return(&entity.Executor{ExecID: 4, Surname: "Иванов"}, nil)

	me, err := srv.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, me.ExecID)
}

func TestExecutorService_FindByTelegramID(t *testing.T) {
	srv, repo := newTestExecutorService(t)
	ctx := context.Background()

	repo.EXPECT().FindByTelegramID(ctx, int64(77)).Return(nil, repository.ErrExecutorNotFound)

	_, err := srv.FindByTelegramID(ctx, 77)
	require.ErrorIs(t, err, domainerrors.ErrExecutorNotFound)
}
