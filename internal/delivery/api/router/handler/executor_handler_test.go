package handler

import (
	"net/http"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockUsecase "dispatch/internal/mocks/usecase"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecutorHandler_Search(t *testing.T) {
	executorUC := mockUsecase.NewMockExecutorUsecase(t)
	h := NewExecutorHandler(ExecutorHandlerParams{ExecutorUC: executorUC})

	executorUC.EXPECT().Search(mock.Anything, "iva").
		Return([]entity.Executor{{ExecID: 2, Surname: "Ivanov"}}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/executors/search?q=iva", "")

	require.NoError(t, h.Search(c))
	got := decodeData[[]entity.Executor](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Ivanov", got[0].Surname)
}

func TestExecutorHandler_Create(t *testing.T) {
	executorUC := mockUsecase.NewMockExecutorUsecase(t)
	h := NewExecutorHandler(ExecutorHandlerParams{ExecutorUC: executorUC})

	executorUC.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateExecutorInput) bool {
		return in.Surname == "Petrov" && in.Role == entity.RoleMaster
	})).Return(&entity.Executor{ExecID: 5, Surname: "Petrov", Role: entity.RoleMaster}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/executors", `{"surname":"Petrov","role":"master"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestExecutorHandler_Create_UnknownRole(t *testing.T) {
	executorUC := mockUsecase.NewMockExecutorUsecase(t)
	h := NewExecutorHandler(ExecutorHandlerParams{ExecutorUC: executorUC})

	c, _ := newTestContext(http.MethodPost, "/executors", `{"surname":"Petrov","role":"owner"}`)

	assert.Error(t, h.Create(c))
}

func TestExecutorHandler_Me_Unauthorized(t *testing.T) {
	executorUC := mockUsecase.NewMockExecutorUsecase(t)
	h := NewExecutorHandler(ExecutorHandlerParams{ExecutorUC: executorUC})

	executorUC.EXPECT().Me(mock.Anything).Return(nil, domainerrors.ErrUnauthorized).Once()

	c, _ := newTestContext(http.MethodGet, "/me", "")

	assert.ErrorIs(t, h.Me(c), domainerrors.ErrUnauthorized)
}
