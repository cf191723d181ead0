package handler

import (
	"net/http"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockUsecase "dispatch/internal/mocks/usecase"
	"dispatch/internal/usecase"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskHandler_Get(t *testing.T) {
	taskUC := mockUsecase.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})

	taskUC.EXPECT().Get(mock.Anything, 7).Return(&entity.Task{TaskID: 7, AddressRaw: "Липецк, Ленина 1"}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/tasks/7", "")
	withParams(c, "id", "7")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, decodeData[entity.Task](t, rec).TaskID)
}

func TestTaskHandler_Get_NotFound(t *testing.T) {
	taskUC := mockUsecase.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})

	taskUC.EXPECT().Get(mock.Anything, 9).Return(nil, domainerrors.ErrTaskNotFound).Once()

	c, _ := newTestContext(http.MethodGet, "/tasks/9", "")
	withParams(c, "id", "9")

	assert.ErrorIs(t, h.Get(c), domainerrors.ErrTaskNotFound)
}

func TestTaskHandler_Create(t *testing.T) {
	taskUC := mockUsecase.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})

	body := `{
		"address_raw": "Липецк, Ленина 1",
		"latitude": 52.6,
		"longitude": 39.6,
		"service_minutes": 30,
		"planned_start": "2024-03-05T09:00:00Z",
		"due_datetime": "2024-03-05T12:00:00Z",
		"priority": "A",
		"executor_ids": [3, 4]
	}`

	taskUC.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateTaskInput) bool {
		return in.AddressRaw == "Липецк, Ленина 1" &&
			in.Priority == entity.PriorityA &&
			assert.ObjectsAreEqual([]int{3, 4}, in.ExecutorIDs)
	})).Return(&entity.Task{TaskID: 11}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/tasks", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 11, decodeData[entity.Task](t, rec).TaskID)
}

func TestTaskHandler_Create_ValidationFailed(t *testing.T) {
	taskUC := mockUsecase.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})

	c, _ := newTestContext(http.MethodPost, "/tasks", `{"priority": "Z"}`)

	err := h.Create(c)
	var validationErrs govalidator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.NotEmpty(t, validationErrs)
}

func TestTaskHandler_Delete(t *testing.T) {
	taskUC := mockUsecase.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})

	taskUC.EXPECT().Delete(mock.Anything, 5).Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/tasks/5", "")
	withParams(c, "id", "5")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTaskHandler_AssignAndRemoveExecutor(t *testing.T) {
	taskUC := mockUsecase.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})

	taskUC.EXPECT().AssignExecutor(mock.Anything, 5, 3).
		Return(&entity.Task{TaskID: 5, Executors: []entity.Executor{{ExecID: 3}}}, nil).Once()
	taskUC.EXPECT().RemoveExecutor(mock.Anything, 5, 3).Return(domainerrors.ErrAssignmentNotFound).Once()

	c, rec := newTestContext(http.MethodPost, "/tasks/5/executors/3", "")
	withParams(c, "id", "5", "execId", "3")
	require.NoError(t, h.AssignExecutor(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assigned := decodeData[entity.Task](t, rec)
	assert.Equal(t, []int{3}, assigned.ExecutorIDs())

	c, _ = newTestContext(http.MethodDelete, "/tasks/5/executors/3", "")
	withParams(c, "id", "5", "execId", "3")
	assert.ErrorIs(t, h.RemoveExecutor(c), domainerrors.ErrAssignmentNotFound)
}

func TestTaskHandler_AssignExecutor_BadExecID(t *testing.T) {
	taskUC := mockUsecase.NewMockTaskUsecase(t)
	h := NewTaskHandler(TaskHandlerParams{TaskUC: taskUC})

	c, _ := newTestContext(http.MethodPost, "/tasks/5/executors/x", "")
	withParams(c, "id", "5", "execId", "x")

	assert.ErrorIs(t, h.AssignExecutor(c), domainerrors.ErrValidationFailed)
}
