package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
}

// TaskHandler serves tasks and their executor assignments.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{taskUC: params.TaskUC}
}

func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.taskUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, tasks)
}

func (h *TaskHandler) Get(c echo.Context) error {
	taskID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	task, err := h.taskUC.Get(c.Request().Context(), taskID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, task)
}

func (h *TaskHandler) Create(c echo.Context) error {
	var req usecase.CreateTaskInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUC.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, task)
}

func (h *TaskHandler) Update(c echo.Context) error {
	taskID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req usecase.UpdateTaskInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskUC.Update(c.Request().Context(), taskID, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, task)
}

func (h *TaskHandler) Delete(c echo.Context) error {
	taskID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskUC.Delete(c.Request().Context(), taskID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TaskHandler) ListExecutors(c echo.Context) error {
	taskID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	executors, err := h.taskUC.ListExecutors(c.Request().Context(), taskID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, executors)
}

func (h *TaskHandler) AssignExecutor(c echo.Context) error {
	taskID, execID, err := taskExecutorIDs(c)
	if err != nil {
		return err
	}

	task, err := h.taskUC.AssignExecutor(c.Request().Context(), taskID, execID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, task)
}

func (h *TaskHandler) RemoveExecutor(c echo.Context) error {
	taskID, execID, err := taskExecutorIDs(c)
	if err != nil {
		return err
	}

	if err := h.taskUC.RemoveExecutor(c.Request().Context(), taskID, execID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func taskExecutorIDs(c echo.Context) (int, int, error) {
	taskID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	execID, err := pathID(c, "execId")
	if err != nil {
		return 0, 0, err
	}

	return taskID, execID, nil
}
