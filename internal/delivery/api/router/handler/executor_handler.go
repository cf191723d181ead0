package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExecutorHandlerParams holds dependencies for ExecutorHandler, injected by Fx.
type ExecutorHandlerParams struct {
	fx.In

	ExecutorUC usecase.ExecutorUsecase
}

// ExecutorHandler serves field technicians.
type ExecutorHandler struct {
	executorUC usecase.ExecutorUsecase
}

// NewExecutorHandler is the constructor for ExecutorHandler
func NewExecutorHandler(params ExecutorHandlerParams) *ExecutorHandler {
	return &ExecutorHandler{executorUC: params.ExecutorUC}
}

func (h *ExecutorHandler) List(c echo.Context) error {
	executors, err := h.executorUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, executors)
}

func (h *ExecutorHandler) Create(c echo.Context) error {
	var req usecase.CreateExecutorInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	executor, err := h.executorUC.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, executor)
}

// Search serves the executor picker.
func (h *ExecutorHandler) Search(c echo.Context) error {
	executors, err := h.executorUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, executors)
}

// Me returns the authenticated executor.
func (h *ExecutorHandler) Me(c echo.Context) error {
	executor, err := h.executorUC.Me(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, executor)
}
