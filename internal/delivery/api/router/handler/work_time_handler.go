package handler

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/delivery/api/response"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkTimeHandlerParams holds dependencies for WorkTimeHandler, injected by Fx.
type WorkTimeHandlerParams struct {
	fx.In

	WorkTimeUC usecase.WorkTimeUsecase
}

// WorkTimeHandler serves the timesheet.
type WorkTimeHandler struct {
	workTimeUC usecase.WorkTimeUsecase
}

// NewWorkTimeHandler is the constructor for WorkTimeHandler
func NewWorkTimeHandler(params WorkTimeHandlerParams) *WorkTimeHandler {
	return &WorkTimeHandler{workTimeUC: params.WorkTimeUC}
}

// WorkTimeRequest creates or replaces a timesheet record.
type WorkTimeRequest struct {
	ExecID      int    `json:"exec_id" validate:"required,gt=0"`
	WorkDate    string `json:"work_date" validate:"required,datetime=2006-01-02"`
	WorkMinutes int    `json:"work_minutes" validate:"gte=0,lte=1440"`
}

func (r *WorkTimeRequest) toInput() (*usecase.WorkTimeInput, error) {
	workDate, err := parseDate(r.WorkDate, "work_date")
	if err != nil {
		return nil, err
	}

	return &usecase.WorkTimeInput{ExecID: r.ExecID, WorkDate: workDate, WorkMinutes: r.WorkMinutes}, nil
}

// List supports optional exec_id and work_date filters.
func (h *WorkTimeHandler) List(c echo.Context) error {
	var execID *int
	if raw := c.QueryParam("exec_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("exec_id must be an integer")
		}
		execID = &id
	}

	var workDate *time.Time
	if raw := c.QueryParam("work_date"); raw != "" {
		d, err := parseDate(raw, "work_date")
		if err != nil {
			return err
		}
		workDate = &d
	}

	records, err := h.workTimeUC.List(c.Request().Context(), execID, workDate)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records)
}

func (h *WorkTimeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.workTimeUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, record)
}

func (h *WorkTimeHandler) Create(c echo.Context) error {
	var req WorkTimeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	record, err := h.workTimeUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, record)
}

func (h *WorkTimeHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req WorkTimeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	record, err := h.workTimeUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, record)
}

func (h *WorkTimeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.workTimeUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Export downloads the timesheet of ?month=YYYY-MM as xlsx.
func (h *WorkTimeHandler) Export(c echo.Context) error {
	month, err := time.Parse("2006-01", c.QueryParam("month"))
	if err != nil {
		return domainerrors.ErrInvalidDate.WithDetails("month must be YYYY-MM")
	}

	var buf bytes.Buffer
	if err := h.workTimeUC.ExportMonth(c.Request().Context(), month, &buf); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="timesheet-`+month.Format("2006-01")+`.xlsx"`)

	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
