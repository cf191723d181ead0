package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
}

// AnalyticsHandler serves task reports.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: params.AnalyticsUC}
}

// Overdue reports late tasks planned in [date_from, date_to).
func (h *AnalyticsHandler) Overdue(c echo.Context) error {
	from, err := parseDate(c.QueryParam("date_from"), "date_from")
	if err != nil {
		return err
	}
	to, err := parseDate(c.QueryParam("date_to"), "date_to")
	if err != nil {
		return err
	}

	report, err := h.analyticsUC.Overdue(c.Request().Context(), from, to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, report)
}
