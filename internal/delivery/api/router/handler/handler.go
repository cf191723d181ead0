// Package handler contains the HTTP handlers of the dispatch API.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/delivery/api/response"
	domainerrors "dispatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// parseDate parses a YYYY-MM-DD query value.
func parseDate(value, name string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidDate.WithDetails(name + " must be YYYY-MM-DD")
	}

	return d, nil
}
