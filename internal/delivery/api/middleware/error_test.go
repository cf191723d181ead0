package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/delivery/api/validator"
	domainerrors "dispatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks/1", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrTaskNotFound, "get task"),
			wantStatus: http.StatusNotFound,
			wantCode:   "TASK_NOT_FOUND",
		},
		{
			name:       "task references unknown contract",
			err:        errors.Wrap(domainerrors.ErrSubscriberNotFound, "failed to create task"),
			wantStatus: http.StatusNotFound,
			wantCode:   "SUBSCRIBER_NOT_FOUND",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newErrorContext()

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
		})
	}
}

func TestErrorMiddleware_ValidationErrors(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	type request struct {
		ContractNumber string `json:"contract_number" validate:"required"`
	}
	err := validator.New().Validate(&request{})
	require.Error(t, err)

	c, rec := newErrorContext()
	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), body.Error.Code)
	assert.Contains(t, rec.Body.String(), `"field":"contract_number"`)
	assert.Contains(t, rec.Body.String(), `"rule":"required"`)
}

func TestErrorMiddleware_HidesDetailsOnForbidden(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newErrorContext()
	m.HandleHTTPError(domainerrors.ErrAccessDenied.WithDetails("role guest"), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decodeError(t, rec).Error.Details)
}
