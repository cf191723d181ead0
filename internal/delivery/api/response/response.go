package response

import (
	"net/http"

	deliverycontext "dispatch/internal/delivery/context"
	domainerrors "dispatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope of every successful JSON response.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of every failed JSON response.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "SUBSCRIBER_NOT_FOUND"
	Message string `json:"message"`           // shown to the dispatcher as is
	Details any    `json:"details,omitempty"` // only for 4xx other than 401/403
}

// MetaInfo carries the request id so clients can quote it in bug reports.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success writes data inside the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes an error envelope. Details are dropped for 5xx and auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError renders a domain error with its status, code and details.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// ValidationFailed renders request validation failures as a 400 with per-field details.
func ValidationFailed(c echo.Context, fields []domainerrors.FieldError) error {
	return Error(c, http.StatusBadRequest,
		domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), fields)
}

// InternalError renders the generic 500 without exposing the cause.
func InternalError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), nil)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
