package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "dispatch/internal/delivery/context"
	domainerrors "dispatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-7")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-7", body["meta"].(map[string]any)["request_id"])

	return body["error"].(map[string]any)
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"task_id": 3}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"task_id":3},"meta":{"request_id":"req-7"}}`, rec.Body.String())
}

func TestAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, AppError(c, domainerrors.ErrValidationFailed.WithDetails("unknown priority")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])
	assert.Equal(t, "unknown priority", errInfo["details"])
}

func TestAppError_NoDetails(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, AppError(c, domainerrors.ErrTaskNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, decodeError(t, rec), "details")
}

func TestError_DropsDetailsForAuthAndServerErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusBadGateway} {
		c, rec := newContext()

		require.NoError(t, Error(c, status, "X", "x", "secret"))

		assert.Equal(t, status, rec.Code)
		assert.NotContains(t, decodeError(t, rec), "details")
	}
}

func TestValidationFailed(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, ValidationFailed(c, []domainerrors.FieldError{{Field: "work_date", Rule: "datetime", Param: "2006-01-02"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details := decodeError(t, rec)["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "work_date", details[0].(map[string]any)["field"])
}

func TestInternalError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, InternalError(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), decodeError(t, rec)["code"])
}
