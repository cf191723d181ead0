package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dispatch/internal/delivery/api/validator"
	domainerrors "dispatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an echo context with the production validator installed.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withParams(c echo.Context, kv ...string) echo.Context {
	names := make([]string, 0, len(kv)/2)
	values := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		names = append(names, kv[i])
		values = append(values, kv[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeData[map[string]string](t, rec)["status"])
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{name: "positive", value: "42", want: 42},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-3", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "/", "")
			withParams(c, "id", tt.value)

			got, err := pathID(c, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-03-05", "date")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDate("05.03.2024", "date")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDate)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/auth/telegram", "{not json")

	var req TelegramLoginRequest
	err := bindAndValidate(c, &req)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
