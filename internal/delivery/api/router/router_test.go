package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch/config"
	"dispatch/internal/delivery/api/middleware"
	"dispatch/internal/delivery/api/router/handler"
	"dispatch/internal/domain/entity"
	mockUsecase "dispatch/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUsecase.NewMockAuthUsecase(t)

	r := NewRouter(RouterParams{
		AuthHandler:       &handler.AuthHandler{},
		SubscriberHandler: &handler.SubscriberHandler{},
		TaskHandler:       &handler.TaskHandler{},
		ExecutorHandler:   &handler.ExecutorHandler{},
		WorkTimeHandler:   &handler.WorkTimeHandler{},
		PlaybackHandler:   &handler.PlaybackHandler{},
		AnalyticsHandler:  &handler.AnalyticsHandler{},
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			AuthUC: authUC,
			Config: &config.Config{Auth: &config.AuthConfig{}},
			Logger: logger,
		}),
		Config: &config.Config{},
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return e, authUC
}

func serve(e *echo.Echo, method, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRegisterRoutes_Status(t *testing.T) {
	e, _ := newTestEcho(t)

	tests := []struct {
		name   string
		method string
		target string
		want   int
	}{
		{name: "health is public", method: http.MethodGet, target: "/health", want: http.StatusOK},
		{name: "unknown path is not found", method: http.MethodGet, target: "/no/such/route", want: http.StatusNotFound},
		{name: "unknown root path is not found", method: http.MethodPost, target: "/tasksx", want: http.StatusNotFound},
		{name: "tasks need a principal", method: http.MethodGet, target: "/tasks", want: http.StatusUnauthorized},
		{name: "single routes need a principal", method: http.MethodGet, target: "/me", want: http.StatusUnauthorized},
		{name: "geocode needs a principal", method: http.MethodGet, target: "/geocode?address=x", want: http.StatusUnauthorized},
		{name: "metrics disabled without registry", method: http.MethodGet, target: "/metrics", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRegisterRoutes_AdminOnlyTimesheet(t *testing.T) {
	e, authUC := newTestEcho(t)

	authUC.EXPECT().Authenticate(mock.Anything, "user-token").
		Return(&entity.Principal{ExecID: 3, Role: entity.RoleUser}, nil).Once()

	rec := serve(e, http.MethodGet, "/work_times", "Bearer user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
