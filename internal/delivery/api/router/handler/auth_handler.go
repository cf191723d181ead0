package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthHandler handles login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC}
}

// TelegramLoginRequest carries the raw Telegram Mini App init data.
type TelegramLoginRequest struct {
	InitData string `json:"init_data" validate:"required"`
}

// TelegramLogin exchanges verified init data for an access token.
func (h *AuthHandler) TelegramLogin(c echo.Context) error {
	var req TelegramLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.LoginWithTelegram(c.Request().Context(), req.InitData)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out)
}
