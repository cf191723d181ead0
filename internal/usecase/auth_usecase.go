package usecase

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
)

// LoginOutput is returned after a successful login.
type LoginOutput struct {
	AccessToken string           `json:"access_token"`
	ExpiresAt   time.Time        `json:"expires_at"`
	Executor    *entity.Executor `json:"executor"`
}

// AuthUsecase authenticates executors.
type AuthUsecase interface {
	// LoginWithTelegram verifies Mini App init data and issues an access token.
	LoginWithTelegram(ctx context.Context, initData string) (*LoginOutput, error)

	// Authenticate turns a bearer token into a principal.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)
}
