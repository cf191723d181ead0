package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	mockRepo "dispatch/internal/mocks/repository"
	mockService "dispatch/internal/mocks/service"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	executorRepo *mockRepo.MockExecutorRepository
	verifier     *mockService.MockInitDataVerifier
	tokenService *mockService.MockTokenService
}

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, authServiceMocks) {
	t.Helper()

	m := authServiceMocks{
		executorRepo: mockRepo.NewMockExecutorRepository(t),
		verifier:     mockService.NewMockInitDataVerifier(t),
		tokenService: mockService.NewMockTokenService(t),
	}

	return NewAuthService(AuthServiceParams{
		ExecutorRepo: m.executorRepo,
		Verifier:     m.verifier,
		TokenService: m.tokenService,
		Logger:       newTestLogger(),
	}), m
}

func TestAuthService_LoginWithTelegram(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	expiresAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	executor := &entity.Executor{ExecID: 3, Surname: "Иванов", Role: entity.RoleMaster}

	m.verifier.EXPECT().Verify("query_id=1&hash=abc").Return(&service.TelegramUser{ID: 5001}, nil)
	m.executorRepo.EXPECT().FindByTelegramID(ctx, int64(5001)).Return(executor, nil)
	m.tokenService.EXPECT().Issue(&entity.Principal{ExecID: 3, Role: entity.RoleMaster}).Return("signed", expiresAt, nil)

	out, err := srv.LoginWithTelegram(ctx, "query_id=1&hash=abc")
	require.NoError(t, err)
	assert.Equal(t, "signed", out.AccessToken)
	assert.Equal(t, expiresAt, out.ExpiresAt)
	assert.Equal(t, executor, out.Executor)
}

func TestAuthService_LoginWithTelegramErrors(t *testing.T) {
	tests := []struct {
		name     string
		initData string
		setup    func(m authServiceMocks)
		wantErr  error
	}{
		{
			name:     "empty init data",
			initData: " ",
			wantErr:  domainerrors.ErrInvalidInitData,
		},
		{
			name:     "bad signature",
			initData: "hash=bad",
			setup: func(m authServiceMocks) {
				m.verifier.EXPECT().Verify("hash=bad").Return(nil, errors.New("hash mismatch"))
			},
			wantErr: domainerrors.ErrInvalidInitData,
		},
		{
			name:     "unknown telegram account",
			initData: "hash=ok",
			setup: func(m authServiceMocks) {
				m.verifier.EXPECT().Verify("hash=ok").Return(&service.TelegramUser{ID: 9}, nil)
				m.executorRepo.EXPECT().FindByTelegramID(context.Background(), int64(9)).Return(nil, repository.ErrExecutorNotFound)
			},
			wantErr: domainerrors.ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := newTestAuthService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			out, err := srv.LoginWithTelegram(context.Background(), tt.initData)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	srv, m := newTestAuthService(t)
	ctx := context.Background()
	principal := &entity.Principal{ExecID: 1, Role: entity.RoleAdmin}

	m.tokenService.EXPECT().Parse("good").Return(principal, nil)
	m.tokenService.EXPECT().Parse("bad").Return(nil, errors.New("token is expired"))

	got, err := srv.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, principal, got)

	_, err = srv.Authenticate(ctx, "bad")
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
