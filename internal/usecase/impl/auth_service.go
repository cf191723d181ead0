package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	executorRepo repository.ExecutorRepository
	verifier     service.InitDataVerifier
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	ExecutorRepo repository.ExecutorRepository
	Verifier     service.InitDataVerifier
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		executorRepo: params.ExecutorRepo,
		verifier:     params.Verifier,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginWithTelegram verifies the init data, resolves the executor by Telegram
// id and issues an access token. Unknown Telegram accounts are denied.
func (srv *authService) LoginWithTelegram(ctx context.Context, initData string) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(initData) == "" {
		return nil, domainerrors.ErrInvalidInitData.WithDetails("init data is empty")
	}

	user, err := srv.verifier.Verify(initData)
	if err != nil {
		srv.log(ctx).Warn("Rejected Telegram init data", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidInitData
	}

	executor, err := srv.executorRepo.FindByTelegramID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrExecutorNotFound) {
			srv.log(ctx).Warn("Login from unknown Telegram account", slog.Int64("telegram_id", user.ID))

			return nil, domainerrors.ErrAccessDenied.WithDetails("telegram account is not registered")
		}

		return nil, translateError(err, "failed to find executor by telegram id")
	}

	token, expiresAt, err := srv.tokenService.Issue(&entity.Principal{ExecID: executor.ExecID, Role: executor.Role})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Executor logged in",
		slog.Int("exec_id", executor.ExecID),
		slog.String("role", executor.Role.String()),
	)

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Executor:    executor,
	}, nil
}

// Authenticate turns a bearer token into a principal.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	principal, err := srv.tokenService.Parse(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected access token", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	return principal, nil
}
