package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/usecase"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/fx"
)

// executorService implements the ExecutorUsecase interface.
type executorService struct {
	executorRepo repository.ExecutorRepository
	logger       *slog.Logger
}

// ExecutorServiceParams holds dependencies for ExecutorService, injected by Fx.
type ExecutorServiceParams struct {
	fx.In

	ExecutorRepo repository.ExecutorRepository
	Logger       *slog.Logger
}

// NewExecutorService is the constructor for executorService.
func NewExecutorService(params ExecutorServiceParams) usecase.ExecutorUsecase {
	return &executorService{
		executorRepo: params.ExecutorRepo,
		logger:       params.Logger,
	}
}

func (srv *executorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *executorService) List(ctx context.Context) ([]entity.Executor, error) {
	executors, err := srv.executorRepo.List(ctx)
	if err != nil {
		return nil, translateError(err, "failed to list executors")
	}

	return executors, nil
}

// Create adds an executor. The role defaults to user.
func (srv *executorService) Create(ctx context.Context, input *usecase.CreateExecutorInput) (*entity.Executor, error) {
	executor := &entity.Executor{
		Surname:    strings.TrimSpace(input.Surname),
		Name:       strings.TrimSpace(input.Name),
		Phone:      strings.TrimSpace(input.Phone),
		TelegramID: input.TelegramID,
		Role:       input.Role,
	}
	if executor.Role == "" {
		executor.Role = entity.RoleUser
	}
	if executor.Surname == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("surname is required")
	}
	if !executor.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	if err := srv.executorRepo.Create(ctx, executor); err != nil {
		return nil, translateError(err, "failed to create executor")
	}

	srv.log(ctx).Info("Executor created", slog.Int("exec_id", executor.ExecID), slog.String("role", executor.Role.String()))

	return executor, nil
}

// Search ranks executors by fuzzy match of "surname name". An empty query
// returns everyone in list order.
func (srv *executorService) Search(ctx context.Context, query string) ([]entity.Executor, error) {
	executors, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return executors, nil
	}

	names := make([]string, len(executors))
	for i := range executors {
		names[i] = executors[i].DisplayName()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	result := make([]entity.Executor, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, executors[rank.OriginalIndex])
	}

	return result, nil
}

// Me returns the executor behind the request principal.
func (srv *executorService) Me(ctx context.Context) (*entity.Executor, error) {
	principal := deliverycontext.GetPrincipal(ctx)
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	executor, err := srv.executorRepo.FindByID(ctx, principal.ExecID)
	if err != nil {
		return nil, translateError(err, "failed to find current executor")
	}

	return executor, nil
}

func (srv *executorService) FindByTelegramID(ctx context.Context, telegramID int64) (*entity.Executor, error) {
	executor, err := srv.executorRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, translateError(err, "failed to find executor by telegram id")
	}

	return executor, nil
}
