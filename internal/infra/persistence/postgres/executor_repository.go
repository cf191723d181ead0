package postgres

import (
	"context"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// executorRepository implements the repository.ExecutorRepository interface.
type executorRepository struct {
	db *gorm.DB
}

// NewExecutorRepository is the constructor for executorRepository.
func NewExecutorRepository(db *gorm.DB) repository.ExecutorRepository {
	return &executorRepository{
		db: db,
	}
}

// List returns all executors ordered by surname.
func (repo *executorRepository) List(ctx context.Context) ([]entity.Executor, error) {
	var models []model.ExecutorModel

	if err := repo.db.WithContext(ctx).
		Order("surname, name, exec_id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list executors")
	}

	return toExecutorDomains(models), nil
}

// FindByID retrieves an executor by id.
func (repo *executorRepository) FindByID(ctx context.Context, id int) (*entity.Executor, error) {
	var executorM model.ExecutorModel

	if err := repo.db.WithContext(ctx).
		Where("exec_id = ?", id).
		First(&executorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExecutorNotFound
		}

		return nil, errors.Wrap(err, "failed to find executor by ID")
	}

	executor := toExecutorDomain(&executorM)

	return &executor, nil
}

// FindByIDs returns the executors that exist among ids.
func (repo *executorRepository) FindByIDs(ctx context.Context, ids []int) ([]entity.Executor, error) {
	if len(ids) == 0 {
		return []entity.Executor{}, nil
	}

	var models []model.ExecutorModel

	if err := repo.db.WithContext(ctx).
		Where("exec_id IN ?", ids).
		Order("exec_id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find executors by IDs")
	}

	return toExecutorDomains(models), nil
}

// FindByTelegramID retrieves the executor linked to a Telegram account.
func (repo *executorRepository) FindByTelegramID(ctx context.Context, telegramID int64) (*entity.Executor, error) {
	var executorM model.ExecutorModel

	if err := repo.db.WithContext(ctx).
		Where("id_telegram = ?", telegramID).
		First(&executorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExecutorNotFound
		}

		return nil, errors.Wrap(err, "failed to find executor by telegram ID")
	}

	executor := toExecutorDomain(&executorM)

	return &executor, nil
}

// Create persists a new executor.
func (repo *executorRepository) Create(ctx context.Context, executor *entity.Executor) error {
	executorM := fromExecutorDomain(executor)

	if err := repo.db.WithContext(ctx).Create(executorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateExecutor
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create executor")
	}

	executor.ExecID = executorM.ExecID

	return nil
}

// --- Mapper Functions ---

func toExecutorDomain(data *model.ExecutorModel) entity.Executor {
	return entity.Executor{
		ExecID:     data.ExecID,
		Surname:    data.Surname,
		Name:       data.Name,
		Phone:      data.Phone,
		TelegramID: data.IDTelegram,
		Role:       entity.Role(data.Role),
	}
}

func toExecutorDomains(models []model.ExecutorModel) []entity.Executor {
	executors := make([]entity.Executor, 0, len(models))
	for i := range models {
		executors = append(executors, toExecutorDomain(&models[i]))
	}

	return executors
}

func fromExecutorDomain(data *entity.Executor) *model.ExecutorModel {
	role := data.Role
	if role == "" {
		role = entity.RoleUser
	}

	return &model.ExecutorModel{
		ExecID:     data.ExecID,
		Surname:    data.Surname,
		Name:       data.Name,
		Phone:      data.Phone,
		IDTelegram: data.TelegramID,
		Role:       string(role),
	}
}
