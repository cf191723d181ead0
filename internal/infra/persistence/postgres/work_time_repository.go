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

const dateLayout = "2006-01-02"

// workTimeRepository implements the repository.WorkTimeRepository interface.
type workTimeRepository struct {
	db *gorm.DB
}

// NewWorkTimeRepository is the constructor for workTimeRepository.
func NewWorkTimeRepository(db *gorm.DB) repository.WorkTimeRepository {
	return &workTimeRepository{
		db: db,
	}
}

func (repo *workTimeRepository) joined(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("executor_work_times w").
		Select("w.*, e.surname, e.name").
		Joins("JOIN executors e ON e.exec_id = w.exec_id")
}

// List returns the matching records, newest work date first.
func (repo *workTimeRepository) List(ctx context.Context, filter repository.WorkTimeFilter) ([]entity.WorkTime, error) {
	query := repo.joined(ctx)
	if filter.ExecID != nil {
		query = query.Where("w.exec_id = ?", *filter.ExecID)
	}
	if filter.WorkDate != nil {
		query = query.Where("w.work_date = ?", filter.WorkDate.Format(dateLayout))
	}
	if filter.From != nil {
		query = query.Where("w.work_date >= ?", filter.From.Format(dateLayout))
	}
	if filter.To != nil {
		query = query.Where("w.work_date <= ?", filter.To.Format(dateLayout))
	}

	var rows []model.WorkTimeRow
	if err := query.Order("w.work_date DESC, w.id DESC").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list work times")
	}

	records := make([]entity.WorkTime, 0, len(rows))
	for i := range rows {
		records = append(records, toWorkTimeDomain(&rows[i]))
	}

	return records, nil
}

// FindByID retrieves a record by id.
func (repo *workTimeRepository) FindByID(ctx context.Context, id int) (*entity.WorkTime, error) {
	var rows []model.WorkTimeRow

	if err := repo.joined(ctx).
		Where("w.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find work time by ID")
	}

	if len(rows) == 0 {
		return nil, repository.ErrWorkTimeNotFound
	}

	record := toWorkTimeDomain(&rows[0])

	return &record, nil
}

// Create persists a record.
func (repo *workTimeRepository) Create(ctx context.Context, record *entity.WorkTime) error {
	recordM := fromWorkTimeDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWorkTime
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrExecutorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create work time")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// Update replaces executor, date and minutes of an existing record.
func (repo *workTimeRepository) Update(ctx context.Context, record *entity.WorkTime) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkTimeModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"exec_id":      record.ExecID,
			"work_date":    record.WorkDate.Format(dateLayout),
			"work_minutes": record.WorkMinutes,
			"updated_at":   gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateWorkTime
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrExecutorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update work time")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkTimeNotFound
	}

	return nil
}

// Delete removes a record.
func (repo *workTimeRepository) Delete(ctx context.Context, id int) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.WorkTimeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete work time")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkTimeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toWorkTimeDomain(data *model.WorkTimeRow) entity.WorkTime {
	return entity.WorkTime{
		ID:          data.ID,
		ExecID:      data.ExecID,
		Surname:     data.Surname,
		Name:        data.Name,
		WorkDate:    data.WorkDate,
		WorkMinutes: data.WorkMinutes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromWorkTimeDomain(data *entity.WorkTime) *model.WorkTimeModel {
	return &model.WorkTimeModel{
		ID:          data.ID,
		ExecID:      data.ExecID,
		WorkDate:    data.WorkDate,
		WorkMinutes: data.WorkMinutes,
	}
}
