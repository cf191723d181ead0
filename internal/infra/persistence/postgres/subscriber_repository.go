// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const subscriberUpsertBatchSize = 500

// subscriberRepository implements the repository.SubscriberRepository interface.
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(db *gorm.DB) repository.SubscriberRepository {
	return &subscriberRepository{
		db: db,
	}
}

// List returns every subscriber.
func (repo *subscriberRepository) List(ctx context.Context) ([]entity.Subscriber, error) {
	var models []model.SubscriberModel

	if err := repo.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	subscribers := make([]entity.Subscriber, 0, len(models))
	for i := range models {
		subscribers = append(subscribers, toSubscriberDomain(&models[i]))
	}

	return subscribers, nil
}

// FindByContract retrieves a subscriber by contract number.
func (repo *subscriberRepository) FindByContract(ctx context.Context, contract string) (*entity.Subscriber, error) {
	var subscriberM model.SubscriberModel

	if err := repo.db.WithContext(ctx).
		Where("contract_number = ?", contract).
		First(&subscriberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber by contract")
	}

	subscriber := toSubscriberDomain(&subscriberM)

	return &subscriber, nil
}

// Create persists a new subscriber.
func (repo *subscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM := fromSubscriberDomain(subscriber)

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscriber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscriber")
	}

	return nil
}

// Update overwrites every column of an existing subscriber.
func (repo *subscriberRepository) Update(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM := fromSubscriberDomain(subscriber)

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriberModel{}).
		Where("contract_number = ?", subscriber.ContractNumber).
		Select("*").
		Updates(subscriberM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscriber")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriberNotFound
	}

	return nil
}

// Upsert inserts subscribers, overwriting rows with the same contract number.
func (repo *subscriberRepository) Upsert(ctx context.Context, subscribers []entity.Subscriber) (int, error) {
	if len(subscribers) == 0 {
		return 0, nil
	}

	models := make([]*model.SubscriberModel, 0, len(subscribers))
	for i := range subscribers {
		models = append(models, fromSubscriberDomain(&subscribers[i]))
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "contract_number"}},
			UpdateAll: true,
		}).
		CreateInBatches(models, subscriberUpsertBatchSize)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert subscribers")
	}

	return int(result.RowsAffected), nil
}

// --- Mapper Functions ---

func toSubscriberDomain(data *model.SubscriberModel) entity.Subscriber {
	return entity.Subscriber{
		ContractNumber:  data.ContractNumber,
		Surname:         data.Surname,
		Name:            data.Name,
		Patronymic:      data.Patronymic,
		City:            data.City,
		District:        data.District,
		Street:          data.Street,
		House:           data.House,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		GeocodedAddress: data.YandexAddress,
		Status:          entity.SubscriberStatus(data.Status),
	}
}

func fromSubscriberDomain(data *entity.Subscriber) *model.SubscriberModel {
	status := data.Status
	if status == "" {
		status = entity.SubscriberActive
	}

	return &model.SubscriberModel{
		ContractNumber: data.ContractNumber,
		Surname:        data.Surname,
		Name:           data.Name,
		Patronymic:     data.Patronymic,
		City:           data.City,
		District:       data.District,
		Street:         data.Street,
		House:          data.House,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		YandexAddress:  data.GeocodedAddress,
		Status:         string(status),
	}
}
