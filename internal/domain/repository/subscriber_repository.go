// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for subscriber persistence.
var (
	// ErrSubscriberNotFound is returned when no subscriber has the contract number.
	ErrSubscriberNotFound = errors.New("subscriber not found")
	// ErrDuplicateSubscriber is returned when the contract number is already taken.
	ErrDuplicateSubscriber = errors.New("subscriber already exists")
)

// SubscriberRepository defines the interface for subscriber-related database operations.
type SubscriberRepository interface {
	// List returns every subscriber. Order is unspecified.
	List(ctx context.Context) ([]entity.Subscriber, error)

	// FindByContract retrieves a subscriber by contract number.
	FindByContract(ctx context.Context, contract string) (*entity.Subscriber, error)

	// Create persists a new subscriber.
	Create(ctx context.Context, subscriber *entity.Subscriber) error

	// Update overwrites every column of an existing subscriber.
	Update(ctx context.Context, subscriber *entity.Subscriber) error

	// Upsert inserts the subscribers, replacing rows with the same contract number,
	// and returns the number of rows written.
	Upsert(ctx context.Context, subscribers []entity.Subscriber) (int, error)
}
