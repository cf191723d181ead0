// Package usecase declares the application operations exposed to deliveries.
package usecase

import (
	"context"

	"dispatch/internal/addrindex"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"
)

// CreateSubscriberInput holds the fields accepted when registering a subscriber.
// Coordinates and the geocoded address are filled by the geocoder when absent.
type CreateSubscriberInput struct {
	ContractNumber  string                  `json:"contract_number" validate:"required,max=64"`
	Surname         string                  `json:"surname" validate:"max=128"`
	Name            string                  `json:"name" validate:"max=128"`
	Patronymic      string                  `json:"patronymic" validate:"max=128"`
	City            string                  `json:"city" validate:"required,max=128"`
	District        string                  `json:"district" validate:"max=128"`
	Street          string                  `json:"street" validate:"max=255"`
	House           string                  `json:"house" validate:"required,max=32"`
	Latitude        *float64                `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64                `json:"longitude" validate:"omitempty,longitude"`
	GeocodedAddress *string                 `json:"yandex_address"`
	Status          entity.SubscriberStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateSubscriberInput is a partial update; nil fields keep their value.
type UpdateSubscriberInput struct {
	Surname         *string                  `json:"surname" validate:"omitempty,max=128"`
	Name            *string                  `json:"name" validate:"omitempty,max=128"`
	Patronymic      *string                  `json:"patronymic" validate:"omitempty,max=128"`
	City            *string                  `json:"city" validate:"omitempty,min=1,max=128"`
	District        *string                  `json:"district" validate:"omitempty,max=128"`
	Street          *string                  `json:"street" validate:"omitempty,max=255"`
	House           *string                  `json:"house" validate:"omitempty,min=1,max=32"`
	Latitude        *float64                 `json:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64                 `json:"longitude" validate:"omitempty,longitude"`
	GeocodedAddress *string                  `json:"yandex_address"`
	Status          *entity.SubscriberStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ImportResult summarizes a bulk subscriber import.
type ImportResult struct {
	Written  int                      `json:"written"`
	Rejected []service.ImportRowError `json:"rejected,omitempty"`
}

// SubscriberUsecase manages subscribers and serves address search from an
// in-memory index snapshot that is rebuilt after every mutation.
type SubscriberUsecase interface {
	// Rebuild reloads all subscribers and swaps in a fresh index snapshot.
	Rebuild(ctx context.Context) error

	// List returns all subscribers in index order.
	List(ctx context.Context) ([]entity.Subscriber, error)

	// Get returns a subscriber by contract number.
	Get(ctx context.Context, contract string) (*entity.Subscriber, error)

	// Create registers a subscriber, geocoding its address when needed.
	Create(ctx context.Context, input *CreateSubscriberInput) (*entity.Subscriber, error)

	// Update applies a partial update, re-geocoding when the address changed.
	Update(ctx context.Context, contract string, input *UpdateSubscriberInput) (*entity.Subscriber, error)

	// SuggestAddresses returns address suggestions for the address field.
	SuggestAddresses(ctx context.Context, query string) ([]addrindex.Address, error)

	// SuggestHouses returns house suggestions, optionally locked to an address key.
	SuggestHouses(ctx context.Context, addressText, lockedKey, houseText string) ([]addrindex.HouseEntry, error)

	// Search filters subscribers by address text and house query.
	Search(ctx context.Context, addressQuery, houseQuery string) ([]entity.Subscriber, error)

	// ContractQR renders the contract card QR code of a subscriber.
	ContractQR(ctx context.Context, contract string) ([]byte, error)

	// Geocode resolves a free-form address.
	Geocode(ctx context.Context, address string) (service.GeocodeResult, error)

	// Import upserts subscribers parsed from a spreadsheet.
	Import(ctx context.Context, subscribers []entity.Subscriber) (int, error)
}
