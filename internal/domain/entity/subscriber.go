// Package entity contains the core business objects of the project.
package entity

import "strings"

// SubscriberStatus is the lifecycle flag of a subscriber contract.
type SubscriberStatus string

const (
	// SubscriberActive marks a subscriber with a live contract.
	SubscriberActive SubscriberStatus = "active"
	// SubscriberInactive marks a subscriber whose contract is suspended or closed.
	SubscriberInactive SubscriberStatus = "inactive"
)

// IsValid checks if the status is a known value.
func (s SubscriberStatus) IsValid() bool {
	return s == SubscriberActive || s == SubscriberInactive
}

// Subscriber is an end customer with a fixed address, identified by contract number.
type Subscriber struct {
	ContractNumber  string           `json:"contract_number"`
	Surname         string           `json:"surname,omitempty"`
	Name            string           `json:"name,omitempty"`
	Patronymic      string           `json:"patronymic,omitempty"`
	City            string           `json:"city"`
	District        string           `json:"district,omitempty"`
	Street          string           `json:"street,omitempty"`
	House           string           `json:"house"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	GeocodedAddress string           `json:"yandex_address"` // Full address returned by the geocoder.
	Status          SubscriberStatus `json:"status"`
}

// AddressLine joins the non-empty city, district and street with a single space.
func (s *Subscriber) AddressLine() string {
	return JoinNonEmpty(" ", s.City, s.District, s.Street)
}

// GeocodeQuery is the free-form address sent to the geocoder.
func (s *Subscriber) GeocodeQuery() string {
	return JoinNonEmpty(", ", s.City, s.District, s.Street, s.House)
}

// HasStreetLevelAddress reports whether at least one of district or street is set.
func (s *Subscriber) HasStreetLevelAddress() bool {
	return strings.TrimSpace(s.District) != "" || strings.TrimSpace(s.Street) != ""
}

// FullName returns "surname name patronymic" without empty parts.
func (s *Subscriber) FullName() string {
	return JoinNonEmpty(" ", s.Surname, s.Name, s.Patronymic)
}

// JoinNonEmpty joins the trimmed non-empty parts with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, sep)
}
