package addrindex

import (
	"slices"
	"strings"

	"dispatch/internal/domain/entity"

	"golang.org/x/text/language"
)

// DefaultSuggestionLimit caps the number of address suggestions.
const DefaultSuggestionLimit = 10

// Address is a distinct street-level address: city, district and street.
type Address struct {
	Display  string `json:"display"`
	Key      string `json:"key"`
	City     string `json:"city"`
	District string `json:"district,omitempty"`
	Street   string `json:"street,omitempty"`
}

// HouseEntry is one subscriber's house under an address key.
type HouseEntry struct {
	Address
	Display        string `json:"display"`
	House          string `json:"house"`
	ContractNumber string `json:"contract_number"`
}

func newAddress(s *entity.Subscriber) Address {
	display := s.AddressLine()

	return Address{
		Display:  display,
		Key:      Normalize(display),
		City:     strings.TrimSpace(s.City),
		District: strings.TrimSpace(s.District),
		Street:   strings.TrimSpace(s.Street),
	}
}

func newHouseEntry(s *entity.Subscriber) HouseEntry {
	addr := newAddress(s)
	house := strings.TrimSpace(s.House)

	return HouseEntry{
		Address:        addr,
		Display:        entity.JoinNonEmpty(" ", addr.Display, house),
		House:          house,
		ContractNumber: s.ContractNumber,
	}
}

type options struct {
	limit    int
	language language.Tag
}

// Option configures Build.
type Option func(*options)

// WithSuggestionLimit overrides DefaultSuggestionLimit. Non-positive values disable the cap.
func WithSuggestionLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithLanguage sets the collation language used for ordering.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.language = tag
	}
}

// Index is an immutable snapshot of the subscriber list prepared for search.
type Index struct {
	subscribers []entity.Subscriber
	addresses   []Address
	houses      map[string][]HouseEntry
	limit       int
}

// Build sorts a copy of subscribers and derives the distinct address list and
// the per-address house groups from it. The input slice is not modified.
func Build(subscribers []entity.Subscriber, opts ...Option) *Index {
	o := options{limit: DefaultSuggestionLimit, language: DefaultLanguage}
	for _, opt := range opts {
		opt(&o)
	}

	cmp := newComparator(o.language)

	sorted := slices.Clone(subscribers)
	slices.SortStableFunc(sorted, func(a, b entity.Subscriber) int {
		return cmp.subscriber(&a, &b)
	})

	idx := &Index{
		subscribers: sorted,
		addresses:   make([]Address, 0),
		houses:      make(map[string][]HouseEntry),
		limit:       o.limit,
	}

	for i := range sorted {
		entry := newHouseEntry(&sorted[i])
		if _, seen := idx.houses[entry.Key]; !seen {
			idx.addresses = append(idx.addresses, entry.Address)
		}
		idx.houses[entry.Key] = append(idx.houses[entry.Key], entry)
	}

	slices.SortStableFunc(idx.addresses, cmp.address)
	for key := range idx.houses {
		slices.SortStableFunc(idx.houses[key], cmp.houseEntry)
	}

	return idx
}

// Len returns the number of subscribers in the snapshot.
func (idx *Index) Len() int {
	return len(idx.subscribers)
}

// Subscribers returns the snapshot in its sorted order. Callers must not modify it.
func (idx *Index) Subscribers() []entity.Subscriber {
	return idx.subscribers
}

// Addresses returns every distinct address in sorted order. Callers must not modify it.
func (idx *Index) Addresses() []Address {
	return idx.addresses
}

// Houses returns the sorted house group of an address key, or nil for an unknown key.
func (idx *Index) Houses(key string) []HouseEntry {
	return idx.houses[key]
}

// SuggestAddresses returns the addresses whose display matches query under
// MatchTokens, in sorted order and capped at the suggestion limit. An empty
// query returns the head of the address list.
func (idx *Index) SuggestAddresses(query string) []Address {
	result := make([]Address, 0)
	for _, addr := range idx.addresses {
		if idx.limit > 0 && len(result) >= idx.limit {
			break
		}
		if MatchTokens(query, addr.Display) {
			result = append(result, addr)
		}
	}

	return result
}

// SuggestHouses returns the house entries for the house field.
//
// The pool is chosen in order: the group of lockedKey when the caller locked
// an address by picking a suggestion, the entries whose display matches
// addressText, or every entry. A locked key the index does not know, e.g.
// one picked before a rebuild removed its last subscriber, is ignored. The
// pool is then narrowed to houses starting with houseText, case-insensitively.
func (idx *Index) SuggestHouses(addressText, lockedKey, houseText string) []HouseEntry {
	houseText = strings.TrimSpace(houseText)

	locked, isLocked := idx.houses[lockedKey]

	var pool []HouseEntry
	switch {
	case lockedKey != "" && isLocked:
		pool = locked
	case strings.TrimSpace(addressText) != "":
		pool = idx.collectHouses(func(h *HouseEntry) bool {
			return MatchTokens(addressText, h.Display)
		})
	default:
		pool = idx.collectHouses(nil)
	}

	result := make([]HouseEntry, 0, len(pool))
	for _, h := range pool {
		if houseText == "" || hasPrefixFold(h.House, houseText) {
			result = append(result, h)
		}
	}

	return result
}

// collectHouses walks the groups in address order.
func (idx *Index) collectHouses(keep func(*HouseEntry) bool) []HouseEntry {
	var out []HouseEntry
	for _, addr := range idx.addresses {
		for i := range idx.houses[addr.Key] {
			h := &idx.houses[addr.Key][i]
			if keep == nil || keep(h) {
				out = append(out, *h)
			}
		}
	}

	return out
}

// Filter applies Filter to the sorted snapshot.
func (idx *Index) Filter(addressQuery, houseQuery string) []entity.Subscriber {
	return Filter(idx.subscribers, addressQuery, houseQuery)
}
