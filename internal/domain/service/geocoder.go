package service

import "context"

// GeocodeResult is the first match returned for a free-form address.
// A zero result means the geocoder found nothing.
type GeocodeResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// IsEmpty reports whether the geocoder returned no match.
func (r GeocodeResult) IsEmpty() bool {
	return r.Latitude == 0 && r.Longitude == 0 && r.Address == ""
}

// Geocoder resolves addresses to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
}
