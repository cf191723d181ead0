// Package entity contains the core business objects of the project.
package entity

import "time"

// BeaconCoordinate is a single GPS fix reported by the vehicle beacon.
type BeaconCoordinate struct {
	ID         int       `json:"id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}
