package model

import "time"

// BeaconCoordinateModel is the GORM-specific struct for the 'beacon_coordinates' table.
type BeaconCoordinateModel struct {
	ID         int       `gorm:"primaryKey;autoIncrement"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	RecordedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (BeaconCoordinateModel) TableName() string {
	return "beacon_coordinates"
}
