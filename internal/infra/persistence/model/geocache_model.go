package model

import "time"

// PlaceGeolocationModel is the GORM-specific struct for the 'place_geolocations' table.
type PlaceGeolocationModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Address   string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_place_geolocations_address"`
	Lon       float64   `gorm:"type:decimal(17,14);not null"`
	Lat       float64   `gorm:"type:decimal(17,14);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceGeolocationModel) TableName() string {
	return "place_geolocations"
}
