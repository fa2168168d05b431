package model

import (
	"time"
)

// HouseModel is the GORM-specific struct for the 'houses' table.
// Range checks mirror the create-time validation so rows written outside
// the service still satisfy them.
type HouseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"type:varchar(128);not null;index:idx_houses_on_user"`
	Address   string    `gorm:"type:text;not null"`
	Latitude  float64   `gorm:"type:double precision;not null;index:idx_houses_on_lat_lng;check:chk_houses_latitude,latitude BETWEEN -90 AND 90"`
	Longitude float64   `gorm:"type:double precision;not null;index:idx_houses_on_lat_lng;check:chk_houses_longitude,longitude BETWEEN -180 AND 180"`
	Image     string    `gorm:"type:text;not null"`
	Bedrooms  int       `gorm:"not null;check:chk_houses_bedrooms,bedrooms BETWEEN 1 AND 10"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (HouseModel) TableName() string {
	return "houses"
}
