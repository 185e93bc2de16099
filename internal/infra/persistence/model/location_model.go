package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Address     string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
