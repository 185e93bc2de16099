package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitorModel is the GORM-specific struct for the 'visitors' table.
type VisitorModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PhoneNumber string    `gorm:"type:varchar(20)"`
	Email       string    `gorm:"type:varchar(255)"`
	DeviceToken string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisitorModel) TableName() string {
	return "visitors"
}
