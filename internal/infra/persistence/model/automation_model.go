package model

import (
	"time"

	"github.com/google/uuid"
)

// AutomationModel is the GORM-specific struct for the 'automations' table.
// The composite unique index on (LocationID, Channel) backs the upsert's
// conflict target: one automation per location per channel.
type AutomationModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_automations_location_channel"`
	Channel         string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_automations_location_channel"`
	Enabled         bool      `gorm:"not null;default:false"`
	CooldownMinutes int       `gorm:"not null;default:60"`
	StartTime       string    `gorm:"type:varchar(5)"` // "HH:MM", empty for no window restriction
	EndTime         string    `gorm:"type:varchar(5)"`
	TemplateSubject string    `gorm:"type:text"`
	TemplateBody    string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AutomationModel) TableName() string {
	return "automations"
}
