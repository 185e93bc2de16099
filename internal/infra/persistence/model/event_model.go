package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventModel is the GORM-specific struct for the 'events' table.
// Rows are append-only; there is no UpdatedAt.
type EventModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationID uuid.UUID      `gorm:"type:uuid;not null;index:idx_events_location_created"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	VisitorID  uuid.UUID      `gorm:"type:uuid;index"`
	Channel    string         `gorm:"type:varchar(20)"`
	EventType  string         `gorm:"type:varchar(40);not null;index"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"index:idx_events_location_created"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
