package model

import (
	"time"

	"github.com/google/uuid"
)

// CooldownStateModel is the GORM-specific struct for the 'cooldown_states' table.
// The composite unique index backs the conditional upsert that makes
// concurrent claims race-safe.
type CooldownStateModel struct {
	VisitorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cooldown_triple"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cooldown_triple"`
	Channel    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_cooldown_triple"`
	LastSentAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CooldownStateModel) TableName() string {
	return "cooldown_states"
}
