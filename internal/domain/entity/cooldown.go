// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CooldownState records the last successful send for one
// (visitor, location, channel) triple. It is created on the first send,
// overwritten on every subsequent send, and never deleted by the policy
// itself (operators may prune rows after long inactivity).
type CooldownState struct {
	VisitorID  uuid.UUID `json:"visitor_id"`
	LocationID uuid.UUID `json:"location_id"`
	Channel    Channel   `json:"channel"`
	LastSentAt time.Time `json:"last_sent_at"`
}

// Expired reports whether a new send is permitted at the given instant for
// the given cooldown duration.
func (s *CooldownState) Expired(now time.Time, cooldown time.Duration) bool {
	return now.Sub(s.LastSentAt) >= cooldown
}
