// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visitor is a registered end-user device whose position updates are
// evaluated against geofences. Every visitor session gets its own identity
// record; contact details determine which channels can actually reach it.
type Visitor struct {
	ID          uuid.UUID `json:"id"`           // Stable per-device identifier.
	PhoneNumber string    `json:"phone_number"` // E.164 phone for the sms channel; empty if unregistered.
	Email       string    `json:"email"`        // Email address for the email channel; empty if unregistered.
	DeviceToken string    `json:"device_token"` // FCM registration token for the push channel; empty if unregistered.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}

// ContactFor returns the delivery address for the given channel and whether
// the visitor has one registered.
func (v *Visitor) ContactFor(channel Channel) (string, bool) {
	var to string
	switch channel {
	case ChannelSMS:
		to = v.PhoneNumber
	case ChannelEmail:
		to = v.Email
	case ChannelPush:
		to = v.DeviceToken
	}

	return to, to != ""
}

// PositionUpdate is a single visitor coordinate report, the input to the
// decision engine.
type PositionUpdate struct {
	VisitorID  uuid.UUID `json:"visitor_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"` // When the device captured the fix; evaluation time still uses the engine clock.
}
