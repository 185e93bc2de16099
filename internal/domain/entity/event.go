// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies an audit event.
type EventType string

const (
	// EventGeofenceEntered records that a visitor position fell inside a location's fence.
	EventGeofenceEntered EventType = "geofence_entered"
	// EventNotificationSent records that a send request was accepted by the dispatcher.
	EventNotificationSent EventType = "notification_sent"
	// EventNotificationDelivered records a delivery confirmation from the provider callback.
	EventNotificationDelivered EventType = "notification_delivered"
	// EventNotificationFailed records a dispatch or delivery failure.
	EventNotificationFailed EventType = "notification_failed"
)

// Valid reports whether the event type is one of the known types.
func (t EventType) Valid() bool {
	switch t {
	case EventGeofenceEntered, EventNotificationSent, EventNotificationDelivered, EventNotificationFailed:
		return true
	}

	return false
}

// Event is an append-only audit record. Events are never mutated or
// deleted; the analytics endpoints aggregate them per day per channel.
type Event struct {
	ID         uuid.UUID      `json:"id"`          // The Global Unique Identifier (GUID) for the event.
	LocationID uuid.UUID      `json:"location_id"` // The location this event belongs to.
	UserID     uuid.UUID      `json:"user_id"`     // The owning admin user of the location.
	VisitorID  uuid.UUID      `json:"visitor_id"`  // The visitor whose activity produced the event (uuid.Nil for admin-side events).
	Channel    Channel        `json:"channel"`     // The channel concerned; empty for geofence_entered.
	EventType  EventType      `json:"event_type"`  // What happened.
	Metadata   map[string]any `json:"metadata"`    // Free-form context (coordinates, reasons, provider IDs).
	CreatedAt  time.Time      `json:"created_at"`  // Timestamp of when this record was created.
}

// DailySendStats is one row of the analytics aggregation: notification_sent
// counts per calendar day, split by channel.
type DailySendStats struct {
	Date  string `json:"date"` // ISO date (YYYY-MM-DD) in the aggregation timezone.
	SMS   int    `json:"sms"`
	Email int    `json:"email"`
	Push  int    `json:"push"`
}
