// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationStatus is the lifecycle state of a location.
type LocationStatus string

const (
	// LocationStatusActive means the location participates in geofence evaluation.
	LocationStatusActive LocationStatus = "active"
	// LocationStatusPaused means the location never triggers notifications,
	// regardless of geofence or visitor activity.
	LocationStatusPaused LocationStatus = "paused"
)

// Location represents a physical restaurant site owned by an admin user.
type Location struct {
	ID          uuid.UUID      `json:"id"`          // The Global Unique Identifier (GUID) for the location.
	UserID      uuid.UUID      `json:"user_id"`     // The ID of the owning admin user.
	Name        string         `json:"name"`        // The restaurant name, used as {restaurant_name} in templates.
	Address     string         `json:"address"`     // The street address, used as {address} in templates.
	Description string         `json:"description"` // Optional free text; doubles as the current {special} promotional copy.
	Latitude    *float64       `json:"latitude"`    // Optional display coordinate (the geofence carries its own center).
	Longitude   *float64       `json:"longitude"`   // Optional display coordinate.
	Status      LocationStatus `json:"status"`      // active or paused.
	CreatedAt   time.Time      `json:"created_at"`  // Timestamp of when this record was created.
	UpdatedAt   time.Time      `json:"updated_at"`  // Timestamp of the last modification.
}

// IsActive reports whether the location may trigger notifications.
func (l *Location) IsActive() bool {
	return l.Status == LocationStatusActive
}

// TemplateVariables builds the substitution set for this location's
// message templates. The special text comes from the description field;
// when it is empty the {special} placeholder is left for the renderer to
// pass through verbatim.
func (l *Location) TemplateVariables() map[string]string {
	vars := map[string]string{
		"restaurant_name": l.Name,
		"address":         l.Address,
	}
	if l.Description != "" {
		vars["special"] = l.Description
	}

	return vars
}
