// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Geofence is the circular trigger area for a location. Each location has
// at most one geofence; upserts are keyed on the location ID with
// last-write-wins semantics. A location without a geofence can never
// trigger a notification.
type Geofence struct {
	ID              uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the geofence.
	LocationID      uuid.UUID `json:"location_id"`      // The location this geofence belongs to (unique).
	CenterLatitude  float64   `json:"center_latitude"`  // The geographic latitude of the circle center.
	CenterLongitude float64   `json:"center_longitude"` // The geographic longitude of the circle center.
	RadiusMeters    float64   `json:"radius_meters"`    // Circle radius in meters. The admin UI offers 50-500 but any positive radius evaluates.
	CreatedAt       time.Time `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time `json:"updated_at"`       // Timestamp of the last modification.
}
