// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for geofence persistence.
var (
	// ErrGeofenceNotFound is returned when a location has no geofence configured.
	ErrGeofenceNotFound = errors.New("geofence not found")
)

// GeofenceCandidate bundles a geofence with its owning location, produced by
// the geographic prefilter so the evaluator does not issue N+1 lookups.
type GeofenceCandidate struct {
	Geofence *entity.Geofence
	Location *entity.Location
}

// GeofenceRepository defines the interface for geofence-related database operations.
type GeofenceRepository interface {
	// UpsertGeofence creates the fence for a location or overwrites the
	// existing one. A location has at most one fence; last write wins.
	UpsertGeofence(ctx context.Context, geofence *entity.Geofence) error

	// FindGeofenceByLocation retrieves the fence configured for a location.
	FindGeofenceByLocation(ctx context.Context, locationID uuid.UUID) (*entity.Geofence, error)

	// DeleteGeofence removes the fence for a location.
	DeleteGeofence(ctx context.Context, locationID uuid.UUID) error

	// FindCandidatesNear performs a PostGIS geographic query returning every
	// geofence of an active location whose circle could contain the given
	// point. The exact containment check still happens in the engine; this is
	// a coarse index-backed prefilter.
	FindCandidatesNear(ctx context.Context, lat, lon float64) ([]*GeofenceCandidate, error)
}
