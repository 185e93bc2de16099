// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrDuplicateLocation is returned when creating a location that violates a uniqueness constraint.
	ErrDuplicateLocation = errors.New("location already exists")
)

// LocationRepository defines the interface for location-related database operations.
type LocationRepository interface {
	// CreateLocation persists a new restaurant location.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationsByOwner retrieves all locations belonging to a specific admin user,
	// newest first.
	FindLocationsByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Location, error)

	// UpdateLocation persists changes to an existing location.
	UpdateLocation(ctx context.Context, location *entity.Location) error

	// UpdateLocationStatus flips a location between active and paused.
	UpdateLocationStatus(ctx context.Context, id uuid.UUID, status entity.LocationStatus) error

	// DeleteLocation removes a location and its dependent geofence, automations
	// and cooldown state.
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}
