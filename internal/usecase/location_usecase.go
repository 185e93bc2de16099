package usecase

import (
	"context"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput represents the input for creating a new restaurant location
type CreateLocationInput struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// UpdateLocationInput represents the input for updating an existing location
type UpdateLocationInput struct {
	Name        *string  `json:"name,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Description *string  `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// SetGeofenceInput represents the input for configuring a location's geofence
type SetGeofenceInput struct {
	CenterLatitude  float64 `json:"center_latitude"`
	CenterLongitude float64 `json:"center_longitude"`
	RadiusMeters    float64 `json:"radius_meters"`
}

// LocationUsecase defines the interface for location management use cases
type LocationUsecase interface {
	// CreateLocation creates a restaurant location owned by the given admin user
	CreateLocation(ctx context.Context, userID uuid.UUID, input *CreateLocationInput) (*entity.Location, error)

	// GetLocation retrieves a single location, enforcing ownership
	GetLocation(ctx context.Context, userID, locationID uuid.UUID) (*entity.Location, error)

	// ListLocations retrieves the locations owned by an admin user, newest first
	ListLocations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Location, error)

	// UpdateLocation applies a partial update to a location
	UpdateLocation(ctx context.Context, userID, locationID uuid.UUID, input *UpdateLocationInput) (*entity.Location, error)

	// SetLocationStatus flips a location between active and paused
	SetLocationStatus(ctx context.Context, userID, locationID uuid.UUID, status entity.LocationStatus) error

	// DeleteLocation removes a location with its geofence, automations and cooldown state
	DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error

	// SetGeofence creates or replaces the geofence for a location (one fence per location)
	SetGeofence(ctx context.Context, userID, locationID uuid.UUID, input *SetGeofenceInput) (*entity.Geofence, error)

	// GetGeofence retrieves the geofence configured for a location
	GetGeofence(ctx context.Context, userID, locationID uuid.UUID) (*entity.Geofence, error)

	// GenerateOptInQR renders a QR code linking visitors to the location's opt-in page
	GenerateOptInQR(ctx context.Context, userID, locationID uuid.UUID) ([]byte, error)
}
