package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	"nearbite/internal/domain/service"
	"nearbite/internal/geo"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrLocationNotFound is returned when a location is not found
	ErrLocationNotFound = errors.New("location not found")
	// ErrUnauthorized is returned when a user tries to access a location they don't own
	ErrUnauthorized = errors.New("unauthorized to access this location")
	// ErrInvalidCoordinates is returned when a latitude/longitude pair is off the globe
	ErrInvalidCoordinates = errors.New("latitude or longitude out of range")
	// ErrInvalidRadius is returned when a geofence radius is zero or negative
	ErrInvalidRadius = errors.New("geofence radius must be positive")
	// ErrGeofenceNotFound is returned when a location has no geofence configured
	ErrGeofenceNotFound = errors.New("no geofence configured for this location")
)

type locationService struct {
	locationRepo repository.LocationRepository
	geofenceRepo repository.GeofenceRepository
	qrcodeSvc    service.QRCodeService
}

// NewLocationService creates a new location service instance
func NewLocationService(
	locationRepo repository.LocationRepository,
	geofenceRepo repository.GeofenceRepository,
	qrcodeSvc service.QRCodeService,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		geofenceRepo: geofenceRepo,
		qrcodeSvc:    qrcodeSvc,
	}
}

// CreateLocation creates a restaurant location owned by the given admin user
func (s *locationService) CreateLocation(ctx context.Context, userID uuid.UUID, input *usecase.CreateLocationInput) (*entity.Location, error) {
	if input.Latitude != nil && input.Longitude != nil {
		if !geo.ValidCoordinate(*input.Latitude, *input.Longitude) {
			return nil, ErrInvalidCoordinates
		}
	}

	location := &entity.Location{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Status:      entity.LocationStatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return location, nil
}

// GetLocation retrieves a single location, enforcing ownership
func (s *locationService) GetLocation(ctx context.Context, userID, locationID uuid.UUID) (*entity.Location, error) {
	return s.findOwnedLocation(ctx, userID, locationID)
}

// ListLocations retrieves the locations owned by an admin user, newest first
func (s *locationService) ListLocations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Location, error) {
	locations, err := s.locationRepo.FindLocationsByOwner(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find locations by owner: %w", err)
	}

	return locations, nil
}

// UpdateLocation applies a partial update to a location
func (s *locationService) UpdateLocation(ctx context.Context, userID, locationID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.Location, error) {
	location, err := s.findOwnedLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	s.applyLocationUpdates(location, input)

	if location.Latitude != nil && location.Longitude != nil {
		if !geo.ValidCoordinate(*location.Latitude, *location.Longitude) {
			return nil, ErrInvalidCoordinates
		}
	}

	if err := s.locationRepo.UpdateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return location, nil
}

// SetLocationStatus flips a location between active and paused
func (s *locationService) SetLocationStatus(ctx context.Context, userID, locationID uuid.UUID, status entity.LocationStatus) error {
	if _, err := s.findOwnedLocation(ctx, userID, locationID); err != nil {
		return err
	}

	if err := s.locationRepo.UpdateLocationStatus(ctx, locationID, status); err != nil {
		return fmt.Errorf("failed to update location status: %w", err)
	}

	return nil
}

// DeleteLocation removes a location with its geofence, automations and cooldown state
func (s *locationService) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	if _, err := s.findOwnedLocation(ctx, userID, locationID); err != nil {
		return err
	}

	if err := s.locationRepo.DeleteLocation(ctx, locationID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}

	return nil
}

// SetGeofence creates or replaces the geofence for a location
func (s *locationService) SetGeofence(ctx context.Context, userID, locationID uuid.UUID, input *usecase.SetGeofenceInput) (*entity.Geofence, error) {
	if _, err := s.findOwnedLocation(ctx, userID, locationID); err != nil {
		return nil, err
	}

	if !geo.ValidCoordinate(input.CenterLatitude, input.CenterLongitude) {
		return nil, ErrInvalidCoordinates
	}
	if input.RadiusMeters <= 0 {
		return nil, ErrInvalidRadius
	}

	geofence := &entity.Geofence{
		ID:              uuid.New(),
		LocationID:      locationID,
		CenterLatitude:  input.CenterLatitude,
		CenterLongitude: input.CenterLongitude,
		RadiusMeters:    input.RadiusMeters,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.geofenceRepo.UpsertGeofence(ctx, geofence); err != nil {
		return nil, fmt.Errorf("failed to upsert geofence: %w", err)
	}

	return geofence, nil
}

// GetGeofence retrieves the geofence configured for a location
func (s *locationService) GetGeofence(ctx context.Context, userID, locationID uuid.UUID) (*entity.Geofence, error) {
	if _, err := s.findOwnedLocation(ctx, userID, locationID); err != nil {
		return nil, err
	}

	geofence, err := s.geofenceRepo.FindGeofenceByLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrGeofenceNotFound) {
			return nil, ErrGeofenceNotFound
		}

		return nil, fmt.Errorf("failed to find geofence by location: %w", err)
	}

	return geofence, nil
}

// GenerateOptInQR renders a QR code linking visitors to the location's opt-in page
func (s *locationService) GenerateOptInQR(ctx context.Context, userID, locationID uuid.UUID) ([]byte, error) {
	if _, err := s.findOwnedLocation(ctx, userID, locationID); err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateOptInQR(locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate opt-in QR code: %w", err)
	}

	return png, nil
}

// findOwnedLocation fetches a location and verifies the caller owns it.
func (s *locationService) findOwnedLocation(ctx context.Context, userID, locationID uuid.UUID) (*entity.Location, error) {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, ErrLocationNotFound
		}

		return nil, fmt.Errorf("failed to find location by ID: %w", err)
	}

	if location.UserID != userID {
		return nil, ErrUnauthorized
	}

	return location, nil
}

// applyLocationUpdates copies the non-nil fields of the input onto the location.
func (s *locationService) applyLocationUpdates(location *entity.Location, input *usecase.UpdateLocationInput) {
	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.Address != nil {
		location.Address = *input.Address
	}
	if input.Description != nil {
		location.Description = *input.Description
	}
	if input.Latitude != nil {
		location.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		location.Longitude = input.Longitude
	}
	location.UpdatedAt = time.Now()
}
