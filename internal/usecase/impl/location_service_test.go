package impl

import (
	"context"
	"testing"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	mockRepo "nearbite/internal/mocks/repository"
	mockSvc "nearbite/internal/mocks/service"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	geofenceRepo *mockRepo.MockGeofenceRepository
	qrcodeSvc    *mockSvc.MockQRCodeService
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	svc := NewLocationService(locationRepo, geofenceRepo, qrcodeSvc)

	return locationServiceFixtures{
		service:      svc,
		locationRepo: locationRepo,
		geofenceRepo: geofenceRepo,
		qrcodeSvc:    qrcodeSvc,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestLocationService_CreateLocation_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.locationRepo.EXPECT().
		CreateLocation(ctx, mock.MatchedBy(func(location *entity.Location) bool {
			return location.UserID == userID &&
				location.Name == "Zingerman's Deli" &&
				location.Status == entity.LocationStatusActive
		})).
		Return(nil)

	location, err := fx.service.CreateLocation(ctx, userID, &usecase.CreateLocationInput{
		Name:        "Zingerman's Deli",
		Address:     "422 Detroit St",
		Description: "Reuben special today",
		Latitude:    floatPtr(42.2847),
		Longitude:   floatPtr(-83.7446),
	})
	require.NoError(t, err)
	assert.Equal(t, userID, location.UserID)
	assert.NotEqual(t, uuid.Nil, location.ID)
}

func TestLocationService_CreateLocation_InvalidCoordinates(t *testing.T) {
	fx := createTestLocationService(t)

	_, err := fx.service.CreateLocation(context.Background(), uuid.New(), &usecase.CreateLocationInput{
		Name:      "Nowhere",
		Latitude:  floatPtr(91.0),
		Longitude: floatPtr(0.0),
	})
	assert.Equal(t, ErrInvalidCoordinates, err)
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.GetLocation(ctx, uuid.New(), locationID)
	assert.Equal(t, ErrLocationNotFound, err)
}

func TestLocationService_GetLocation_Unauthorized(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.GetLocation(ctx, uuid.New(), location.ID)
	assert.Equal(t, ErrUnauthorized, err)
}

func TestLocationService_ListLocations(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	userID := uuid.New()
	locations := []*entity.Location{testLocation(entity.LocationStatusActive)}

	fx.locationRepo.EXPECT().
		FindLocationsByOwner(ctx, userID, 20, 0).
		Return(locations, nil)

	found, err := fx.service.ListLocations(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, locations, found)
}

func TestLocationService_UpdateLocation_PartialUpdate(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)
	newName := "Zingerman's Roadhouse"

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.locationRepo.EXPECT().
		UpdateLocation(ctx, mock.MatchedBy(func(updated *entity.Location) bool {
			return updated.Name == newName && updated.Address == "422 Detroit St"
		})).
		Return(nil)

	updated, err := fx.service.UpdateLocation(ctx, location.UserID, location.ID, &usecase.UpdateLocationInput{
		Name: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
}

func TestLocationService_SetLocationStatus(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.locationRepo.EXPECT().
		UpdateLocationStatus(ctx, location.ID, entity.LocationStatusPaused).
		Return(nil)

	err := fx.service.SetLocationStatus(ctx, location.UserID, location.ID, entity.LocationStatusPaused)
	require.NoError(t, err)
}

func TestLocationService_DeleteLocation_RepoError(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.locationRepo.EXPECT().
		DeleteLocation(ctx, location.ID).
		Return(errors.New("database error"))

	err := fx.service.DeleteLocation(ctx, location.UserID, location.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete location")
}

func TestLocationService_SetGeofence_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.geofenceRepo.EXPECT().
		UpsertGeofence(ctx, mock.MatchedBy(func(geofence *entity.Geofence) bool {
			return geofence.LocationID == location.ID && geofence.RadiusMeters == 150
		})).
		Return(nil)

	geofence, err := fx.service.SetGeofence(ctx, location.UserID, location.ID, &usecase.SetGeofenceInput{
		CenterLatitude:  testFenceLat,
		CenterLongitude: testFenceLon,
		RadiusMeters:    150,
	})
	require.NoError(t, err)
	assert.Equal(t, location.ID, geofence.LocationID)
}

func TestLocationService_SetGeofence_InvalidRadius(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.SetGeofence(ctx, location.UserID, location.ID, &usecase.SetGeofenceInput{
		CenterLatitude:  testFenceLat,
		CenterLongitude: testFenceLon,
		RadiusMeters:    0,
	})
	assert.Equal(t, ErrInvalidRadius, err)
}

func TestLocationService_GetGeofence_NotConfigured(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.geofenceRepo.EXPECT().
		FindGeofenceByLocation(ctx, location.ID).
		Return(nil, repository.ErrGeofenceNotFound)

	_, err := fx.service.GetGeofence(ctx, location.UserID, location.ID)
	assert.Equal(t, ErrGeofenceNotFound, err)
}

func TestLocationService_GenerateOptInQR(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.qrcodeSvc.EXPECT().
		GenerateOptInQR(location.ID).
		Return(png, nil)

	data, err := fx.service.GenerateOptInQR(ctx, location.UserID, location.ID)
	require.NoError(t, err)
	assert.Equal(t, png, data)
}
