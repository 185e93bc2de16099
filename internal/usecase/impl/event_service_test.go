package impl

import (
	"context"
	"testing"
	"time"

	"nearbite/internal/domain/entity"
	mockRepo "nearbite/internal/mocks/repository"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventServiceFixtures holds all test dependencies for event service tests.
type eventServiceFixtures struct {
	service      usecase.EventUsecase
	locationRepo *mockRepo.MockLocationRepository
	eventRepo    *mockRepo.MockEventRepository
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	svc := NewEventService(locationRepo, eventRepo)

	return eventServiceFixtures{
		service:      svc,
		locationRepo: locationRepo,
		eventRepo:    eventRepo,
	}
}

func TestEventService_ListEvents_DefaultsPageSize(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)
	events := []*entity.Event{{ID: uuid.New(), LocationID: location.ID}}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.eventRepo.EXPECT().
		FindEventsByLocation(ctx, location.ID, entity.EventType(""), defaultEventPageSize, 0).
		Return(events, nil)

	found, err := fx.service.ListEvents(ctx, location.UserID, location.ID, "", 0, -5)
	require.NoError(t, err)
	assert.Equal(t, events, found)
}

func TestEventService_ListEvents_CapsPageSize(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.eventRepo.EXPECT().
		FindEventsByLocation(ctx, location.ID, entity.EventGeofenceEntered, maxEventPageSize, 10).
		Return(nil, nil)

	_, err := fx.service.ListEvents(ctx, location.UserID, location.ID, entity.EventGeofenceEntered, 5000, 10)
	require.NoError(t, err)
}

func TestEventService_ListEvents_UnknownEventType(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.ListEvents(ctx, location.UserID, location.ID, entity.EventType("bogus"), 10, 0)
	assert.Equal(t, ErrInvalidEventType, err)
}

func TestEventService_ListEvents_Unauthorized(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.ListEvents(ctx, uuid.New(), location.ID, "", 10, 0)
	assert.Equal(t, ErrUnauthorized, err)
}

func TestEventService_GetDailySendStats(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)
	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	stats := []*entity.DailySendStats{
		{Date: "2025-06-01", SMS: 4, Email: 2},
		{Date: "2025-06-02", Push: 1},
	}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.eventRepo.EXPECT().
		CountSentByDay(ctx, location.ID, from, to).
		Return(stats, nil)

	found, err := fx.service.GetDailySendStats(ctx, location.UserID, location.ID, from, to)
	require.NoError(t, err)
	assert.Equal(t, stats, found)
}

func TestEventService_GetDailySendStats_ReversedInterval(t *testing.T) {
	fx := createTestEventService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)
	from := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.GetDailySendStats(ctx, location.UserID, location.ID, from, from.AddDate(0, 0, -7))
	assert.Equal(t, ErrInvalidInterval, err)
}
