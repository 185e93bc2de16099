package impl

import (
	"context"
	"testing"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	mockRepo "nearbite/internal/mocks/repository"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// automationServiceFixtures holds all test dependencies for automation service tests.
type automationServiceFixtures struct {
	service        usecase.AutomationUsecase
	locationRepo   *mockRepo.MockLocationRepository
	automationRepo *mockRepo.MockAutomationRepository
}

func createTestAutomationService(t *testing.T) automationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	automationRepo := mockRepo.NewMockAutomationRepository(t)
	svc := NewAutomationService(locationRepo, automationRepo)

	return automationServiceFixtures{
		service:        svc,
		locationRepo:   locationRepo,
		automationRepo: automationRepo,
	}
}

func TestAutomationService_ConfigureAutomation_Success(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.automationRepo.EXPECT().
		UpsertAutomation(ctx, mock.MatchedBy(func(automation *entity.Automation) bool {
			return automation.LocationID == location.ID &&
				automation.Channel == entity.ChannelSMS &&
				automation.CooldownMinutes == 90
		})).
		Return(nil)

	automation, err := fx.service.ConfigureAutomation(ctx, location.UserID, location.ID, &usecase.ConfigureAutomationInput{
		Channel:         entity.ChannelSMS,
		Enabled:         true,
		CooldownMinutes: 90,
		StartTime:       "09:00",
		EndTime:         "21:00",
		TemplateBody:    "Stop by {restaurant_name}!",
	})
	require.NoError(t, err)
	assert.True(t, automation.Enabled)
	assert.Equal(t, "09:00", automation.StartTime)
}

func TestAutomationService_ConfigureAutomation_UnknownChannel(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.ConfigureAutomation(ctx, location.UserID, location.ID, &usecase.ConfigureAutomationInput{
		Channel: entity.Channel("fax"),
	})
	assert.Equal(t, ErrInvalidChannel, err)
}

func TestAutomationService_ConfigureAutomation_NegativeCooldown(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.ConfigureAutomation(ctx, location.UserID, location.ID, &usecase.ConfigureAutomationInput{
		Channel:         entity.ChannelSMS,
		CooldownMinutes: -1,
	})
	assert.Equal(t, ErrInvalidCooldown, err)
}

func TestAutomationService_ConfigureAutomation_HalfSetWindow(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.ConfigureAutomation(ctx, location.UserID, location.ID, &usecase.ConfigureAutomationInput{
		Channel:   entity.ChannelSMS,
		StartTime: "09:00",
	})
	assert.Equal(t, ErrInvalidTimeWindow, err)
}

func TestAutomationService_ConfigureAutomation_MalformedWindow(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.ConfigureAutomation(ctx, location.UserID, location.ID, &usecase.ConfigureAutomationInput{
		Channel:   entity.ChannelSMS,
		StartTime: "9am",
		EndTime:   "9pm",
	})
	assert.Equal(t, ErrInvalidTimeWindow, err)
}

func TestAutomationService_ConfigureAutomation_Unauthorized(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)

	_, err := fx.service.ConfigureAutomation(ctx, uuid.New(), location.ID, &usecase.ConfigureAutomationInput{
		Channel: entity.ChannelSMS,
	})
	assert.Equal(t, ErrUnauthorized, err)
}

func TestAutomationService_ListAutomations(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)
	automations := []*entity.Automation{
		{LocationID: location.ID, Channel: entity.ChannelEmail},
		{LocationID: location.ID, Channel: entity.ChannelSMS},
	}

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return(automations, nil)

	found, err := fx.service.ListAutomations(ctx, location.UserID, location.ID)
	require.NoError(t, err)
	assert.Equal(t, automations, found)
}

func TestAutomationService_ListAutomations_LocationNotFound(t *testing.T) {
	fx := createTestAutomationService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.ListAutomations(ctx, uuid.New(), locationID)
	assert.Equal(t, ErrLocationNotFound, err)
}
