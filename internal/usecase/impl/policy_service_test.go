package impl

import (
	"context"
	"testing"
	"time"

	"nearbite/config"
	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	"nearbite/internal/domain/service"
	mockRepo "nearbite/internal/mocks/repository"
	mockSvc "nearbite/internal/mocks/service"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Ann Arbor downtown, the reference coordinates used across engine tests.
const (
	testFenceLat    = 42.2808
	testFenceLon    = -83.7483
	testFenceRadius = 150.0
)

// policyServiceFixtures holds all test dependencies for decision engine tests.
type policyServiceFixtures struct {
	service        usecase.PolicyUsecase
	locationRepo   *mockRepo.MockLocationRepository
	geofenceRepo   *mockRepo.MockGeofenceRepository
	automationRepo *mockRepo.MockAutomationRepository
	visitorRepo    *mockRepo.MockVisitorRepository
	eventRepo      *mockRepo.MockEventRepository
	cooldownRepo   *mockRepo.MockCooldownRepository
	dispatcher     *mockSvc.MockDeliveryDispatcher
	renderer       *mockSvc.MockTemplateRenderer
	publisher      *mockSvc.MockEventPublisher
}

func createTestPolicyService(t *testing.T, cfg *config.Config) policyServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	automationRepo := mockRepo.NewMockAutomationRepository(t)
	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	cooldownRepo := mockRepo.NewMockCooldownRepository(t)
	dispatcher := mockSvc.NewMockDeliveryDispatcher(t)
	renderer := mockSvc.NewMockTemplateRenderer(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc, err := NewPolicyService(
		locationRepo, geofenceRepo, automationRepo, visitorRepo,
		eventRepo, cooldownRepo, dispatcher, renderer, publisher, cfg,
	)
	require.NoError(t, err)

	return policyServiceFixtures{
		service:        svc,
		locationRepo:   locationRepo,
		geofenceRepo:   geofenceRepo,
		automationRepo: automationRepo,
		visitorRepo:    visitorRepo,
		eventRepo:      eventRepo,
		cooldownRepo:   cooldownRepo,
		dispatcher:     dispatcher,
		renderer:       renderer,
		publisher:      publisher,
	}
}

func testLocation(status entity.LocationStatus) *entity.Location {
	return &entity.Location{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Zingerman's Deli",
		Address:     "422 Detroit St",
		Description: "Reuben special today",
		Status:      status,
	}
}

func testGeofence(locationID uuid.UUID) *entity.Geofence {
	return &entity.Geofence{
		ID:              uuid.New(),
		LocationID:      locationID,
		CenterLatitude:  testFenceLat,
		CenterLongitude: testFenceLon,
		RadiusMeters:    testFenceRadius,
	}
}

func testVisitor() *entity.Visitor {
	return &entity.Visitor{
		ID:          uuid.New(),
		PhoneNumber: "+17345550123",
		Email:       "visitor@example.com",
		DeviceToken: "fcm-token-abc",
	}
}

func insideUpdate(visitorID uuid.UUID) *entity.PositionUpdate {
	return &entity.PositionUpdate{
		VisitorID:  visitorID,
		Latitude:   testFenceLat,
		Longitude:  testFenceLon,
		RecordedAt: time.Now(),
	}
}

func eventOfType(eventType entity.EventType) interface{} {
	return mock.MatchedBy(func(e *entity.Event) bool {
		return e.EventType == eventType
	})
}

func TestPolicyService_EvaluatePosition_InvalidCoordinates(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	_, err := fx.service.EvaluatePosition(context.Background(), &entity.PositionUpdate{
		VisitorID: uuid.New(),
		Latitude:  95.0,
		Longitude: 0.0,
	}, time.Now())

	assert.Equal(t, ErrInvalidCoordinates, err)
}

func TestPolicyService_EvaluatePosition_VisitorNotFound(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitorID := uuid.New()

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitorID).
		Return(nil, repository.ErrVisitorNotFound)

	_, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitorID), time.Now())
	assert.Equal(t, ErrVisitorNotFound, err)
}

func TestPolicyService_EvaluatePosition_NoCandidates(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := testVisitor()

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, testFenceLat, testFenceLon).
		Return(nil, nil)

	evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), time.Now())
	require.NoError(t, err)
	assert.Empty(t, evaluations)
}

func TestPolicyService_EvaluatePosition_PausedLocationSuppressesEverything(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := testVisitor()
	location := testLocation(entity.LocationStatusPaused)
	automations := []*entity.Automation{
		{LocationID: location.ID, Channel: entity.ChannelSMS, Enabled: true, TemplateBody: "hi"},
		{LocationID: location.ID, Channel: entity.ChannelEmail, Enabled: true, TemplateBody: "hi"},
	}

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, testFenceLat, testFenceLon).
		Return([]*repository.GeofenceCandidate{
			{Geofence: testGeofence(location.ID), Location: location},
		}, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return(automations, nil)

	evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), time.Now())
	require.NoError(t, err)
	require.Len(t, evaluations, 1)

	// A paused location never writes events, never claims cooldown slots and
	// never reaches the dispatcher. The unset mock expectations enforce that.
	evaluation := evaluations[0]
	assert.False(t, evaluation.EnteredFence)
	require.Len(t, evaluation.Decisions, 2)
	for _, decision := range evaluation.Decisions {
		assert.Equal(t, entity.OutcomeSuppressed, decision.Outcome)
		assert.Equal(t, entity.SuppressLocationInactive, decision.Reason)
	}
}

func TestPolicyService_EvaluatePosition_NoGeofence(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := testVisitor()
	location := testLocation(entity.LocationStatusActive)
	automations := []*entity.Automation{
		{LocationID: location.ID, Channel: entity.ChannelSMS, Enabled: true, TemplateBody: "hi"},
	}

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, testFenceLat, testFenceLon).
		Return([]*repository.GeofenceCandidate{
			{Geofence: nil, Location: location},
		}, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return(automations, nil)

	evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), time.Now())
	require.NoError(t, err)
	require.Len(t, evaluations, 1)
	require.Len(t, evaluations[0].Decisions, 1)
	assert.Equal(t, entity.SuppressNoGeofence, evaluations[0].Decisions[0].Reason)
}

func TestPolicyService_EvaluatePosition_OutsideFenceMutatesNothing(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := testVisitor()
	location := testLocation(entity.LocationStatusActive)
	automations := []*entity.Automation{
		{LocationID: location.ID, Channel: entity.ChannelSMS, Enabled: true, TemplateBody: "hi"},
	}

	// Several kilometers away from the fence center.
	update := &entity.PositionUpdate{
		VisitorID: visitor.ID,
		Latitude:  42.30,
		Longitude: -83.80,
	}

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, update.Latitude, update.Longitude).
		Return([]*repository.GeofenceCandidate{
			{Geofence: testGeofence(location.ID), Location: location},
		}, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return(automations, nil)

	evaluations, err := fx.service.EvaluatePosition(ctx, update, time.Now())
	require.NoError(t, err)
	require.Len(t, evaluations, 1)

	evaluation := evaluations[0]
	assert.False(t, evaluation.EnteredFence)
	require.Len(t, evaluation.Decisions, 1)
	assert.Equal(t, entity.OutcomeSuppressed, evaluation.Decisions[0].Outcome)
	assert.Equal(t, entity.SuppressOutsideFence, evaluation.Decisions[0].Reason)
}

func TestPolicyService_EvaluatePosition_DisabledChannelDoesNotBlockOthers(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := testVisitor()
	location := testLocation(entity.LocationStatusActive)
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	smsAutomation := &entity.Automation{
		LocationID: location.ID, Channel: entity.ChannelSMS,
		Enabled: false, TemplateBody: "sms body",
	}
	emailAutomation := &entity.Automation{
		LocationID: location.ID, Channel: entity.ChannelEmail,
		Enabled: true, CooldownMinutes: 60,
		TemplateSubject: "subject", TemplateBody: "email body",
	}

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, testFenceLat, testFenceLon).
		Return([]*repository.GeofenceCandidate{
			{Geofence: testGeofence(location.ID), Location: location},
		}, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return([]*entity.Automation{smsAutomation, emailAutomation}, nil)
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, eventOfType(entity.EventGeofenceEntered)).
		Return(nil)
	fx.cooldownRepo.EXPECT().
		Claim(ctx, visitor.ID, location.ID, entity.ChannelEmail, now, time.Hour).
		Return(true, nil)
	fx.renderer.EXPECT().
		Render("email body", location.TemplateVariables()).
		Return("rendered body")
	fx.renderer.EXPECT().
		Render("subject", location.TemplateVariables()).
		Return("rendered subject")
	fx.dispatcher.EXPECT().
		Dispatch(ctx, &service.SendRequest{
			Channel:    entity.ChannelEmail,
			To:         visitor.Email,
			Subject:    "rendered subject",
			Body:       "rendered body",
			LocationID: location.ID,
			VisitorID:  visitor.ID,
		}).
		Return(&service.SendResult{ProviderMessageID: "msg-1"}, nil)
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, eventOfType(entity.EventNotificationSent)).
		Return(nil)

	evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), now)
	require.NoError(t, err)
	require.Len(t, evaluations, 1)

	evaluation := evaluations[0]
	assert.True(t, evaluation.EnteredFence)
	require.Len(t, evaluation.Decisions, 2)
	assert.Equal(t, entity.SuppressChannelDisabled, evaluation.Decisions[0].Reason)
	assert.Equal(t, entity.OutcomeSent, evaluation.Decisions[1].Outcome)
	assert.Equal(t, 1, evaluation.SentCount())
}

func TestPolicyService_EvaluatePosition_WindowWrapsPastMidnight(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		sent bool
	}{
		{"late evening inside", time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC), true},
		{"early morning inside", time.Date(2025, time.June, 1, 2, 0, 0, 0, time.UTC), true},
		{"midday outside", time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestPolicyService(t, &config.Config{})

			ctx := context.Background()
			visitor := testVisitor()
			location := testLocation(entity.LocationStatusActive)
			automation := &entity.Automation{
				LocationID: location.ID, Channel: entity.ChannelSMS,
				Enabled: true, CooldownMinutes: 60,
				StartTime: "22:00", EndTime: "06:00",
				TemplateBody: "late night deal",
			}

			fx.visitorRepo.EXPECT().
				FindVisitorByID(ctx, visitor.ID).
				Return(visitor, nil)
			fx.geofenceRepo.EXPECT().
				FindCandidatesNear(ctx, testFenceLat, testFenceLon).
				Return([]*repository.GeofenceCandidate{
					{Geofence: testGeofence(location.ID), Location: location},
				}, nil)
			fx.automationRepo.EXPECT().
				FindAutomationsByLocation(ctx, location.ID).
				Return([]*entity.Automation{automation}, nil)
			fx.eventRepo.EXPECT().
				AppendEvent(ctx, eventOfType(entity.EventGeofenceEntered)).
				Return(nil)

			if tc.sent {
				fx.cooldownRepo.EXPECT().
					Claim(ctx, visitor.ID, location.ID, entity.ChannelSMS, tc.now, time.Hour).
					Return(true, nil)
				fx.renderer.EXPECT().
					Render("late night deal", location.TemplateVariables()).
					Return("late night deal")
				fx.dispatcher.EXPECT().
					Dispatch(ctx, mock.AnythingOfType("*service.SendRequest")).
					Return(&service.SendResult{}, nil)
				fx.eventRepo.EXPECT().
					AppendEvent(ctx, eventOfType(entity.EventNotificationSent)).
					Return(nil)
			}

			evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), tc.now)
			require.NoError(t, err)
			require.Len(t, evaluations, 1)
			require.Len(t, evaluations[0].Decisions, 1)

			decision := evaluations[0].Decisions[0]
			if tc.sent {
				assert.Equal(t, entity.OutcomeSent, decision.Outcome)
			} else {
				assert.Equal(t, entity.OutcomeSuppressed, decision.Outcome)
				assert.Equal(t, entity.SuppressOutsideWindow, decision.Reason)
			}
		})
	}
}

func TestPolicyService_EvaluatePosition_MalformedWindowFailsClosed(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := testVisitor()
	location := testLocation(entity.LocationStatusActive)
	automation := &entity.Automation{
		LocationID: location.ID, Channel: entity.ChannelSMS,
		Enabled: true, StartTime: "25:99", EndTime: "06:00",
		TemplateBody: "hi",
	}

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, testFenceLat, testFenceLon).
		Return([]*repository.GeofenceCandidate{
			{Geofence: testGeofence(location.ID), Location: location},
		}, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return([]*entity.Automation{automation}, nil)
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, eventOfType(entity.EventGeofenceEntered)).
		Return(nil)

	evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), time.Now())
	require.NoError(t, err)
	require.Len(t, evaluations[0].Decisions, 1)
	assert.Equal(t, entity.SuppressOutsideWindow, evaluations[0].Decisions[0].Reason)
}

func TestPolicyService_EvaluatePosition_NoRecipient(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := &entity.Visitor{ID: uuid.New(), Email: "only-email@example.com"}
	location := testLocation(entity.LocationStatusActive)
	automation := &entity.Automation{
		LocationID: location.ID, Channel: entity.ChannelSMS,
		Enabled: true, TemplateBody: "hi",
	}

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, testFenceLat, testFenceLon).
		Return([]*repository.GeofenceCandidate{
			{Geofence: testGeofence(location.ID), Location: location},
		}, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return([]*entity.Automation{automation}, nil)
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, eventOfType(entity.EventGeofenceEntered)).
		Return(nil)

	// No Claim expectation: a slot must never be claimed when there is no
	// recipient to spend it on.
	evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), time.Now())
	require.NoError(t, err)
	require.Len(t, evaluations[0].Decisions, 1)
	assert.Equal(t, entity.SuppressNoRecipient, evaluations[0].Decisions[0].Reason)
}

func TestPolicyService_EvaluatePosition_CooldownActive(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := testVisitor()
	location := testLocation(entity.LocationStatusActive)
	now := time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)
	automation := &entity.Automation{
		LocationID: location.ID, Channel: entity.ChannelSMS,
		Enabled: true, CooldownMinutes: 60, TemplateBody: "hi",
	}

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, testFenceLat, testFenceLon).
		Return([]*repository.GeofenceCandidate{
			{Geofence: testGeofence(location.ID), Location: location},
		}, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return([]*entity.Automation{automation}, nil)
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, eventOfType(entity.EventGeofenceEntered)).
		Return(nil)
	fx.cooldownRepo.EXPECT().
		Claim(ctx, visitor.ID, location.ID, entity.ChannelSMS, now, time.Hour).
		Return(false, nil)

	evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), now)
	require.NoError(t, err)
	require.Len(t, evaluations[0].Decisions, 1)
	assert.Equal(t, entity.OutcomeSuppressed, evaluations[0].Decisions[0].Outcome)
	assert.Equal(t, entity.SuppressCooldownActive, evaluations[0].Decisions[0].Reason)
}

func TestPolicyService_EvaluatePosition_DispatchFailureKeepsSlotClaimed(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	visitor := testVisitor()
	location := testLocation(entity.LocationStatusActive)
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	automation := &entity.Automation{
		LocationID: location.ID, Channel: entity.ChannelSMS,
		Enabled: true, CooldownMinutes: 60, TemplateBody: "hi",
	}

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitor.ID).
		Return(visitor, nil)
	fx.geofenceRepo.EXPECT().
		FindCandidatesNear(ctx, testFenceLat, testFenceLon).
		Return([]*repository.GeofenceCandidate{
			{Geofence: testGeofence(location.ID), Location: location},
		}, nil)
	fx.automationRepo.EXPECT().
		FindAutomationsByLocation(ctx, location.ID).
		Return([]*entity.Automation{automation}, nil)
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, eventOfType(entity.EventGeofenceEntered)).
		Return(nil)
	fx.cooldownRepo.EXPECT().
		Claim(ctx, visitor.ID, location.ID, entity.ChannelSMS, now, time.Hour).
		Return(true, nil)
	fx.renderer.EXPECT().
		Render("hi", location.TemplateVariables()).
		Return("hi")
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*service.SendRequest")).
		Return(nil, errors.New("gateway unavailable"))
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, eventOfType(entity.EventNotificationFailed)).
		Return(nil)

	evaluations, err := fx.service.EvaluatePosition(ctx, insideUpdate(visitor.ID), now)
	require.NoError(t, err)
	require.Len(t, evaluations[0].Decisions, 1)

	// Every gate passed but the provider refused the send. The outcome stays
	// eligible and there is no second Claim expectation: the slot is spent.
	decision := evaluations[0].Decisions[0]
	assert.Equal(t, entity.OutcomeEligible, decision.Outcome)
	assert.Contains(t, decision.Error, "gateway unavailable")
}

func TestPolicyService_IngestPosition_QueueModePublishes(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{
		Policy: &config.PolicyConfig{IngestMode: "queue"},
	})

	ctx := context.Background()
	visitorID := uuid.New()

	fx.publisher.EXPECT().
		PublishPositionEvent(ctx, mock.MatchedBy(func(event *service.PositionEvent) bool {
			return event.VisitorID == visitorID.String()
		})).
		Return(nil)

	err := fx.service.IngestPosition(ctx, insideUpdate(visitorID))
	require.NoError(t, err)
}

func TestPolicyService_IngestPosition_InvalidCoordinates(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	err := fx.service.IngestPosition(context.Background(), &entity.PositionUpdate{
		VisitorID: uuid.New(),
		Latitude:  12.0,
		Longitude: -200.0,
	})
	assert.Equal(t, ErrInvalidCoordinates, err)
}

func TestPolicyService_RecordDeliveryOutcome_Delivered(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, eventOfType(entity.EventNotificationDelivered)).
		Return(nil)

	err := fx.service.RecordDeliveryOutcome(ctx, &usecase.DeliveryOutcomeInput{
		LocationID:        location.ID,
		VisitorID:         uuid.New(),
		Channel:           entity.ChannelSMS,
		Delivered:         true,
		ProviderMessageID: "msg-42",
	})
	require.NoError(t, err)
}

func TestPolicyService_RecordDeliveryOutcome_Failed(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	location := testLocation(entity.LocationStatusActive)

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, location.ID).
		Return(location, nil)
	fx.eventRepo.EXPECT().
		AppendEvent(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.EventType == entity.EventNotificationFailed && e.Metadata["error"] == "number unreachable"
		})).
		Return(nil)

	err := fx.service.RecordDeliveryOutcome(ctx, &usecase.DeliveryOutcomeInput{
		LocationID:    location.ID,
		VisitorID:     uuid.New(),
		Channel:       entity.ChannelSMS,
		Delivered:     false,
		FailureReason: "number unreachable",
	})
	require.NoError(t, err)
}

func TestPolicyService_RecordDeliveryOutcome_InvalidChannel(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	err := fx.service.RecordDeliveryOutcome(context.Background(), &usecase.DeliveryOutcomeInput{
		LocationID: uuid.New(),
		Channel:    entity.Channel("fax"),
	})
	assert.Equal(t, ErrInvalidChannel, err)
}

func TestPolicyService_RecordDeliveryOutcome_LocationNotFound(t *testing.T) {
	fx := createTestPolicyService(t, &config.Config{})

	ctx := context.Background()
	locationID := uuid.New()

	fx.locationRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(nil, repository.ErrLocationNotFound)

	err := fx.service.RecordDeliveryOutcome(ctx, &usecase.DeliveryOutcomeInput{
		LocationID: locationID,
		Channel:    entity.ChannelSMS,
	})
	assert.Equal(t, ErrLocationNotFound, err)
}
