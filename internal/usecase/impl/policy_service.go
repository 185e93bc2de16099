package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nearbite/config"
	"nearbite/internal/domain/constants"
	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	"nearbite/internal/domain/service"
	"nearbite/internal/geo"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

var (
	// ErrVisitorNotFound is returned when a position update references an unknown visitor
	ErrVisitorNotFound = errors.New("visitor not found")
)

type policyService struct {
	locationRepo   repository.LocationRepository
	geofenceRepo   repository.GeofenceRepository
	automationRepo repository.AutomationRepository
	visitorRepo    repository.VisitorRepository
	eventRepo      repository.EventRepository
	cooldownRepo   repository.CooldownRepository
	dispatcher     service.DeliveryDispatcher
	renderer       service.TemplateRenderer
	publisher      service.EventPublisher

	ingestMode string
	epsilon    float64
	timezone   *time.Location
}

// NewPolicyService creates the geofence notification decision engine.
func NewPolicyService(
	locationRepo repository.LocationRepository,
	geofenceRepo repository.GeofenceRepository,
	automationRepo repository.AutomationRepository,
	visitorRepo repository.VisitorRepository,
	eventRepo repository.EventRepository,
	cooldownRepo repository.CooldownRepository,
	dispatcher service.DeliveryDispatcher,
	renderer service.TemplateRenderer,
	publisher service.EventPublisher,
	cfg *config.Config,
) (usecase.PolicyUsecase, error) {
	ingestMode := constants.IngestModeInline
	epsilon := geo.DefaultBoundaryEpsilon
	timezone := time.UTC

	if cfg.Policy != nil {
		if cfg.Policy.IngestMode != "" {
			ingestMode = cfg.Policy.IngestMode
		}
		if cfg.Policy.BoundaryEpsilonMeters > 0 {
			epsilon = cfg.Policy.BoundaryEpsilonMeters
		}
		if cfg.Policy.ReferenceTimezone != "" {
			loaded, err := time.LoadLocation(cfg.Policy.ReferenceTimezone)
			if err != nil {
				return nil, fmt.Errorf("failed to load reference timezone: %w", err)
			}
			timezone = loaded
		}
	}

	return &policyService{
		locationRepo:   locationRepo,
		geofenceRepo:   geofenceRepo,
		automationRepo: automationRepo,
		visitorRepo:    visitorRepo,
		eventRepo:      eventRepo,
		cooldownRepo:   cooldownRepo,
		dispatcher:     dispatcher,
		renderer:       renderer,
		publisher:      publisher,
		ingestMode:     ingestMode,
		epsilon:        epsilon,
		timezone:       timezone,
	}, nil
}

// IngestPosition accepts a visitor position update and either evaluates it
// inline or hands it to the worker queue.
func (s *policyService) IngestPosition(ctx context.Context, update *entity.PositionUpdate) error {
	if !geo.ValidCoordinate(update.Latitude, update.Longitude) {
		return ErrInvalidCoordinates
	}

	if s.ingestMode == constants.IngestModeQueue && s.publisher != nil {
		event := &service.PositionEvent{
			VisitorID:  update.VisitorID.String(),
			Latitude:   update.Latitude,
			Longitude:  update.Longitude,
			RecordedAt: update.RecordedAt,
		}
		if err := s.publisher.PublishPositionEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to publish position event: %w", err)
		}

		return nil
	}

	if _, err := s.EvaluatePosition(ctx, update, time.Now()); err != nil {
		return err
	}

	return nil
}

// EvaluatePosition runs the decision pipeline for a single position update.
//
// For every candidate location the gates run in a fixed short-circuit order:
// location status, fence presence, fence containment, then per channel the
// automation's enabled flag, time window, recipient and cooldown. Only a
// position that clears every gate reaches the dispatcher.
func (s *policyService) EvaluatePosition(ctx context.Context, update *entity.PositionUpdate, now time.Time) ([]*entity.LocationEvaluation, error) {
	if !geo.ValidCoordinate(update.Latitude, update.Longitude) {
		return nil, ErrInvalidCoordinates
	}

	visitor, err := s.visitorRepo.FindVisitorByID(ctx, update.VisitorID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return nil, ErrVisitorNotFound
		}

		return nil, fmt.Errorf("failed to find visitor by ID: %w", err)
	}

	candidates, err := s.geofenceRepo.FindCandidatesNear(ctx, update.Latitude, update.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to find geofence candidates: %w", err)
	}

	evaluations := make([]*entity.LocationEvaluation, 0, len(candidates))
	for _, candidate := range candidates {
		evaluation, err := s.evaluateCandidate(ctx, candidate, visitor, update, now)
		if err != nil {
			return evaluations, err
		}
		evaluations = append(evaluations, evaluation)
	}

	return evaluations, nil
}

func (s *policyService) evaluateCandidate(
	ctx context.Context,
	candidate *repository.GeofenceCandidate,
	visitor *entity.Visitor,
	update *entity.PositionUpdate,
	now time.Time,
) (*entity.LocationEvaluation, error) {
	location := candidate.Location
	evaluation := &entity.LocationEvaluation{
		LocationID: location.ID,
		VisitorID:  visitor.ID,
	}

	automations, err := s.automationRepo.FindAutomationsByLocation(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find automations by location: %w", err)
	}

	// Location-level gates suppress every configured channel with one reason.
	if !location.IsActive() {
		evaluation.Decisions = suppressAll(automations, entity.SuppressLocationInactive)

		return evaluation, nil
	}

	if candidate.Geofence == nil {
		evaluation.Decisions = suppressAll(automations, entity.SuppressNoGeofence)

		return evaluation, nil
	}

	fence := geo.NewCircle(candidate.Geofence.CenterLatitude, candidate.Geofence.CenterLongitude, candidate.Geofence.RadiusMeters)
	if !fence.Contains(orb.Point{update.Longitude, update.Latitude}, s.epsilon) {
		evaluation.Decisions = suppressAll(automations, entity.SuppressOutsideFence)

		return evaluation, nil
	}

	evaluation.EnteredFence = true
	if err := s.appendEvent(ctx, &entity.Event{
		ID:         uuid.New(),
		LocationID: location.ID,
		UserID:     location.UserID,
		VisitorID:  visitor.ID,
		EventType:  entity.EventGeofenceEntered,
		Metadata: map[string]any{
			"latitude":  update.Latitude,
			"longitude": update.Longitude,
		},
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	for _, automation := range automations {
		decision := s.evaluateChannel(ctx, location, automation, visitor, now)
		evaluation.Decisions = append(evaluation.Decisions, decision)
	}

	return evaluation, nil
}

// evaluateChannel runs the per-channel gates and dispatches when they all pass.
func (s *policyService) evaluateChannel(
	ctx context.Context,
	location *entity.Location,
	automation *entity.Automation,
	visitor *entity.Visitor,
	now time.Time,
) entity.ChannelDecision {
	decision := entity.ChannelDecision{Channel: automation.Channel}

	if !automation.Enabled {
		decision.Outcome = entity.OutcomeSuppressed
		decision.Reason = entity.SuppressChannelDisabled

		return decision
	}

	window, bounded, err := automation.Window()
	if err != nil || (bounded && !window.Contains(now.In(s.timezone))) {
		// A malformed window fails closed, the same as being outside it.
		decision.Outcome = entity.OutcomeSuppressed
		decision.Reason = entity.SuppressOutsideWindow

		return decision
	}

	recipient, ok := visitor.ContactFor(automation.Channel)
	if !ok {
		decision.Outcome = entity.OutcomeSuppressed
		decision.Reason = entity.SuppressNoRecipient

		return decision
	}

	claimed, err := s.cooldownRepo.Claim(ctx, visitor.ID, location.ID, automation.Channel, now, automation.Cooldown())
	if err != nil {
		decision.Outcome = entity.OutcomeEligible
		decision.Error = err.Error()

		return decision
	}
	if !claimed {
		decision.Outcome = entity.OutcomeSuppressed
		decision.Reason = entity.SuppressCooldownActive

		return decision
	}

	variables := location.TemplateVariables()
	req := &service.SendRequest{
		Channel:    automation.Channel,
		To:         recipient,
		Body:       s.renderer.Render(automation.TemplateBody, variables),
		LocationID: location.ID,
		VisitorID:  visitor.ID,
	}
	if automation.Channel.RequiresSubject() {
		req.Subject = s.renderer.Render(automation.TemplateSubject, variables)
	}

	result, err := s.dispatcher.Dispatch(ctx, req)
	if err != nil {
		// The cooldown slot stays claimed: a provider outage must not turn
		// into a burst of retries toward the same visitor.
		decision.Outcome = entity.OutcomeEligible
		decision.Error = err.Error()
		s.appendEventQuiet(ctx, &entity.Event{
			ID:         uuid.New(),
			LocationID: location.ID,
			UserID:     location.UserID,
			VisitorID:  visitor.ID,
			Channel:    automation.Channel,
			EventType:  entity.EventNotificationFailed,
			Metadata:   map[string]any{"error": err.Error()},
			CreatedAt:  now,
		})

		return decision
	}

	decision.Outcome = entity.OutcomeSent
	metadata := map[string]any{}
	if result != nil && result.ProviderMessageID != "" {
		metadata["provider_message_id"] = result.ProviderMessageID
	}
	s.appendEventQuiet(ctx, &entity.Event{
		ID:         uuid.New(),
		LocationID: location.ID,
		UserID:     location.UserID,
		VisitorID:  visitor.ID,
		Channel:    automation.Channel,
		EventType:  entity.EventNotificationSent,
		Metadata:   metadata,
		CreatedAt:  now,
	})

	return decision
}

// RecordDeliveryOutcome appends the delivered/failed audit event reported by
// the delivery provider callback.
func (s *policyService) RecordDeliveryOutcome(ctx context.Context, input *usecase.DeliveryOutcomeInput) error {
	if !input.Channel.Valid() {
		return ErrInvalidChannel
	}

	location, err := s.locationRepo.FindLocationByID(ctx, input.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return ErrLocationNotFound
		}

		return fmt.Errorf("failed to find location by ID: %w", err)
	}

	eventType := entity.EventNotificationDelivered
	metadata := map[string]any{}
	if input.ProviderMessageID != "" {
		metadata["provider_message_id"] = input.ProviderMessageID
	}
	if !input.Delivered {
		eventType = entity.EventNotificationFailed
		if input.FailureReason != "" {
			metadata["error"] = input.FailureReason
		}
	}

	return s.appendEvent(ctx, &entity.Event{
		ID:         uuid.New(),
		LocationID: location.ID,
		UserID:     location.UserID,
		VisitorID:  input.VisitorID,
		Channel:    input.Channel,
		EventType:  eventType,
		Metadata:   metadata,
		CreatedAt:  time.Now(),
	})
}

func (s *policyService) appendEvent(ctx context.Context, event *entity.Event) error {
	if err := s.eventRepo.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to append %s event: %w", event.EventType, err)
	}

	return nil
}

// appendEventQuiet records an audit event without failing the evaluation.
// A send that went out must be reported to the caller even when the audit
// write breaks.
func (s *policyService) appendEventQuiet(ctx context.Context, event *entity.Event) {
	_ = s.eventRepo.AppendEvent(ctx, event)
}

// suppressAll builds one suppressed decision per configured automation.
func suppressAll(automations []*entity.Automation, reason entity.SuppressReason) []entity.ChannelDecision {
	decisions := make([]entity.ChannelDecision, 0, len(automations))
	for _, automation := range automations {
		decisions = append(decisions, entity.ChannelDecision{
			Channel: automation.Channel,
			Outcome: entity.OutcomeSuppressed,
			Reason:  reason,
		})
	}

	return decisions
}
