package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrInvalidChannel is returned when a channel name is not recognised
	ErrInvalidChannel = errors.New("unknown notification channel")
	// ErrInvalidCooldown is returned when the cooldown is negative
	ErrInvalidCooldown = errors.New("cooldown minutes must not be negative")
	// ErrInvalidTimeWindow is returned when the window bounds are malformed or half-set
	ErrInvalidTimeWindow = errors.New("time window must set both HH:MM bounds or neither")
)

type automationService struct {
	locationRepo   repository.LocationRepository
	automationRepo repository.AutomationRepository
}

// NewAutomationService creates a new automation service instance
func NewAutomationService(
	locationRepo repository.LocationRepository,
	automationRepo repository.AutomationRepository,
) usecase.AutomationUsecase {
	return &automationService{
		locationRepo:   locationRepo,
		automationRepo: automationRepo,
	}
}

// ConfigureAutomation creates or replaces the automation for a location and channel
func (s *automationService) ConfigureAutomation(ctx context.Context, userID, locationID uuid.UUID, input *usecase.ConfigureAutomationInput) (*entity.Automation, error) {
	if err := s.verifyOwnership(ctx, userID, locationID); err != nil {
		return nil, err
	}

	if !input.Channel.Valid() {
		return nil, ErrInvalidChannel
	}
	if input.CooldownMinutes < 0 {
		return nil, ErrInvalidCooldown
	}
	if (input.StartTime == "") != (input.EndTime == "") {
		return nil, ErrInvalidTimeWindow
	}
	if input.StartTime != "" {
		if _, err := entity.ParseTimeWindow(input.StartTime, input.EndTime); err != nil {
			return nil, ErrInvalidTimeWindow
		}
	}

	automation := &entity.Automation{
		ID:              uuid.New(),
		LocationID:      locationID,
		Channel:         input.Channel,
		Enabled:         input.Enabled,
		CooldownMinutes: input.CooldownMinutes,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		TemplateSubject: input.TemplateSubject,
		TemplateBody:    input.TemplateBody,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.automationRepo.UpsertAutomation(ctx, automation); err != nil {
		return nil, fmt.Errorf("failed to upsert automation: %w", err)
	}

	return automation, nil
}

// ListAutomations retrieves every automation configured for a location
func (s *automationService) ListAutomations(ctx context.Context, userID, locationID uuid.UUID) ([]*entity.Automation, error) {
	if err := s.verifyOwnership(ctx, userID, locationID); err != nil {
		return nil, err
	}

	automations, err := s.automationRepo.FindAutomationsByLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find automations by location: %w", err)
	}

	return automations, nil
}

func (s *automationService) verifyOwnership(ctx context.Context, userID, locationID uuid.UUID) error {
	location, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return ErrLocationNotFound
		}

		return fmt.Errorf("failed to find location by ID: %w", err)
	}

	if location.UserID != userID {
		return ErrUnauthorized
	}

	return nil
}
