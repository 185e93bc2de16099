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
	// ErrInvalidEventType is returned when an event type filter is not recognised
	ErrInvalidEventType = errors.New("unknown event type")
	// ErrInvalidInterval is returned when a stats interval is reversed
	ErrInvalidInterval = errors.New("interval end must not precede its start")
)

const (
	defaultEventPageSize = 50
	maxEventPageSize     = 200
)

type eventService struct {
	locationRepo repository.LocationRepository
	eventRepo    repository.EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(
	locationRepo repository.LocationRepository,
	eventRepo repository.EventRepository,
) usecase.EventUsecase {
	return &eventService{
		locationRepo: locationRepo,
		eventRepo:    eventRepo,
	}
}

// ListEvents retrieves audit events for a location, newest first
func (s *eventService) ListEvents(ctx context.Context, userID, locationID uuid.UUID, eventType entity.EventType, limit, offset int) ([]*entity.Event, error) {
	if err := s.verifyOwnership(ctx, userID, locationID); err != nil {
		return nil, err
	}

	if eventType != "" && !eventType.Valid() {
		return nil, ErrInvalidEventType
	}

	if limit <= 0 {
		limit = defaultEventPageSize
	}
	if limit > maxEventPageSize {
		limit = maxEventPageSize
	}
	if offset < 0 {
		offset = 0
	}

	events, err := s.eventRepo.FindEventsByLocation(ctx, locationID, eventType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find events by location: %w", err)
	}

	return events, nil
}

// GetDailySendStats aggregates notification_sent counts per day per channel
func (s *eventService) GetDailySendStats(ctx context.Context, userID, locationID uuid.UUID, from, to time.Time) ([]*entity.DailySendStats, error) {
	if err := s.verifyOwnership(ctx, userID, locationID); err != nil {
		return nil, err
	}

	if to.Before(from) {
		return nil, ErrInvalidInterval
	}

	stats, err := s.eventRepo.CountSentByDay(ctx, locationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count sent events by day: %w", err)
	}

	return stats, nil
}

func (s *eventService) verifyOwnership(ctx context.Context, userID, locationID uuid.UUID) error {
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
