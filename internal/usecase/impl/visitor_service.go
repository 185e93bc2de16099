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
	// ErrNoContactDetails is returned when a visitor registers without any reachable channel
	ErrNoContactDetails = errors.New("at least one contact detail is required")
)

type visitorService struct {
	visitorRepo repository.VisitorRepository
}

// NewVisitorService creates a new visitor service instance
func NewVisitorService(visitorRepo repository.VisitorRepository) usecase.VisitorUsecase {
	return &visitorService{
		visitorRepo: visitorRepo,
	}
}

// RegisterVisitor creates a visitor record or refreshes an existing one
func (s *visitorService) RegisterVisitor(ctx context.Context, input *usecase.RegisterVisitorInput) (*entity.Visitor, error) {
	if input.PhoneNumber == "" && input.Email == "" && input.DeviceToken == "" {
		return nil, ErrNoContactDetails
	}

	visitor := &entity.Visitor{
		ID:          uuid.New(),
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		DeviceToken: input.DeviceToken,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if input.ID != nil {
		visitor.ID = *input.ID
	}

	if err := s.visitorRepo.UpsertVisitor(ctx, visitor); err != nil {
		return nil, fmt.Errorf("failed to upsert visitor: %w", err)
	}

	return visitor, nil
}

// GetVisitor retrieves a visitor by ID
func (s *visitorService) GetVisitor(ctx context.Context, visitorID uuid.UUID) (*entity.Visitor, error) {
	visitor, err := s.visitorRepo.FindVisitorByID(ctx, visitorID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return nil, ErrVisitorNotFound
		}

		return nil, fmt.Errorf("failed to find visitor by ID: %w", err)
	}

	return visitor, nil
}

// DeleteVisitor removes a visitor and its cooldown state
func (s *visitorService) DeleteVisitor(ctx context.Context, visitorID uuid.UUID) error {
	if err := s.visitorRepo.DeleteVisitor(ctx, visitorID); err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return ErrVisitorNotFound
		}

		return fmt.Errorf("failed to delete visitor: %w", err)
	}

	return nil
}
