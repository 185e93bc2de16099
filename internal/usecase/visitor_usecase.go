package usecase

import (
	"context"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterVisitorInput represents the input for registering or refreshing a visitor
type RegisterVisitorInput struct {
	ID          *uuid.UUID `json:"id,omitempty"` // Existing visitor ID when refreshing contact details.
	PhoneNumber string     `json:"phone_number"`
	Email       string     `json:"email"`
	DeviceToken string     `json:"device_token"`
}

// VisitorUsecase defines the interface for visitor management use cases
type VisitorUsecase interface {
	// RegisterVisitor creates a visitor record or refreshes the contact
	// details of an existing one
	RegisterVisitor(ctx context.Context, input *RegisterVisitorInput) (*entity.Visitor, error)

	// GetVisitor retrieves a visitor by ID
	GetVisitor(ctx context.Context, visitorID uuid.UUID) (*entity.Visitor, error)

	// DeleteVisitor removes a visitor and its cooldown state
	DeleteVisitor(ctx context.Context, visitorID uuid.UUID) error
}
