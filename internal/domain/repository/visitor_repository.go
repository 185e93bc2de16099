// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for visitor persistence.
var (
	// ErrVisitorNotFound is returned when a visitor is not found.
	ErrVisitorNotFound = errors.New("visitor not found")
)

// VisitorRepository defines the interface for visitor-related database operations.
type VisitorRepository interface {
	// UpsertVisitor creates a visitor record or refreshes the contact details
	// of an existing one.
	UpsertVisitor(ctx context.Context, visitor *entity.Visitor) error

	// FindVisitorByID retrieves a visitor by its unique ID.
	FindVisitorByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error)

	// DeleteVisitor removes a visitor and its cooldown state.
	DeleteVisitor(ctx context.Context, id uuid.UUID) error
}
