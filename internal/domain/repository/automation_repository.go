// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for automation persistence.
var (
	// ErrAutomationNotFound is returned when no automation exists for a location and channel.
	ErrAutomationNotFound = errors.New("automation not found")
)

// AutomationRepository defines the interface for automation-related database operations.
type AutomationRepository interface {
	// UpsertAutomation creates or overwrites the automation for a
	// (location, channel) pair. One automation per pair; last write wins.
	UpsertAutomation(ctx context.Context, automation *entity.Automation) error

	// FindAutomationsByLocation retrieves every automation configured for a
	// location, across all channels.
	FindAutomationsByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Automation, error)

	// FindAutomation retrieves the automation for a specific location and channel.
	FindAutomation(ctx context.Context, locationID uuid.UUID, channel entity.Channel) (*entity.Automation, error)
}
