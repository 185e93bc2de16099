package usecase

import (
	"context"
	"time"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryOutcomeInput represents a provider callback about a dispatched notification
type DeliveryOutcomeInput struct {
	LocationID        uuid.UUID      `json:"location_id"`
	VisitorID         uuid.UUID      `json:"visitor_id"`
	Channel           entity.Channel `json:"channel"`
	Delivered         bool           `json:"delivered"`
	ProviderMessageID string         `json:"provider_message_id,omitempty"`
	FailureReason     string         `json:"failure_reason,omitempty"`
}

// PolicyUsecase defines the interface for the geofence notification decision engine
type PolicyUsecase interface {
	// IngestPosition accepts a visitor position update. Depending on
	// configuration it either evaluates inline or publishes the update to the
	// worker queue for async evaluation.
	IngestPosition(ctx context.Context, update *entity.PositionUpdate) error

	// EvaluatePosition runs the full decision pipeline for one position
	// update: geographic prefilter, fence containment, then per-channel policy
	// gates with dispatch on success. Returns one evaluation per candidate
	// location.
	EvaluatePosition(ctx context.Context, update *entity.PositionUpdate, now time.Time) ([]*entity.LocationEvaluation, error)

	// RecordDeliveryOutcome appends the delivered/failed audit event reported
	// by the delivery provider callback.
	RecordDeliveryOutcome(ctx context.Context, input *DeliveryOutcomeInput) error
}
