package service

import (
	"context"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// SendRequest carries one rendered notification to a delivery provider.
type SendRequest struct {
	Channel    entity.Channel `json:"channel"`
	To         string         `json:"to"`      // Phone number, email address or device token depending on the channel.
	Subject    string         `json:"subject"` // Rendered subject; empty for channels without one.
	Body       string         `json:"body"`    // Rendered message body.
	LocationID uuid.UUID      `json:"location_id"`
	VisitorID  uuid.UUID      `json:"visitor_id"`
}

// SendResult is the provider's acceptance receipt.
type SendResult struct {
	ProviderMessageID string `json:"provider_message_id,omitempty"` // Provider-side identifier, when the provider returns one.
}

// DeliveryDispatcher defines the interface for handing rendered notifications
// to an external delivery provider. Acceptance by the provider counts as sent;
// delivery confirmations arrive later through the callback endpoint.
type DeliveryDispatcher interface {
	// Dispatch submits a single send request to the provider.
	Dispatch(ctx context.Context, req *SendRequest) (*SendResult, error)
}
