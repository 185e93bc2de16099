package service

import (
	"context"
	"time"
)

// PositionEvent represents a visitor position update to be processed by the geo worker
type PositionEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	VisitorID  string    `json:"visitor_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPositionEvent publishes a position update for async evaluation
	PublishPositionEvent(ctx context.Context, event *PositionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
