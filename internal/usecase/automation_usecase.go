package usecase

import (
	"context"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// ConfigureAutomationInput represents the input for configuring a channel automation
type ConfigureAutomationInput struct {
	Channel         entity.Channel `json:"channel"`
	Enabled         bool           `json:"enabled"`
	CooldownMinutes int            `json:"cooldown_minutes"`
	StartTime       string         `json:"start_time"` // "HH:MM", empty for no window restriction
	EndTime         string         `json:"end_time"`   // "HH:MM", empty for no window restriction
	TemplateSubject string         `json:"template_subject"`
	TemplateBody    string         `json:"template_body"`
}

// AutomationUsecase defines the interface for automation management use cases
type AutomationUsecase interface {
	// ConfigureAutomation creates or replaces the automation for a location and
	// channel (one automation per pair, last write wins)
	ConfigureAutomation(ctx context.Context, userID, locationID uuid.UUID, input *ConfigureAutomationInput) (*entity.Automation, error)

	// ListAutomations retrieves every automation configured for a location
	ListAutomations(ctx context.Context, userID, locationID uuid.UUID) ([]*entity.Automation, error)
}
