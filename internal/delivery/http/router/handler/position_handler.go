package handler

import (
	"log/slog"
	"net/http"
	"time"

	"nearbite/internal/delivery/http/response"
	"nearbite/internal/domain/entity"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PositionHandlerParams holds dependencies for PositionHandler, injected by Fx.
type PositionHandlerParams struct {
	fx.In

	PolicyUC usecase.PolicyUsecase
	Logger   *slog.Logger
}

// PositionHandler holds dependencies for position ingest and delivery callbacks
type PositionHandler struct {
	policyUC usecase.PolicyUsecase
	logger   *slog.Logger
}

// NewPositionHandler is the constructor for PositionHandler
func NewPositionHandler(params PositionHandlerParams) *PositionHandler {
	return &PositionHandler{
		policyUC: params.PolicyUC,
		logger:   params.Logger,
	}
}

// IngestPositionRequest represents a visitor device position fix
type IngestPositionRequest struct {
	VisitorID  uuid.UUID  `json:"visitor_id" validate:"required"`
	Latitude   float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64    `json:"longitude" validate:"min=-180,max=180"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

// DeliveryOutcomeRequest represents a delivery provider callback
type DeliveryOutcomeRequest struct {
	LocationID        uuid.UUID `json:"location_id" validate:"required"`
	VisitorID         uuid.UUID `json:"visitor_id" validate:"required"`
	Channel           string    `json:"channel" validate:"required"`
	Delivered         bool      `json:"delivered"`
	ProviderMessageID string    `json:"provider_message_id"`
	FailureReason     string    `json:"failure_reason"`
}

// IngestPosition handles accepting a position update from a visitor device.
// Evaluation happens inline or via the worker queue depending on configuration.
func (h *PositionHandler) IngestPosition(c echo.Context) error {
	var req IngestPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	if err := h.policyUC.IngestPosition(c.Request().Context(), &entity.PositionUpdate{
		VisitorID:  req.VisitorID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		RecordedAt: recordedAt,
	}); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// RecordDeliveryOutcome handles the delivered/failed callback from a delivery provider
func (h *PositionHandler) RecordDeliveryOutcome(c echo.Context) error {
	var req DeliveryOutcomeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery outcome input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.policyUC.RecordDeliveryOutcome(c.Request().Context(), &usecase.DeliveryOutcomeInput{
		LocationID:        req.LocationID,
		VisitorID:         req.VisitorID,
		Channel:           entity.Channel(req.Channel),
		Delivered:         req.Delivered,
		ProviderMessageID: req.ProviderMessageID,
		FailureReason:     req.FailureReason,
	}); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "recorded"})
}
