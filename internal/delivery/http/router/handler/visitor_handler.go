package handler

import (
	"log/slog"
	"net/http"

	"nearbite/internal/delivery/http/response"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VisitorHandlerParams holds dependencies for VisitorHandler, injected by Fx.
type VisitorHandlerParams struct {
	fx.In

	VisitorUC usecase.VisitorUsecase
	Logger    *slog.Logger
}

// VisitorHandler holds dependencies for visitor-related handlers
type VisitorHandler struct {
	visitorUC usecase.VisitorUsecase
	logger    *slog.Logger
}

// NewVisitorHandler is the constructor for VisitorHandler
func NewVisitorHandler(params VisitorHandlerParams) *VisitorHandler {
	return &VisitorHandler{
		visitorUC: params.VisitorUC,
		logger:    params.Logger,
	}
}

// RegisterVisitorRequest represents the request body for registering a visitor
type RegisterVisitorRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	PhoneNumber string     `json:"phone_number" validate:"omitempty,e164"`
	Email       string     `json:"email" validate:"omitempty,email"`
	DeviceToken string     `json:"device_token"`
}

// RegisterVisitor handles opting a visitor in, or refreshing contact details
func (h *VisitorHandler) RegisterVisitor(c echo.Context) error {
	var req RegisterVisitorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visitor input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	visitor, err := h.visitorUC.RegisterVisitor(c.Request().Context(), &usecase.RegisterVisitorInput{
		ID:          req.ID,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		DeviceToken: req.DeviceToken,
	})
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusCreated, visitor)
}

// GetVisitor handles retrieving a visitor record
func (h *VisitorHandler) GetVisitor(c echo.Context) error {
	visitorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visitor ID")
	}

	visitor, err := h.visitorUC.GetVisitor(c.Request().Context(), visitorID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, visitor)
}

// DeleteVisitor handles opting a visitor out and erasing their record
func (h *VisitorHandler) DeleteVisitor(c echo.Context) error {
	visitorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid visitor ID")
	}

	if err := h.visitorUC.DeleteVisitor(c.Request().Context(), visitorID); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Visitor deleted"})
}
