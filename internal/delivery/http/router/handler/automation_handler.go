package handler

import (
	"log/slog"
	"net/http"

	"nearbite/internal/delivery/http/response"
	"nearbite/internal/domain/entity"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AutomationHandlerParams holds dependencies for AutomationHandler, injected by Fx.
type AutomationHandlerParams struct {
	fx.In

	AutomationUC usecase.AutomationUsecase
	Logger       *slog.Logger
}

// AutomationHandler holds dependencies for automation-related handlers
type AutomationHandler struct {
	automationUC usecase.AutomationUsecase
	logger       *slog.Logger
}

// NewAutomationHandler is the constructor for AutomationHandler
func NewAutomationHandler(params AutomationHandlerParams) *AutomationHandler {
	return &AutomationHandler{
		automationUC: params.AutomationUC,
		logger:       params.Logger,
	}
}

// ConfigureAutomationRequest represents the request body for configuring a channel automation.
// The channel itself comes from the URL path.
type ConfigureAutomationRequest struct {
	Enabled         bool   `json:"enabled"`
	CooldownMinutes int    `json:"cooldown_minutes" validate:"min=0"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	TemplateSubject string `json:"template_subject"`
	TemplateBody    string `json:"template_body"`
}

// ConfigureAutomation handles creating or replacing a (location, channel) automation
func (h *AutomationHandler) ConfigureAutomation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req ConfigureAutomationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid automation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	automation, err := h.automationUC.ConfigureAutomation(c.Request().Context(), userID, locationID, &usecase.ConfigureAutomationInput{
		Channel:         entity.Channel(c.Param("channel")),
		Enabled:         req.Enabled,
		CooldownMinutes: req.CooldownMinutes,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		TemplateSubject: req.TemplateSubject,
		TemplateBody:    req.TemplateBody,
	})
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, automation)
}

// ListAutomations handles retrieving every automation configured for a location
func (h *AutomationHandler) ListAutomations(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	automations, err := h.automationUC.ListAutomations(c.Request().Context(), userID, locationID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, automations)
}
