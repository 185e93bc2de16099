package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"nearbite/internal/delivery/http/response"
	"nearbite/internal/domain/entity"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	EventUC usecase.EventUsecase
	Logger  *slog.Logger
}

// EventHandler holds dependencies for audit log and analytics handlers
type EventHandler struct {
	eventUC usecase.EventUsecase
	logger  *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		eventUC: params.EventUC,
		logger:  params.Logger,
	}
}

// ListEvents handles retrieving audit events for a location, newest first
func (h *EventHandler) ListEvents(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	eventType := entity.EventType(c.QueryParam("type"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	events, err := h.eventUC.ListEvents(c.Request().Context(), userID, locationID, eventType, limit, offset)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}

// GetDailySendStats handles aggregating per-day per-channel send counts
func (h *EventHandler) GetDailySendStats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	from, to, err := parseStatsInterval(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INTERVAL", err.Error())
	}

	stats, err := h.eventUC.GetDailySendStats(c.Request().Context(), userID, locationID, from, to)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// defaultStatsDays is the dashboard's lookback when no interval is given.
const defaultStatsDays = 7

// parseStatsInterval resolves the stats interval from either a trailing
// `days` lookback or explicit `from`/`to` bounds.
func parseStatsInterval(c echo.Context) (time.Time, time.Time, error) {
	if daysParam := c.QueryParam("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days <= 0 {
			return time.Time{}, time.Time{}, errors.New("invalid 'days' value")
		}

		now := time.Now()

		return now.AddDate(0, 0, -days), now, nil
	}

	if c.QueryParam("from") == "" && c.QueryParam("to") == "" {
		now := time.Now()

		return now.AddDate(0, 0, -defaultStatsDays), now, nil
	}

	from, err := parseStatsTime(c.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid 'from' timestamp")
	}

	to, err := parseStatsTime(c.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid 'to' timestamp")
	}

	return from, to, nil
}

// parseStatsTime accepts RFC3339 timestamps or bare dates.
func parseStatsTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}
