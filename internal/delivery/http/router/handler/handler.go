// Package handler contains the echo handlers for the admin and visitor APIs.
package handler

import (
	"net/http"

	"nearbite/internal/delivery/http/response"
	"nearbite/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// getUserID extracts the authenticated admin user ID from the context.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		// Write the envelope here; the non-nil error stops the handler and the
		// error middleware skips the already committed response.
		_ = response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")

		return uuid.Nil, echo.ErrUnauthorized
	}

	return userID, nil
}

// handleUsecaseError maps usecase sentinel errors onto API error responses.
// Unknown errors bubble up to the error middleware as internal errors.
func handleUsecaseError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrLocationNotFound):
		return response.NotFound(c, "LOCATION_NOT_FOUND", err.Error())
	case errors.Is(err, impl.ErrGeofenceNotFound):
		return response.NotFound(c, "GEOFENCE_NOT_FOUND", err.Error())
	case errors.Is(err, impl.ErrVisitorNotFound):
		return response.NotFound(c, "VISITOR_NOT_FOUND", err.Error())
	case errors.Is(err, impl.ErrUnauthorized):
		return response.Forbidden(c, "FORBIDDEN", err.Error())
	case errors.Is(err, impl.ErrInvalidCoordinates):
		return response.BadRequest(c, "INVALID_COORDINATES", err.Error())
	case errors.Is(err, impl.ErrInvalidRadius):
		return response.BadRequest(c, "INVALID_RADIUS", err.Error())
	case errors.Is(err, impl.ErrInvalidChannel):
		return response.BadRequest(c, "INVALID_CHANNEL", err.Error())
	case errors.Is(err, impl.ErrInvalidCooldown):
		return response.BadRequest(c, "INVALID_COOLDOWN", err.Error())
	case errors.Is(err, impl.ErrInvalidTimeWindow):
		return response.BadRequest(c, "INVALID_TIME_WINDOW", err.Error())
	case errors.Is(err, impl.ErrInvalidEventType):
		return response.BadRequest(c, "INVALID_EVENT_TYPE", err.Error())
	case errors.Is(err, impl.ErrInvalidInterval):
		return response.BadRequest(c, "INVALID_INTERVAL", err.Error())
	case errors.Is(err, impl.ErrNoContactDetails):
		return response.BadRequest(c, "NO_CONTACT_DETAILS", err.Error())
	}

	return errors.WithStack(err)
}
