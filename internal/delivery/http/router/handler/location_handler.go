package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nearbite/internal/delivery/http/response"
	"nearbite/internal/domain/entity"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	Name        string   `json:"name" validate:"required"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// UpdateLocationRequest represents the request body for updating a location
type UpdateLocationRequest struct {
	Name        *string  `json:"name,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Description *string  `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// SetStatusRequest represents the request body for pausing or resuming a location
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused"`
}

// SetGeofenceRequest represents the request body for configuring a geofence
type SetGeofenceRequest struct {
	CenterLatitude  float64 `json:"center_latitude" validate:"min=-90,max=90"`
	CenterLongitude float64 `json:"center_longitude" validate:"min=-180,max=180"`
	RadiusMeters    float64 `json:"radius_meters" validate:"required,gt=0"`
}

// CreateLocation handles creating a new restaurant location
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), userID, &usecase.CreateLocationInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// GetLocation handles retrieving a single location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), userID, locationID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// ListLocations handles retrieving the caller's locations
func (h *LocationHandler) ListLocations(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	locations, err := h.locationUC.ListLocations(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// UpdateLocation handles a partial update of a location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	location, err := h.locationUC.UpdateLocation(c.Request().Context(), userID, locationID, &usecase.UpdateLocationInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// SetLocationStatus handles pausing or resuming a location
func (h *LocationHandler) SetLocationStatus(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.locationUC.SetLocationStatus(c.Request().Context(), userID, locationID, entity.LocationStatus(req.Status)); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status})
}

// DeleteLocation handles deleting a location and its dependent configuration
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	if err := h.locationUC.DeleteLocation(c.Request().Context(), userID, locationID); err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted"})
}

// SetGeofence handles creating or replacing a location's geofence
func (h *LocationHandler) SetGeofence(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req SetGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	geofence, err := h.locationUC.SetGeofence(c.Request().Context(), userID, locationID, &usecase.SetGeofenceInput{
		CenterLatitude:  req.CenterLatitude,
		CenterLongitude: req.CenterLongitude,
		RadiusMeters:    req.RadiusMeters,
	})
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence)
}

// GetGeofence handles retrieving a location's geofence
func (h *LocationHandler) GetGeofence(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	geofence, err := h.locationUC.GetGeofence(c.Request().Context(), userID, locationID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return response.Success(c, http.StatusOK, geofence)
}

// GetOptInQR handles rendering the opt-in QR code as a PNG image
func (h *LocationHandler) GetOptInQR(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	png, err := h.locationUC.GenerateOptInQR(c.Request().Context(), userID, locationID)
	if err != nil {
		return handleUsecaseError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
