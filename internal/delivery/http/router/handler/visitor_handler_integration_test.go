package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nearbite/internal/delivery/http/validator"
	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	mockRepo "nearbite/internal/mocks/repository"
	"nearbite/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVisitorHandler_RegisterVisitor_Integration(t *testing.T) {
	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	visitorRepo.EXPECT().UpsertVisitor(mock.Anything, mock.Anything).Return(nil)

	// Create handler backed by the real visitor service
	handler := &VisitorHandler{
		visitorUC: impl.NewVisitorService(visitorRepo),
		logger:    slog.Default(),
	}

	// Create Echo context
	e := echo.New()
	e.Validator = validator.New()
	body := `{"phone_number": "+14155550123"}`
	req := httptest.NewRequest(http.MethodPost, "/visitors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.RegisterVisitor(c)
	assert.NoError(t, err)

	// Check response
	assert.Equal(t, http.StatusCreated, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "+14155550123")
	assert.Contains(t, responseBody, `"id"`)
}

func TestVisitorHandler_RegisterVisitor_NoContactDetails(t *testing.T) {
	visitorRepo := mockRepo.NewMockVisitorRepository(t)

	handler := &VisitorHandler{
		visitorUC: impl.NewVisitorService(visitorRepo),
		logger:    slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/visitors", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.RegisterVisitor(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_CONTACT_DETAILS")
}

func TestVisitorHandler_GetVisitor_NotFound(t *testing.T) {
	visitorID := uuid.New()

	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	visitorRepo.EXPECT().FindVisitorByID(mock.Anything, visitorID).Return(nil, repository.ErrVisitorNotFound)

	handler := &VisitorHandler{
		visitorUC: impl.NewVisitorService(visitorRepo),
		logger:    slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, "/visitors/"+visitorID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(visitorID.String())

	err := handler.GetVisitor(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VISITOR_NOT_FOUND")
}

func TestVisitorHandler_GetVisitor_Found(t *testing.T) {
	visitorID := uuid.New()

	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	visitorRepo.EXPECT().FindVisitorByID(mock.Anything, visitorID).Return(&entity.Visitor{
		ID:    visitorID,
		Email: "diner@example.com",
	}, nil)

	handler := &VisitorHandler{
		visitorUC: impl.NewVisitorService(visitorRepo),
		logger:    slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, "/visitors/"+visitorID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(visitorID.String())

	err := handler.GetVisitor(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "diner@example.com")
}
