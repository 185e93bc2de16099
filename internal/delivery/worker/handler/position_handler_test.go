package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newPushContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPositionHandler_HandlePush_InvalidBase64(t *testing.T) {
	handler := &PositionHandler{logger: slog.Default()}

	c, rec := newPushContext(t, `{"message": {"data": "not-base64!!", "messageId": "1"}, "subscription": "sub"}`)

	err := handler.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPositionHandler_HandlePush_InvalidJSONPayload(t *testing.T) {
	handler := &PositionHandler{logger: slog.Default()}

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	c, rec := newPushContext(t, `{"message": {"data": "`+data+`", "messageId": "1"}, "subscription": "sub"}`)

	err := handler.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPositionHandler_HandlePush_UnparsableVisitorIDIsTerminal(t *testing.T) {
	handler := &PositionHandler{logger: slog.Default()}

	data := base64.StdEncoding.EncodeToString([]byte(`{"visitor_id": "not-a-uuid", "latitude": 42.28, "longitude": -83.74}`))
	c, rec := newPushContext(t, `{"message": {"data": "`+data+`", "messageId": "1"}, "subscription": "sub"}`)

	// A 200 acks the message so Pub/Sub will not redeliver a payload that can
	// never be processed.
	err := handler.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRetryableError_Wrapping(t *testing.T) {
	base := errors.New("connection refused")
	wrapped := newRetryableError(base)

	assert.True(t, isRetryableError(wrapped))
	assert.False(t, isRetryableError(base))
	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "retryable")
}
