package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"nearbite/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultDispatchTimeout = 10 * time.Second

// httpDispatcher implements DeliveryDispatcher against a generic HTTP
// delivery gateway. The gateway owns the actual SMS/email provider
// integrations; this service only hands over rendered messages.
type httpDispatcher struct {
	endpoint   string
	authToken  string
	httpClient *http.Client
	logger     *slog.Logger
}

// gatewayResponse is the acceptance receipt returned by the gateway.
type gatewayResponse struct {
	MessageID string `json:"message_id"`
}

// NewHTTPDispatcher creates a dispatcher that POSTs send requests to a gateway
func NewHTTPDispatcher(endpoint, authToken string, timeout time.Duration, logger *slog.Logger) service.DeliveryDispatcher {
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}

	return &httpDispatcher{
		endpoint:  endpoint,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Dispatch submits a single send request to the gateway
func (d *httpDispatcher) Dispatch(ctx context.Context, sendReq *service.SendRequest) (*service.SendResult, error) {
	body, err := json.Marshal(sendReq)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+d.authToken)
	}

	d.logger.Info("[HTTPDispatch] Submitting notification",
		slog.String("channel", string(sendReq.Channel)),
		slog.String("location_id", sendReq.LocationID.String()),
		slog.String("visitor_id", sendReq.VisitorID.String()),
	)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("gateway returned non-success status: %d", resp.StatusCode)
	}

	var receipt gatewayResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&receipt); err != nil {
		// An empty or malformed receipt body still counts as accepted.
		return &service.SendResult{}, nil
	}

	return &service.SendResult{ProviderMessageID: receipt.MessageID}, nil
}
