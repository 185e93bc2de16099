// Package dispatch implements delivery providers for rendered notifications.
package dispatch

import (
	"context"
	"log/slog"

	"nearbite/config"
	"nearbite/internal/domain/constants"
	"nearbite/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopDispatcher accepts every send without delivering anything. Used in
// tests and local development without a gateway.
type noopDispatcher struct {
	logger *slog.Logger
}

func (d *noopDispatcher) Dispatch(ctx context.Context, req *service.SendRequest) (*service.SendResult, error) {
	d.logger.Debug("[NoopDispatch] Dropping notification",
		slog.String("channel", string(req.Channel)),
		slog.String("location_id", req.LocationID.String()),
	)

	return &service.SendResult{}, nil
}

// DispatcherParams holds dependencies for DeliveryDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDeliveryDispatcher creates a DeliveryDispatcher based on configuration
func NewDeliveryDispatcher(params DispatcherParams) (service.DeliveryDispatcher, error) {
	cfg := params.Config.Dispatch
	logger := params.Logger

	// If dispatch is not configured, drop sends instead of failing evaluations
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.DispatchProviderNoop {
		logger.Info("Dispatch not configured, using no-op dispatcher")

		return &noopDispatcher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.DispatchProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http provider")
		}
		logger.Info("Using HTTP delivery gateway",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewHTTPDispatcher(cfg.Endpoint, cfg.AuthToken, cfg.Timeout, logger), nil

	case constants.DispatchProviderFCM:
		if params.Config.Firebase == nil || params.Config.Firebase.CredentialsPath == "" {
			return nil, errors.New("firebase credentials are required for fcm provider")
		}
		logger.Info("Using FCM dispatcher",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return NewFCMDispatcher(params.Ctx, params.Config.Firebase.CredentialsPath)

	default:
		return nil, errors.Errorf("unknown dispatch provider: %s", cfg.Provider)
	}
}

// Module provides the dispatch FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDeliveryDispatcher),
)
