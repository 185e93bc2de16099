package main

import (
	"context"
	"log/slog"
	"os"

	"nearbite/config"
	"nearbite/internal/delivery"
	"nearbite/internal/delivery/http"
	"nearbite/internal/delivery/http/middleware"
	"nearbite/internal/delivery/http/router/handler"
	"nearbite/internal/domain/service"
	"nearbite/internal/infra/auth"
	"nearbite/internal/infra/dispatch"
	logs "nearbite/internal/infra/log"
	"nearbite/internal/infra/persistence/postgres"
	"nearbite/internal/infra/pubsub"
	"nearbite/internal/infra/qrcode"
	"nearbite/internal/infra/template"
	"nearbite/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLocationRepository,
			postgres.NewGeofenceRepository,
			postgres.NewAutomationRepository,
			postgres.NewEventRepository,
			postgres.NewCooldownRepository,
			postgres.NewVisitorRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			template.NewRenderer,
			dispatch.NewDeliveryDispatcher,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewAutomationService,
			impl.NewEventService,
			impl.NewVisitorService,
			impl.NewPolicyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewTestHandler,
			handler.NewAutomationHandler,
			handler.NewEventHandler,
			handler.NewVisitorHandler,
			handler.NewPositionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
