package main

import (
	"context"
	"log/slog"

	"nearbite/config"
	"nearbite/internal/delivery"
	"nearbite/internal/delivery/worker"
	"nearbite/internal/delivery/worker/handler"
	"nearbite/internal/infra/dispatch"
	logs "nearbite/internal/infra/log"
	"nearbite/internal/infra/persistence/postgres"
	"nearbite/internal/infra/pubsub"
	"nearbite/internal/infra/template"
	"nearbite/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
			template.NewRenderer,
			dispatch.NewDeliveryDispatcher,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPolicyService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPositionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				}
			}
		}()
	}
}
