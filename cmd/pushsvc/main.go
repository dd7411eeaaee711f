package main

import (
	"context"
	"log/slog"
	"os"

	"pushsvc/config"
	"pushsvc/internal/delivery"
	"pushsvc/internal/delivery/api"
	"pushsvc/internal/delivery/api/middleware"
	"pushsvc/internal/delivery/api/router/handler"
	"pushsvc/internal/infra/auth"
	"pushsvc/internal/infra/clock"
	logs "pushsvc/internal/infra/log"
	"pushsvc/internal/infra/persistence/postgres"
	"pushsvc/internal/infra/pubsub"
	"pushsvc/internal/infra/validator"
	"pushsvc/internal/infra/webpush"
	"pushsvc/internal/usecase/impl"

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
		validator.New,
		clock.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSubscriptionRepository,
			postgres.NewPreferenceRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTIdentityProvider,
			webpush.NewTransport,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRateLimiter,
			impl.NewDispatchService,
			impl.NewCleanupService,
			impl.NewSubscriptionService,
			impl.NewJobService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewSubscriptionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
					os.Exit(1)
				}
			}
		}()
	}
}
