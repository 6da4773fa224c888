package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/worker"
	"portal/internal/delivery/worker/handler"
	"portal/internal/domain/service"
	logs "portal/internal/infra/log"
	"portal/internal/infra/notification"
	"portal/internal/infra/persistence/postgres"
	"portal/internal/realtime"
	"portal/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newFirebaseSink,
			newSMTPSink,
			newSMSSink,
			// The worker has no websocket sessions; its hub only satisfies the
			// fan-out layer's LivePublisher port and never has anyone online.
			realtime.NewHub,
			func(hub *realtime.Hub) service.LivePublisher { return hub },
		),
	)
}

// newFirebaseSink creates a Firebase push sink with dependency injection
func newFirebaseSink(ctx context.Context, cfg *config.Config) (service.PushSink, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push notifications are optional
	}

	sink, err := notification.NewFirebaseSink(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase sink: %w", err)
	}

	return sink, nil
}

// newSMTPSink creates an email sink with dependency injection
func newSMTPSink(cfg *config.Config) service.EmailSink {
	if cfg.SMTP == nil {
		return nil // Email notifications are optional
	}

	return notification.NewSMTPSink(cfg.SMTP)
}

// newSMSSink creates an SMS sink with dependency injection
func newSMSSink(cfg *config.Config) service.SMSSink {
	if cfg.SMS == nil {
		return nil // SMS notifications are optional
	}

	return notification.NewHTTPSMSSink(cfg.SMS)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFanoutService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
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
					os.Exit(1)
				}
			}
		}()
	}
}
