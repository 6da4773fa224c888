package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/http"
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"
	"portal/internal/domain/service"
	"portal/internal/infra/auth"
	logs "portal/internal/infra/log"
	"portal/internal/infra/notification"
	"portal/internal/infra/persistence/postgres"
	"portal/internal/infra/pubsub"
	"portal/internal/infra/qrcode"
	"portal/internal/infra/storage"
	"portal/internal/realtime"
	"portal/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			storage.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewConversationRepository,
			postgres.NewMessageRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newFirebaseSink,
			newSMTPSink,
			newSMSSink,
			newQRCodeService,
			realtime.NewHub,
			// The fan-out layer sees the hub through its LivePublisher port;
			// the websocket handler keeps the concrete type for session wiring.
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
			impl.NewUserService,
			impl.NewConversationService,
			impl.NewMessageService,
			impl.NewNotificationService,
			impl.NewFanoutService,
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
			handler.NewUserHandler,
			handler.NewConversationHandler,
			handler.NewMessageHandler,
			handler.NewNotificationHandler,
			handler.NewWSHandler,
			handler.NewTestHandler,
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
