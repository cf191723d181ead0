package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"dispatch/config"
	"dispatch/internal/delivery"
	"dispatch/internal/delivery/api"
	"dispatch/internal/delivery/api/middleware"
	"dispatch/internal/delivery/api/router/handler"
	"dispatch/internal/delivery/mqtt"
	"dispatch/internal/domain/lifecycle"
	"dispatch/internal/domain/service"
	"dispatch/internal/infra/auth"
	"dispatch/internal/infra/cache"
	"dispatch/internal/infra/geocode"
	logs "dispatch/internal/infra/log"
	"dispatch/internal/infra/metrics"
	"dispatch/internal/infra/persistence/postgres"
	"dispatch/internal/infra/pubsub"
	"dispatch/internal/infra/qrcode"
	"dispatch/internal/infra/spreadsheet"
	"dispatch/internal/usecase"
	"dispatch/internal/usecase/impl"

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
			warmSubscriberIndex,
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
		cache.NewRedisClient,
		metrics.New,
		func(m *metrics.Metrics) service.MetricsRecorder { return m },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewSubscriberRepository,
			postgres.NewTaskRepository,
			postgres.NewAssignmentRepository,
			postgres.NewExecutorRepository,
			postgres.NewWorkTimeRepository,
			postgres.NewBeaconRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewTelegramVerifier,
			geocode.NewGeocoder,
			pubsub.NewEventPublisher,
			spreadsheet.NewTimesheetExporter,
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
			impl.NewSubscriberService,
			impl.NewTaskService,
			impl.NewExecutorService,
			impl.NewWorkTimeService,
			impl.NewPlaybackService,
			impl.NewAnalyticsService,
			impl.NewAuthService,
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
			handler.NewAuthHandler,
			handler.NewSubscriberHandler,
			handler.NewTaskHandler,
			handler.NewExecutorHandler,
			handler.NewWorkTimeHandler,
			handler.NewPlaybackHandler,
			handler.NewAnalyticsHandler,
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
			fx.Annotate(
				mqtt.NewListener,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warmSubscriberIndex builds the address index before traffic arrives. A
// failure is not fatal: reads rebuild the index lazily.
func warmSubscriberIndex(lc fx.Lifecycle, subscriberUC usecase.SubscriberUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := subscriberUC.Rebuild(ctx); err != nil {
				logger.Warn("Subscriber index warm-up failed", slog.Any("error", err))
			}

			return nil
		},
	})
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
