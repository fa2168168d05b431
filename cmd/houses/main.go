package main

import (
	"context"
	"log/slog"
	"os"

	"houses/config"
	"houses/internal/delivery"
	"houses/internal/delivery/api"
	"houses/internal/delivery/api/operation"
	"houses/internal/delivery/api/router/handler"
	"houses/internal/delivery/api/validator"
	"houses/internal/delivery/middleware"
	"houses/internal/domain/service"
	"houses/internal/infra/auth"
	"houses/internal/infra/cache"
	logs "houses/internal/infra/log"
	"houses/internal/infra/metrics"
	"houses/internal/infra/persistence/postgres"
	"houses/internal/infra/pubsub"
	"houses/internal/infra/qrcode"
	"houses/internal/infra/upload"
	"houses/internal/usecase/impl"

	"github.com/labstack/echo/v4"
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
		cache.NewRedisClient,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewHouseRepository,
		),
		// Read-through cache in front of the store when Redis is configured
		fx.Decorate(cache.DecorateHouseRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			upload.NewCloudinarySigner,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHouseService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewIdentityMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				validator.New,
				fx.As(new(echo.Validator)),
			),
			operation.NewDispatcher,
			handler.NewOperationHandler,
			handler.NewListingHandler,
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
				os.Exit(1)
			}
		}()
	}
}
