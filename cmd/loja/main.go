package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"loja/config"
	"loja/internal/delivery"
	"loja/internal/delivery/http"
	"loja/internal/delivery/http/middleware"
	"loja/internal/delivery/http/router/handler"
	"loja/internal/domain/repository"
	"loja/internal/domain/service"
	"loja/internal/infra/auth"
	"loja/internal/infra/cache"
	"loja/internal/infra/firebase"
	logs "loja/internal/infra/log"
	"loja/internal/infra/persistence/rtdb"
	"loja/internal/infra/pubsub"
	"loja/internal/infra/qrcode"
	"loja/internal/usecase"
	"loja/internal/usecase/impl"

	"go.uber.org/fx"
)

const defaultDashboardRefresh = 30 * time.Second

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
		injectMiddleware(),
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
		firebase.NewApp,
		firebase.NewDatabaseClient,
		firebase.NewAuthClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			rtdb.NewStoreRepository,
			rtdb.NewProductRepository,
			rtdb.NewSKURepository,
			rtdb.NewSaleRepository,
			rtdb.NewStockMovementRepository,
			rtdb.NewSalesAnalysisRepository,
			newSnapshotStore,
		),
	)
}

// newSnapshotStore builds the Redis-backed snapshot store. Redis is optional
// for the API server; without it the dashboard simply has no cold-start
// fallback.
func newSnapshotStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.SnapshotStore, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, dashboard snapshot fallback disabled")

		return nil, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return cache.NewSnapshotStore(client), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewPassphraseGate,
			firebase.NewIdentityProvider,
			newEventPublisher,
			newQRCodeService,
		),
	)
}

// newEventPublisher decorates the configured publisher so every record
// mutation also refreshes the in-process dashboard mirrors, instead of
// waiting for the next poll.
func newEventPublisher(params pubsub.PublisherParams, dashboard *impl.DashboardService) (service.EventPublisher, error) {
	base, err := pubsub.NewEventPublisher(params)
	if err != nil {
		return nil, err
	}

	return pubsub.NewInvalidatingPublisher(base, dashboard), nil
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
			impl.NewAuthService,
			impl.NewStoreService,
			impl.NewProductService,
			impl.NewInventoryService,
			impl.NewSalesService,
			impl.NewStockReportService,
			impl.NewSalesReportService,
			newDashboardService,
			func(svc *impl.DashboardService) usecase.DashboardUsecase { return svc },
		),
	)
}

// dashboardParams holds dependencies for the dashboard service
type dashboardParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	SKURepo     repository.SKURepository
	SaleRepo    repository.SaleRepository
	Snapshots   repository.SnapshotStore
}

// newDashboardService wires the dashboard mirrors into the Fx lifecycle so
// their refresh goroutines stop on shutdown.
func newDashboardService(params dashboardParams) *impl.DashboardService {
	interval := defaultDashboardRefresh
	if params.Cfg.Dashboard != nil && params.Cfg.Dashboard.RefreshInterval > 0 {
		interval = params.Cfg.Dashboard.RefreshInterval
	}

	svc := impl.NewDashboardService(
		params.Logger,
		params.StoreRepo,
		params.ProductRepo,
		params.SKURepo,
		params.SaleRepo,
		params.Snapshots,
		interval,
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			svc.Close()

			return nil
		},
	})

	return svc
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
			handler.NewAuthHandler,
			handler.NewStoreHandler,
			handler.NewProductHandler,
			handler.NewSKUHandler,
			handler.NewSaleHandler,
			handler.NewStockReportHandler,
			handler.NewSalesReportHandler,
			handler.NewDashboardHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
