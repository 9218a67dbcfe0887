package main

import (
	"context"
	"log/slog"

	"crossing/config"
	"crossing/internal/delivery"
	"crossing/internal/delivery/api"
	"crossing/internal/delivery/api/router/handler"
	"crossing/internal/delivery/scheduler"
	"crossing/internal/domain/service"
	rediscache "crossing/internal/infra/cache/redis"
	"crossing/internal/infra/clock"
	"crossing/internal/infra/epoch"
	logs "crossing/internal/infra/log"
	"crossing/internal/infra/persistence/postgres"
	"crossing/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
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
	return fx.Options(
		clock.Module,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			rediscache.New,
			fx.Annotate(
				epoch.New,
				fx.As(new(service.EpochState)),
			),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAddressRepository,
			postgres.NewGeoPointRepository,
			postgres.NewMatchRecordRepository,
			postgres.NewPairAggregateRepository,
			postgres.NewRankingRepository,
			postgres.NewHiddenSnapshotRepository,
			postgres.NewTransactionManager,
			rediscache.NewGroupIndex,
		),
	)
}

// injectService provides the adapters over data owned by neighbouring domains.
func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileService,
			postgres.NewBlockService,
			postgres.NewHideService,
			postgres.NewEntitlementService,
			postgres.NewGeocoder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocationService,
			impl.NewMatchingService,
			impl.NewRankingService,
			impl.NewHiddenHistoryService,
			impl.NewPairService,
			impl.NewPrivacyService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewCrossingHandler,
			handler.NewPrivacyHandler,
			handler.NewInternalHandler,
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
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				params.Logger.Error("Delivery stopped with error", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
