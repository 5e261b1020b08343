package main

import (
	"context"
	"log/slog"
	"os"

	"foodcart/config"
	"foodcart/internal/delivery"
	"foodcart/internal/delivery/http"
	"foodcart/internal/delivery/http/middleware"
	"foodcart/internal/delivery/http/router/handler"
	"foodcart/internal/domain/service"
	"foodcart/internal/infra/geocache"
	"foodcart/internal/infra/geocoder"
	logs "foodcart/internal/infra/log"
	"foodcart/internal/infra/metrics"
	"foodcart/internal/infra/persistence/postgres"
	"foodcart/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
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
		fx.Annotate(
			newMetricsRegistry,
			fx.As(new(prometheus.Registerer)),
		),
	)
}

// newMetricsRegistry creates the registry served on /metrics, with runtime
// collectors next to the resolver metrics.
func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
			postgres.NewRestaurantRepository,
			postgres.NewMenuRepository,
			postgres.NewTransactionManager,
			geocache.NewStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocoder.NewYandexGeocoder,
			fx.Annotate(
				metrics.NewResolverCollector,
				fx.As(fx.Self()),
				fx.As(new(service.ResolutionRecorder)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAvailabilityService,
			impl.NewCatalogService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewCatalogHandler,
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
