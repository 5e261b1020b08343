// Package impl contains the implementation of the application's business logic.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"foodcart/config"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/geo"
	"foodcart/internal/domain/repository"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultResolverWorkers = 8

// availabilityService implements the AvailabilityUsecase interface.
type availabilityService struct {
	geoCache       repository.GeoCacheRepository
	geocoder       service.Geocoder
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuRepository
	recorder       service.ResolutionRecorder
	workers        int
	logger         *slog.Logger
}

// AvailabilityServiceParams holds dependencies for AvailabilityService, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	GeoCache       repository.GeoCacheRepository
	Geocoder       service.Geocoder
	OrderRepo      repository.OrderRepository
	RestaurantRepo repository.RestaurantRepository
	MenuRepo       repository.MenuRepository
	Recorder       service.ResolutionRecorder `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAvailabilityService is the constructor for availabilityService.
func NewAvailabilityService(params AvailabilityServiceParams) usecase.AvailabilityUsecase {
	workers := defaultResolverWorkers
	if params.Config != nil && params.Config.Resolver != nil && params.Config.Resolver.Workers > 0 {
		workers = params.Config.Resolver.Workers
	}

	recorder := params.Recorder
	if recorder == nil {
		recorder = service.NopRecorder{}
	}

	return &availabilityService{
		geoCache:       params.GeoCache,
		geocoder:       params.Geocoder,
		orderRepo:      params.OrderRepo,
		restaurantRepo: params.RestaurantRepo,
		menuRepo:       params.MenuRepo,
		recorder:       recorder,
		workers:        workers,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *availabilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveActiveOrders loads the dashboard data set and resolves it as one batch.
func (srv *availabilityService) ResolveActiveOrders(ctx context.Context) (*entity.BatchResolution, error) {
	var (
		orders      []*entity.Order
		restaurants []*entity.Restaurant
		records     []entity.MenuRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = srv.orderRepo.ListActiveOrders(gctx)

		return errors.Wrap(err, "failed to list active orders")
	})
	g.Go(func() (err error) {
		restaurants, err = srv.restaurantRepo.ListRestaurants(gctx)

		return errors.Wrap(err, "failed to list restaurants")
	})
	g.Go(func() (err error) {
		records, err = srv.menuRepo.ListAvailableMenuRecords(gctx)

		return errors.Wrap(err, "failed to list menu records")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return srv.ResolveOrders(ctx, orders, restaurants, entity.NewMenuIndex(records))
}

// ResolveOrders resolves every order of the batch concurrently.
func (srv *availabilityService) ResolveOrders(
	ctx context.Context,
	orders []*entity.Order,
	restaurants []*entity.Restaurant,
	menu *entity.MenuIndex,
) (*entity.BatchResolution, error) {
	start := time.Now()
	logger := srv.log(ctx)

	if menu == nil {
		menu = entity.NewMenuIndex(nil)
	}

	locator := newCoordinateLocator(srv.geoCache, srv.geocoder, srv.recorder, logger)
	b := &batch{
		srv:         srv,
		locator:     locator,
		menu:        menu,
		restaurants: restaurants,
		byID:        make(map[int64]*entity.Restaurant, len(restaurants)),
	}
	for _, restaurant := range restaurants {
		if restaurant != nil {
			b.byID[restaurant.ID] = restaurant
		}
	}
	// Restaurant addresses are only geocoded once an order actually needs ranking.
	b.restaurantCoords = sync.OnceValue(func() map[int64]entity.Coordinate {
		return b.locateRestaurants(ctx)
	})

	resolutions := make([]*entity.OrderResolution, len(orders))

	var g errgroup.Group
	g.SetLimit(srv.workers)
	for i, order := range orders {
		if order == nil {
			continue
		}
		g.Go(func() error {
			resolutions[i] = b.resolveOrder(ctx, order)

			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "order resolution interrupted")
	}

	result := &entity.BatchResolution{
		Resolutions: slices.DeleteFunc(resolutions, func(r *entity.OrderResolution) bool { return r == nil }),
		CacheErr:    locator.CacheErr(),
	}

	srv.report(ctx, logger, result, time.Since(start))

	return result, nil
}

func (srv *availabilityService) report(ctx context.Context, logger *slog.Logger, result *entity.BatchResolution, elapsed time.Duration) {
	counts := make(map[entity.ResolutionStatus]int, 3)
	for _, res := range result.Resolutions {
		counts[res.Status]++
		srv.recorder.ObserveResolution(res.Status)
	}
	srv.recorder.ObserveBatch(len(result.Resolutions), elapsed)

	attrs := []slog.Attr{
		slog.Int("orders", len(result.Resolutions)),
		slog.Int("ranked", counts[entity.ResolutionRanked]),
		slog.Int("unresolvable", counts[entity.ResolutionUnresolvable]),
		slog.Int("manuallyAssigned", counts[entity.ResolutionManuallyAssigned]),
		slog.Duration("elapsed", elapsed),
	}
	if result.CacheErr != nil {
		attrs = append(attrs, slog.String("cacheError", result.CacheErr.Error()))
		logger.LogAttrs(ctx, slog.LevelWarn, "Order batch resolved with geo cache errors", attrs...)

		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "Order batch resolved", attrs...)
}

// batch holds the state shared by the orders of one resolution call.
type batch struct {
	srv              *availabilityService
	locator          *coordinateLocator
	menu             *entity.MenuIndex
	restaurants      []*entity.Restaurant
	byID             map[int64]*entity.Restaurant
	restaurantCoords func() map[int64]entity.Coordinate
}

func (b *batch) resolveOrder(ctx context.Context, order *entity.Order) *entity.OrderResolution {
	res := &entity.OrderResolution{
		Order:      order,
		TotalPrice: order.TotalPrice(),
	}

	if order.IsManuallyAssigned() {
		res.Status = entity.ResolutionManuallyAssigned
		res.AssignedRestaurant = b.assignedRestaurant(*order.AssignedRestaurantID)

		return res
	}

	delivery, ok := b.locator.Locate(ctx, order.DeliveryAddress)
	if !ok {
		res.Status = entity.ResolutionUnresolvable

		return res
	}
	res.DeliveryCoordinate = &delivery

	required := order.RequiredProducts()
	coords := b.restaurantCoords()

	candidates := make([]entity.RankedRestaurant, 0, len(coords))
	for _, restaurant := range b.restaurants {
		if restaurant == nil || !b.menu.CanFulfill(restaurant.ID, required) {
			continue
		}
		coord, ok := coords[restaurant.ID]
		if !ok {
			continue
		}
		candidates = append(candidates, entity.RankedRestaurant{
			Restaurant: *restaurant,
			DistanceKm: geo.Distance(delivery, coord),
		})
	}
	rankCandidates(candidates)

	res.Status = entity.ResolutionRanked
	res.Candidates = candidates

	return res
}

// assignedRestaurant returns the restaurant an order is committed to. An
// assignment outside the loaded restaurant list keeps only its id.
func (b *batch) assignedRestaurant(id int64) *entity.Restaurant {
	if restaurant, ok := b.byID[id]; ok {
		return restaurant
	}

	return &entity.Restaurant{ID: id}
}

func (b *batch) locateRestaurants(ctx context.Context) map[int64]entity.Coordinate {
	var (
		mu     sync.Mutex
		coords = make(map[int64]entity.Coordinate, len(b.byID))
	)

	var g errgroup.Group
	g.SetLimit(b.srv.workers)
	for _, restaurant := range b.byID {
		g.Go(func() error {
			coord, ok := b.locator.Locate(ctx, restaurant.Address)
			if !ok {
				b.locator.logger.DebugContext(ctx, "Restaurant excluded from ranking",
					slog.Int64("restaurantID", restaurant.ID),
					slog.String("reason", "location unknown"),
				)

				return nil
			}

			mu.Lock()
			coords[restaurant.ID] = coord
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	return coords
}

// rankCandidates sorts by distance, then name, then id, so equal inputs always
// produce the same order.
func rankCandidates(candidates []entity.RankedRestaurant) {
	slices.SortStableFunc(candidates, func(a, b entity.RankedRestaurant) int {
		return cmp.Or(
			cmp.Compare(a.DistanceKm, b.DistanceKm),
			strings.Compare(a.Restaurant.Name, b.Restaurant.Name),
			cmp.Compare(a.Restaurant.ID, b.Restaurant.ID),
		)
	})
}
