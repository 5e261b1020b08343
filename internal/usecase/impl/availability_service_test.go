package impl

import (
	"context"
	"testing"

	"foodcart/config"
	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"
	"foodcart/internal/infra/geocache"
	mockRepo "foodcart/internal/mocks/repository"
	mockService "foodcart/internal/mocks/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	productA int64 = 1
	productB int64 = 2
	productC int64 = 3
)

var (
	deliveryPoint = entity.Coordinate{Lon: 0, Lat: 0}
	// Roughly 2 km and 5 km east of deliveryPoint along the equator.
	pointTwoKm  = entity.Coordinate{Lon: 0.017966, Lat: 0}
	pointFiveKm = entity.Coordinate{Lon: 0.044916, Lat: 0}
	pointFarOff = entity.Coordinate{Lon: 0.1, Lat: 0}
)

type availabilityFixture struct {
	cache    *geocache.MemoryStore
	geocoder *mockService.MockGeocoder
	orders   *mockRepo.MockOrderRepository
	rests    *mockRepo.MockRestaurantRepository
	menus    *mockRepo.MockMenuRepository
	service  *availabilityService
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	f := &availabilityFixture{
		cache:    geocache.NewMemoryStore(),
		geocoder: mockService.NewMockGeocoder(t),
		orders:   mockRepo.NewMockOrderRepository(t),
		rests:    mockRepo.NewMockRestaurantRepository(t),
		menus:    mockRepo.NewMockMenuRepository(t),
	}
	f.service = NewAvailabilityService(AvailabilityServiceParams{
		GeoCache:       f.cache,
		Geocoder:       f.geocoder,
		OrderRepo:      f.orders,
		RestaurantRepo: f.rests,
		MenuRepo:       f.menus,
		Config:         &config.Config{Resolver: &config.ResolverConfig{Workers: 4}},
		Logger:         newDiscardLogger(),
	}).(*availabilityService)

	return f
}

func (f *availabilityFixture) expectGeocode(address string, coord entity.Coordinate) {
	f.geocoder.EXPECT().Resolve(mock.Anything, address).Return(coord, nil).Once()
}

func TestAvailabilityService_RanksOnlyRestaurantsOfferingEveryProduct(t *testing.T) {
	f := newAvailabilityFixture(t)
	ctx := context.Background()

	restaurants := []*entity.Restaurant{
		{ID: 10, Name: "X", Address: "x street 1"},
		{ID: 20, Name: "Y", Address: "y street 1"},
		{ID: 30, Name: "Z", Address: "z street 1"},
	}
	menu := menuOf(map[int64][]int64{
		10: {productA, productB, productC},
		20: {productA},
		30: {productA, productB},
	})

	f.expectGeocode("Delivery 1", deliveryPoint)
	f.expectGeocode("x street 1", pointTwoKm)
	f.expectGeocode("y street 1", pointFiveKm)
	f.expectGeocode("z street 1", pointFiveKm)

	result, err := f.service.ResolveOrders(ctx, []*entity.Order{newOrder(1, "Delivery 1", productA, productB)}, restaurants, menu)
	require.NoError(t, err)
	require.NoError(t, result.CacheErr)
	require.Len(t, result.Resolutions, 1)

	res := result.Resolutions[0]
	assert.Equal(t, entity.ResolutionRanked, res.Status)
	assert.Equal(t, []string{"X", "Z"}, candidateNames(res))
	assert.InDelta(t, 2.0, res.Candidates[0].DistanceKm, 0.01)
	assert.InDelta(t, 5.0, res.Candidates[1].DistanceKm, 0.01)
	assert.Equal(t, deliveryPoint, *res.DeliveryCoordinate)
	assert.True(t, decimal.RequireFromString("200").Equal(res.TotalPrice))
}

func TestAvailabilityService_UnresolvableDeliveryAddress(t *testing.T) {
	f := newAvailabilityFixture(t)

	restaurants := []*entity.Restaurant{{ID: 10, Name: "X", Address: "x street 1"}}
	f.geocoder.EXPECT().Resolve(mock.Anything, "Nowhere 0").Return(entity.Coordinate{}, service.ErrAddressNotFound).Once()

	result, err := f.service.ResolveOrders(context.Background(),
		[]*entity.Order{newOrder(1, "Nowhere 0", productA)}, restaurants, menuOf(map[int64][]int64{10: {productA}}))
	require.NoError(t, err)

	res := result.Resolutions[0]
	assert.Equal(t, entity.ResolutionUnresolvable, res.Status)
	assert.Nil(t, res.DeliveryCoordinate)
	assert.Empty(t, res.Candidates)
	assert.False(t, res.HasCandidates())
	// Restaurants are never geocoded when no order needs ranking.
	f.geocoder.AssertNumberOfCalls(t, "Resolve", 1)
}

func TestAvailabilityService_TransportErrorIsUnresolvableNotFatal(t *testing.T) {
	f := newAvailabilityFixture(t)

	transportErr := &service.TransportError{StatusCode: 503, Err: errors.New("unavailable")}
	f.geocoder.EXPECT().Resolve(mock.Anything, "Delivery 1").Return(entity.Coordinate{}, transportErr).Once()

	result, err := f.service.ResolveOrders(context.Background(),
		[]*entity.Order{newOrder(1, "Delivery 1", productA)}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ResolutionUnresolvable, result.Resolutions[0].Status)
}

func TestAvailabilityService_NoFulfillingRestaurantIsEmptyRanking(t *testing.T) {
	f := newAvailabilityFixture(t)

	restaurants := []*entity.Restaurant{{ID: 10, Name: "X", Address: "x street 1"}}
	f.expectGeocode("Delivery 1", deliveryPoint)
	f.expectGeocode("x street 1", pointTwoKm)

	result, err := f.service.ResolveOrders(context.Background(),
		[]*entity.Order{newOrder(1, "Delivery 1", productC)}, restaurants, menuOf(map[int64][]int64{10: {productA}}))
	require.NoError(t, err)

	res := result.Resolutions[0]
	assert.Equal(t, entity.ResolutionRanked, res.Status)
	assert.NotNil(t, res.Candidates)
	assert.Empty(t, res.Candidates)
	assert.False(t, res.HasCandidates())
}

func TestAvailabilityService_ManualAssignmentSkipsGeocoding(t *testing.T) {
	f := newAvailabilityFixture(t)

	restaurants := []*entity.Restaurant{
		{ID: 10, Name: "X", Address: "x street 1"},
		{ID: 20, Name: "Y", Address: "y street 1"},
	}
	order := newOrder(1, "Delivery 1", productA)
	assigned := int64(20)
	order.AssignedRestaurantID = &assigned

	result, err := f.service.ResolveOrders(context.Background(),
		[]*entity.Order{order}, restaurants, menuOf(map[int64][]int64{10: {productA}}))
	require.NoError(t, err)

	res := result.Resolutions[0]
	assert.Equal(t, entity.ResolutionManuallyAssigned, res.Status)
	require.NotNil(t, res.AssignedRestaurant)
	assert.Equal(t, "Y", res.AssignedRestaurant.Name)
	assert.Nil(t, res.DeliveryCoordinate)
	assert.Empty(t, res.Candidates)
	f.geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestAvailabilityService_ManualAssignmentToUnknownRestaurantKeepsID(t *testing.T) {
	f := newAvailabilityFixture(t)

	order := newOrder(1, "Delivery 1", productA)
	assigned := int64(99)
	order.AssignedRestaurantID = &assigned

	result, err := f.service.ResolveOrders(context.Background(), []*entity.Order{order}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(99), result.Resolutions[0].AssignedRestaurant.ID)
}

func TestAvailabilityService_SharedRestaurantGeocodedOncePerBatch(t *testing.T) {
	f := newAvailabilityFixture(t)

	restaurants := []*entity.Restaurant{{ID: 10, Name: "X", Address: "x street 1"}}
	menu := menuOf(map[int64][]int64{10: {productA, productB}})

	f.expectGeocode("Delivery 1", deliveryPoint)
	f.expectGeocode("Delivery 2", pointFiveKm)
	f.expectGeocode("x street 1", pointTwoKm)

	orders := []*entity.Order{
		newOrder(1, "Delivery 1", productA),
		newOrder(2, "Delivery 2", productB),
	}

	result, err := f.service.ResolveOrders(context.Background(), orders, restaurants, menu)
	require.NoError(t, err)
	require.Len(t, result.Resolutions, 2)
	assert.Equal(t, int64(1), result.Resolutions[0].Order.ID)
	assert.Equal(t, int64(2), result.Resolutions[1].Order.ID)
	for _, res := range result.Resolutions {
		assert.Equal(t, []string{"X"}, candidateNames(res))
	}
	f.geocoder.AssertNumberOfCalls(t, "Resolve", 3)
}

func TestAvailabilityService_SameDeliveryAddressInBatchGeocodedOnce(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.geocoder.EXPECT().Resolve(mock.Anything, mock.Anything).Return(entity.Coordinate{}, service.ErrAddressNotFound).Once()

	orders := []*entity.Order{
		newOrder(1, "Lost street 5", productA),
		newOrder(2, "  LOST STREET 5 ", productA),
		newOrder(3, "lost street 5", productA),
	}

	result, err := f.service.ResolveOrders(context.Background(), orders, nil, nil)
	require.NoError(t, err)
	for _, res := range result.Resolutions {
		assert.Equal(t, entity.ResolutionUnresolvable, res.Status)
	}
}

func TestAvailabilityService_CacheHitIssuesNoExternalCalls(t *testing.T) {
	f := newAvailabilityFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cache.Store(ctx, entity.NewAddress("Delivery 1"), deliveryPoint))
	require.NoError(t, f.cache.Store(ctx, entity.NewAddress("x street 1"), pointTwoKm))

	restaurants := []*entity.Restaurant{{ID: 10, Name: "X", Address: "X Street 1"}}

	result, err := f.service.ResolveOrders(ctx,
		[]*entity.Order{newOrder(1, " delivery 1", productA)}, restaurants, menuOf(map[int64][]int64{10: {productA}}))
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, candidateNames(result.Resolutions[0]))
	f.geocoder.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestAvailabilityService_SecondBatchUsesCacheAndIsIdempotent(t *testing.T) {
	f := newAvailabilityFixture(t)
	ctx := context.Background()

	restaurants := []*entity.Restaurant{
		{ID: 10, Name: "X", Address: "x street 1"},
		{ID: 30, Name: "Z", Address: "z street 1"},
	}
	menu := menuOf(map[int64][]int64{10: {productA}, 30: {productA}})
	orders := []*entity.Order{newOrder(1, "Delivery 1", productA)}

	f.expectGeocode("Delivery 1", deliveryPoint)
	f.expectGeocode("x street 1", pointFiveKm)
	f.expectGeocode("z street 1", pointTwoKm)

	first, err := f.service.ResolveOrders(ctx, orders, restaurants, menu)
	require.NoError(t, err)
	second, err := f.service.ResolveOrders(ctx, orders, restaurants, menu)
	require.NoError(t, err)

	assert.Equal(t, first.Resolutions[0].Candidates, second.Resolutions[0].Candidates)
	assert.Equal(t, []string{"Z", "X"}, candidateNames(second.Resolutions[0]))
	assert.Equal(t, 3, f.cache.Len())
	f.geocoder.AssertNumberOfCalls(t, "Resolve", 3)
}

func TestAvailabilityService_EqualDistancesBrokenByName(t *testing.T) {
	f := newAvailabilityFixture(t)

	restaurants := []*entity.Restaurant{
		{ID: 3, Name: "Charlie", Address: "Food court 1"},
		{ID: 1, Name: "Alpha", Address: "food court 1"},
		{ID: 2, Name: "Bravo", Address: "FOOD COURT 1"},
		{ID: 4, Name: "Alpha", Address: "Food Court 1"},
		{ID: 5, Name: "Aardvark", Address: "far away"},
	}
	menu := menuOf(map[int64][]int64{1: {productA}, 2: {productA}, 3: {productA}, 4: {productA}, 5: {productA}})

	f.expectGeocode("Delivery 1", deliveryPoint)
	f.geocoder.EXPECT().Resolve(mock.Anything, mock.MatchedBy(func(address string) bool {
		return entity.NewAddress(address) == entity.NewAddress("food court 1")
	})).Return(pointTwoKm, nil).Once()
	f.expectGeocode("far away", pointFarOff)

	result, err := f.service.ResolveOrders(context.Background(),
		[]*entity.Order{newOrder(1, "Delivery 1", productA)}, restaurants, menu)
	require.NoError(t, err)

	res := result.Resolutions[0]
	assert.Equal(t, []string{"Alpha", "Alpha", "Bravo", "Charlie", "Aardvark"}, candidateNames(res))
	assert.Equal(t, int64(1), res.Candidates[0].Restaurant.ID)
	assert.Equal(t, int64(4), res.Candidates[1].Restaurant.ID)
}

func TestAvailabilityService_RestaurantWithoutLocationIsExcluded(t *testing.T) {
	f := newAvailabilityFixture(t)

	restaurants := []*entity.Restaurant{
		{ID: 10, Name: "X", Address: "x street 1"},
		{ID: 20, Name: "Y", Address: "y street 1"},
		{ID: 30, Name: "Blank", Address: "   "},
	}
	menu := menuOf(map[int64][]int64{10: {productA}, 20: {productA}, 30: {productA}})

	f.expectGeocode("Delivery 1", deliveryPoint)
	f.expectGeocode("x street 1", pointTwoKm)
	f.geocoder.EXPECT().Resolve(mock.Anything, "y street 1").
		Return(entity.Coordinate{}, &service.TransportError{Err: context.DeadlineExceeded}).Once()

	result, err := f.service.ResolveOrders(context.Background(),
		[]*entity.Order{newOrder(1, "Delivery 1", productA)}, restaurants, menu)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, candidateNames(result.Resolutions[0]))
}

func TestAvailabilityService_CacheWriteFailureStillReturnsCoordinate(t *testing.T) {
	cache := mockRepo.NewMockGeoCacheRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	srv := NewAvailabilityService(AvailabilityServiceParams{
		GeoCache: cache,
		Geocoder: geocoder,
		Logger:   newDiscardLogger(),
	})

	restaurants := []*entity.Restaurant{{ID: 10, Name: "X", Address: "x street 1"}}

	cache.EXPECT().Lookup(mock.Anything, entity.NewAddress("Delivery 1")).Return(entity.Coordinate{}, false, nil).Once()
	cache.EXPECT().Lookup(mock.Anything, entity.NewAddress("x street 1")).Return(pointTwoKm, true, nil).Once()
	geocoder.EXPECT().Resolve(mock.Anything, "Delivery 1").Return(deliveryPoint, nil).Once()
	cache.EXPECT().Store(mock.Anything, entity.NewAddress("Delivery 1"), deliveryPoint).Return(errors.New("disk full")).Once()

	result, err := srv.ResolveOrders(context.Background(),
		[]*entity.Order{newOrder(1, "Delivery 1", productA)}, restaurants, menuOf(map[int64][]int64{10: {productA}}))
	require.NoError(t, err)

	assert.Equal(t, []string{"X"}, candidateNames(result.Resolutions[0]))
	require.Error(t, result.CacheErr)
	assert.Contains(t, result.CacheErr.Error(), "disk full")
}

func TestAvailabilityService_CacheReadFailureFallsBackToGeocoder(t *testing.T) {
	cache := mockRepo.NewMockGeoCacheRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	srv := NewAvailabilityService(AvailabilityServiceParams{
		GeoCache: cache,
		Geocoder: geocoder,
		Logger:   newDiscardLogger(),
	})

	cache.EXPECT().Lookup(mock.Anything, entity.NewAddress("Delivery 1")).
		Return(entity.Coordinate{}, false, errors.New("connection reset")).Once()
	geocoder.EXPECT().Resolve(mock.Anything, "Delivery 1").Return(deliveryPoint, nil).Once()
	cache.EXPECT().Store(mock.Anything, entity.NewAddress("Delivery 1"), deliveryPoint).Return(nil).Once()

	result, err := srv.ResolveOrders(context.Background(),
		[]*entity.Order{newOrder(1, "Delivery 1", productA)}, nil, nil)
	require.NoError(t, err)

	res := result.Resolutions[0]
	assert.Equal(t, entity.ResolutionRanked, res.Status)
	assert.Empty(t, res.Candidates)
	assert.ErrorContains(t, result.CacheErr, "connection reset")
}

func TestAvailabilityService_CancelledContext(t *testing.T) {
	f := newAvailabilityFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.geocoder.EXPECT().Resolve(mock.Anything, "Delivery 1").
		Return(entity.Coordinate{}, &service.TransportError{Err: context.Canceled}).Maybe()

	result, err := f.service.ResolveOrders(ctx, []*entity.Order{newOrder(1, "Delivery 1", productA)}, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestAvailabilityService_ResolveActiveOrders(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.orders.EXPECT().ListActiveOrders(mock.Anything).
		Return([]*entity.Order{newOrder(1, "Delivery 1", productA)}, nil).Once()
	f.rests.EXPECT().ListRestaurants(mock.Anything).
		Return([]*entity.Restaurant{{ID: 10, Name: "X", Address: "x street 1"}}, nil).Once()
	f.menus.EXPECT().ListAvailableMenuRecords(mock.Anything).
		Return([]entity.MenuRecord{{RestaurantID: 10, ProductID: productA, Available: true}}, nil).Once()
	f.expectGeocode("Delivery 1", deliveryPoint)
	f.expectGeocode("x street 1", pointTwoKm)

	result, err := f.service.ResolveActiveOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Resolutions, 1)
	assert.Equal(t, []string{"X"}, candidateNames(result.Resolutions[0]))
}

func TestAvailabilityService_ResolveActiveOrders_RepositoryError(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.orders.EXPECT().ListActiveOrders(mock.Anything).Return(nil, errors.New("db down")).Once()
	f.rests.EXPECT().ListRestaurants(mock.Anything).Return(nil, nil).Maybe()
	f.menus.EXPECT().ListAvailableMenuRecords(mock.Anything).Return(nil, nil).Maybe()

	result, err := f.service.ResolveActiveOrders(context.Background())
	assert.ErrorContains(t, err, "db down")
	assert.Nil(t, result)
}

func TestRankCandidates(t *testing.T) {
	candidates := []entity.RankedRestaurant{
		{Restaurant: entity.Restaurant{ID: 2, Name: "b"}, DistanceKm: 1},
		{Restaurant: entity.Restaurant{ID: 1, Name: "c"}, DistanceKm: 0.5},
		{Restaurant: entity.Restaurant{ID: 3, Name: "a"}, DistanceKm: 1},
	}

	rankCandidates(candidates)

	assert.Equal(t, int64(1), candidates[0].Restaurant.ID)
	assert.Equal(t, int64(3), candidates[1].Restaurant.ID)
	assert.Equal(t, int64(2), candidates[2].Restaurant.ID)
}
