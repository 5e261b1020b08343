package impl

import (
	"context"
	"testing"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
	mockRepo "foodcart/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListRestaurants(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	service := NewCatalogService(restaurantRepo, menuRepo)

	ctx := context.Background()
	expected := []*entity.Restaurant{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo"}}
	restaurantRepo.EXPECT().ListRestaurants(ctx).Return(expected, nil)

	restaurants, err := service.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, restaurants)
}

func TestCatalogService_ListRestaurants_Error(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	service := NewCatalogService(restaurantRepo, mockRepo.NewMockMenuRepository(t))

	restaurantRepo.EXPECT().ListRestaurants(mock.Anything).Return(nil, errors.New("db down"))

	restaurants, err := service.ListRestaurants(context.Background())
	assert.ErrorContains(t, err, "db down")
	assert.Nil(t, restaurants)
}

func TestCatalogService_ProductAvailability(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	service := NewCatalogService(restaurantRepo, menuRepo)

	restaurants := []*entity.Restaurant{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Bravo"}}
	products := []*entity.Product{{ID: 10, Name: "Burger"}, {ID: 11, Name: "Fries"}, {ID: 12, Name: "Shake"}}

	restaurantRepo.EXPECT().ListRestaurants(mock.Anything).Return(restaurants, nil)
	menuRepo.EXPECT().ListProducts(mock.Anything).Return(products, nil)
	menuRepo.EXPECT().ListMenuRecords(mock.Anything).Return([]entity.MenuRecord{
		{RestaurantID: 1, ProductID: 10, Available: true},
		{RestaurantID: 1, ProductID: 11, Available: false},
		{RestaurantID: 2, ProductID: 11, Available: true},
	}, nil)

	matrix, err := service.ProductAvailability(context.Background())
	require.NoError(t, err)

	assert.Equal(t, restaurants, matrix.Restaurants)
	require.Len(t, matrix.Rows, 3)
	assert.Equal(t, "Burger", matrix.Rows[0].Product.Name)
	assert.Equal(t, []bool{true, false}, matrix.Rows[0].Available)
	assert.Equal(t, []bool{false, true}, matrix.Rows[1].Available)
	// Shake is on no menu at all.
	assert.Equal(t, []bool{false, false}, matrix.Rows[2].Available)
}

func TestCatalogService_ProductAvailability_Error(t *testing.T) {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	service := NewCatalogService(restaurantRepo, menuRepo)

	restaurantRepo.EXPECT().ListRestaurants(mock.Anything).Return(nil, nil).Maybe()
	menuRepo.EXPECT().ListProducts(mock.Anything).Return(nil, errors.New("timeout"))
	menuRepo.EXPECT().ListMenuRecords(mock.Anything).Return(nil, nil).Maybe()

	matrix, err := service.ProductAvailability(context.Background())
	assert.ErrorContains(t, err, "failed to list products")
	assert.Nil(t, matrix)
}
