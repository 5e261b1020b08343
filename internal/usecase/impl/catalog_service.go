package impl

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type catalogService struct {
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(restaurantRepo repository.RestaurantRepository, menuRepo repository.MenuRepository) usecase.CatalogUsecase {
	return &catalogService{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
	}
}

// ListRestaurants returns all restaurants ordered by name
func (s *catalogService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := s.restaurantRepo.ListRestaurants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

// ProductAvailability builds the product by restaurant matrix
func (s *catalogService) ProductAvailability(ctx context.Context) (*usecase.ProductAvailability, error) {
	var (
		restaurants []*entity.Restaurant
		products    []*entity.Product
		records     []entity.MenuRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		restaurants, err = s.restaurantRepo.ListRestaurants(gctx)

		return errors.Wrap(err, "failed to list restaurants")
	})
	g.Go(func() (err error) {
		products, err = s.menuRepo.ListProducts(gctx)

		return errors.Wrap(err, "failed to list products")
	})
	g.Go(func() (err error) {
		records, err = s.menuRepo.ListMenuRecords(gctx)

		return errors.Wrap(err, "failed to list menu records")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	menu := entity.NewMenuIndex(records)

	rows := make([]usecase.ProductAvailabilityRow, 0, len(products))
	for _, product := range products {
		available := make([]bool, len(restaurants))
		for i, restaurant := range restaurants {
			available[i] = menu.CanFulfill(restaurant.ID, map[int64]struct{}{product.ID: {}})
		}
		rows = append(rows, usecase.ProductAvailabilityRow{
			Product:   product,
			Available: available,
		})
	}

	return &usecase.ProductAvailability{
		Restaurants: restaurants,
		Rows:        rows,
	}, nil
}
