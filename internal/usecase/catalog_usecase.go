package usecase

import (
	"context"

	"foodcart/internal/domain/entity"
)

// ProductAvailability is the product by restaurant availability matrix.
type ProductAvailability struct {
	// Restaurants are the matrix columns, ordered by name.
	Restaurants []*entity.Restaurant
	Rows        []ProductAvailabilityRow
}

// ProductAvailabilityRow holds one product and, aligned with
// ProductAvailability.Restaurants, whether each restaurant sells it.
type ProductAvailabilityRow struct {
	Product   *entity.Product
	Available []bool
}

// CatalogUsecase exposes restaurants and their menus to staff.
type CatalogUsecase interface {
	// ListRestaurants returns all restaurants ordered by name.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// ProductAvailability builds the availability matrix. A product missing
	// from a restaurant's menu is reported as unavailable there.
	ProductAvailability(ctx context.Context) (*ProductAvailability, error)
}
