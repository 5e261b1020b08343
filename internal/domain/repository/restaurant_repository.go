package repository

import (
	"context"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository reads restaurants.
type RestaurantRepository interface {
	// ListRestaurants returns all restaurants ordered by name.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// FindRestaurantByID retrieves a restaurant by its ID.
	FindRestaurantByID(ctx context.Context, id int64) (*entity.Restaurant, error)
}
