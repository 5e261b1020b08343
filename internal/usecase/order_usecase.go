package usecase

import (
	"context"

	"foodcart/internal/domain/entity"
)

// AssignRestaurantInput represents the manual assignment of an order.
type AssignRestaurantInput struct {
	OrderID      int64 `json:"-"`
	RestaurantID int64 `json:"restaurant_id" validate:"required,gt=0"`
}

// OrderUsecase defines staff actions on orders.
type OrderUsecase interface {
	// AssignRestaurant commits an order to a restaurant and marks it processed.
	// Later resolutions of the order short-circuit to the assigned restaurant.
	AssignRestaurant(ctx context.Context, input *AssignRestaurantInput) (*entity.Order, error)
}
