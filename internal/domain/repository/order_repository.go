package repository

import (
	"context"
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository reads orders with their line items and records manual assignment.
type OrderRepository interface {
	// ListActiveOrders returns orders that are not finished, with items,
	// ordered by status and registration time.
	ListActiveOrders(ctx context.Context) ([]*entity.Order, error)

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id int64) (*entity.Order, error)

	// AssignRestaurant commits the order to a restaurant and marks it processed.
	AssignRestaurant(ctx context.Context, orderID, restaurantID int64, processedAt time.Time) error
}
