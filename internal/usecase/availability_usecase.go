// Package usecase defines the application's use cases as interfaces.
package usecase

import (
	"context"

	"foodcart/internal/domain/entity"
)

// AvailabilityUsecase decides which restaurants can take which orders.
type AvailabilityUsecase interface {
	// ResolveOrders runs one resolution batch. Results are in the order of the
	// input orders. Geocoding failures never fail the batch; the returned
	// error is reserved for a cancelled context.
	ResolveOrders(ctx context.Context, orders []*entity.Order, restaurants []*entity.Restaurant, menu *entity.MenuIndex) (*entity.BatchResolution, error)

	// ResolveActiveOrders loads unfinished orders, restaurants and available
	// menu records, then resolves them as one batch.
	ResolveActiveOrders(ctx context.Context) (*entity.BatchResolution, error)
}
