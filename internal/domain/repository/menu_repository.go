package repository

import (
	"context"

	"foodcart/internal/domain/entity"
)

// MenuRepository reads the product catalogue and per-restaurant menus.
type MenuRepository interface {
	// ListAvailableMenuRecords returns menu records currently marked available.
	ListAvailableMenuRecords(ctx context.Context) ([]entity.MenuRecord, error)

	// ListMenuRecords returns all menu records regardless of availability.
	ListMenuRecords(ctx context.Context) ([]entity.MenuRecord, error)

	// ListProducts returns the product catalogue ordered by ID.
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}
