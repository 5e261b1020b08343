package impl

import (
	"io"
	"log/slog"

	"foodcart/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrder(id int64, address string, productIDs ...int64) *entity.Order {
	items := make([]entity.OrderItem, 0, len(productIDs))
	for _, productID := range productIDs {
		items = append(items, entity.OrderItem{
			ProductID: productID,
			Quantity:  1,
			UnitPrice: decimal.RequireFromString("100.00"),
		})
	}

	return &entity.Order{
		ID:              id,
		FirstName:       "Ivan",
		DeliveryAddress: address,
		Status:          entity.OrderStatusUnprocessed,
		Items:           items,
	}
}

func menuOf(offers map[int64][]int64) *entity.MenuIndex {
	var records []entity.MenuRecord
	for restaurantID, productIDs := range offers {
		for _, productID := range productIDs {
			records = append(records, entity.MenuRecord{RestaurantID: restaurantID, ProductID: productID, Available: true})
		}
	}

	return entity.NewMenuIndex(records)
}

func candidateNames(res *entity.OrderResolution) []string {
	names := make([]string, 0, len(res.Candidates))
	for _, candidate := range res.Candidates {
		names = append(names, candidate.Restaurant.Name)
	}

	return names
}
