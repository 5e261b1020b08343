package entity

// MenuRecord states whether a restaurant currently sells a product.
type MenuRecord struct {
	RestaurantID int64
	ProductID    int64
	Available    bool
}

// MenuIndex maps each restaurant to the set of products it currently sells.
// It is built once per resolution batch and never mutated afterwards.
type MenuIndex struct {
	offered map[int64]map[int64]struct{}
}

// NewMenuIndex builds an index from menu records. Records that are not
// available are ignored.
func NewMenuIndex(records []MenuRecord) *MenuIndex {
	offered := make(map[int64]map[int64]struct{})
	for _, record := range records {
		if !record.Available {
			continue
		}

		products, ok := offered[record.RestaurantID]
		if !ok {
			products = make(map[int64]struct{})
			offered[record.RestaurantID] = products
		}
		products[record.ProductID] = struct{}{}
	}

	return &MenuIndex{offered: offered}
}

// ProductsOffered returns a copy of the product set sold by the restaurant.
func (idx *MenuIndex) ProductsOffered(restaurantID int64) map[int64]struct{} {
	products := idx.offered[restaurantID]
	out := make(map[int64]struct{}, len(products))
	for productID := range products {
		out[productID] = struct{}{}
	}

	return out
}

// CanFulfill reports whether the restaurant sells every required product.
// Partial coverage does not count.
func (idx *MenuIndex) CanFulfill(restaurantID int64, required map[int64]struct{}) bool {
	products := idx.offered[restaurantID]
	for productID := range required {
		if _, ok := products[productID]; !ok {
			return false
		}
	}

	return true
}
