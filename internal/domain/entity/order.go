package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// priceScale is the number of minor-unit digits kept in money values.
const priceScale = 2

// Order is a customer order as read from the relational store.
type Order struct {
	ID                   int64
	FirstName            string
	LastName             string
	PhoneNumber          string
	DeliveryAddress      string
	Status               OrderStatus
	PaymentMethod        PaymentMethod
	Comment              string
	AssignedRestaurantID *int64 // Manual override; when set, resolution is skipped.
	RegisteredAt         time.Time
	ProcessedAt          *time.Time
	DeliveredAt          *time.Time
	Items                []OrderItem
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// TotalPrice returns unit price times quantity, kept to two decimal places.
func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity)).Round(priceScale)
}

// TotalPrice returns the sum of all line totals. An order without items costs zero.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.TotalPrice())
	}

	return total
}

// RequiredProducts returns the set of distinct product ids in the order.
// Quantities are irrelevant to fulfillment.
func (o *Order) RequiredProducts() map[int64]struct{} {
	required := make(map[int64]struct{}, len(o.Items))
	for _, item := range o.Items {
		required[item.ProductID] = struct{}{}
	}

	return required
}

// IsManuallyAssigned reports whether staff already committed the order to a restaurant.
func (o *Order) IsManuallyAssigned() bool {
	return o.AssignedRestaurantID != nil
}

// CustomerName joins first and last name.
func (o *Order) CustomerName() string {
	switch {
	case o.FirstName == "":
		return o.LastName
	case o.LastName == "":
		return o.FirstName
	default:
		return o.FirstName + " " + o.LastName
	}
}
