package entity

// OrderStatus represents the processing stage of an order.
type OrderStatus string

const (
	// OrderStatusUnprocessed indicates the order has not been handled by staff yet.
	OrderStatusUnprocessed OrderStatus = "unprocessed"
	// OrderStatusProcessed indicates the order was handed to a restaurant.
	OrderStatusProcessed OrderStatus = "processed"
	// OrderStatusFinished indicates the order was delivered.
	OrderStatusFinished OrderStatus = "finished"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusUnprocessed, OrderStatusProcessed, OrderStatusFinished:
		return true
	default:
		return false
	}
}

// Rank orders statuses the way the dashboard lists them.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderStatusUnprocessed:
		return 0
	case OrderStatusProcessed:
		return 1
	case OrderStatusFinished:
		return 2
	default:
		return 3
	}
}

// PaymentMethod represents how the customer pays.
type PaymentMethod string

const (
	// PaymentMethodCash indicates payment on delivery in cash.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodCard indicates electronic payment.
	PaymentMethodCard PaymentMethod = "card"
)

// String returns the string representation of the PaymentMethod.
func (p PaymentMethod) String() string {
	return string(p)
}

// Label returns the human-readable status shown to staff.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusUnprocessed:
		return "Not processed"
	case OrderStatusProcessed:
		return "Processed"
	case OrderStatusFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Label returns the human-readable payment method shown to staff.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentMethodCash:
		return "Cash"
	case PaymentMethodCard:
		return "Card"
	default:
		return "Unknown"
	}
}
