package entity

import "github.com/shopspring/decimal"

// Restaurant is a kitchen that can fulfill orders from its menu.
type Restaurant struct {
	ID           int64
	Name         string
	Address      string // Free text as entered by staff; may be blank.
	ContactPhone string
}

// Product is a sellable catalogue item.
type Product struct {
	ID            int64
	Name          string
	Category      string
	Price         decimal.Decimal
	SpecialStatus bool
	Description   string
}
