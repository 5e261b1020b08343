package entity

import "github.com/shopspring/decimal"

// ResolutionStatus is the terminal state of resolving one order.
type ResolutionStatus string

const (
	// ResolutionManuallyAssigned means the order already has a restaurant; nothing was computed.
	ResolutionManuallyAssigned ResolutionStatus = "manually_assigned"
	// ResolutionUnresolvable means the delivery address could not be located.
	ResolutionUnresolvable ResolutionStatus = "unresolvable"
	// ResolutionRanked means candidates were computed. The list may be empty.
	ResolutionRanked ResolutionStatus = "ranked"
)

// String returns the string representation of the ResolutionStatus.
func (s ResolutionStatus) String() string {
	return string(s)
}

// RankedRestaurant is a restaurant able to fulfill an order, with its distance
// from the delivery address.
type RankedRestaurant struct {
	Restaurant Restaurant
	DistanceKm float64
}

// OrderResolution is the outcome for one order.
type OrderResolution struct {
	Order              *Order
	Status             ResolutionStatus
	AssignedRestaurant *Restaurant        // Set when Status is manually assigned.
	DeliveryCoordinate *Coordinate        // Set when Status is ranked.
	Candidates         []RankedRestaurant // Ascending by distance, then name.
	TotalPrice         decimal.Decimal
}

// HasCandidates reports whether at least one restaurant can take the order.
func (r *OrderResolution) HasCandidates() bool {
	return r.Status == ResolutionRanked && len(r.Candidates) > 0
}

// BatchResolution holds the outcomes of one batch, in input order.
type BatchResolution struct {
	Resolutions []*OrderResolution

	// CacheErr joins geo cache read and write failures seen during the batch.
	// They never change the resolutions themselves.
	CacheErr error
}
