package handler

import (
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/usecase"

	"github.com/shopspring/decimal"
)

// distancePlaces is the precision of distances shown to staff.
const distancePlaces = 3

type labeledView struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type restaurantRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type restaurantView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone"`
}

type candidateView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
}

type orderView struct {
	ID                 int64           `json:"id"`
	CustomerName       string          `json:"customer_name"`
	PhoneNumber        string          `json:"phone_number"`
	Address            string          `json:"address"`
	Status             labeledView     `json:"status"`
	PaymentMethod      labeledView     `json:"payment_method"`
	Comment            string          `json:"comment"`
	TotalPrice         string          `json:"total_price"`
	RegisteredAt       time.Time       `json:"registered_at"`
	Resolution         string          `json:"resolution"`
	AssignedRestaurant *restaurantRef  `json:"assigned_restaurant,omitempty"`
	Candidates         []candidateView `json:"candidates"`
	Unresolvable       bool            `json:"unresolvable"`
}

type ordersView struct {
	Orders []orderView `json:"orders"`

	// CacheDegraded is set when the geo cache failed during the batch.
	// Resolutions are still complete.
	CacheDegraded bool `json:"cache_degraded"`
}

type assignedOrderView struct {
	ID                   int64       `json:"id"`
	Status               labeledView `json:"status"`
	AssignedRestaurantID *int64      `json:"assigned_restaurant_id"`
	ProcessedAt          *time.Time  `json:"processed_at,omitempty"`
}

type restaurantAvailabilityView struct {
	RestaurantID int64 `json:"restaurant_id"`
	Available    bool  `json:"available"`
}

type productRowView struct {
	ID            int64                        `json:"id"`
	Name          string                       `json:"name"`
	Category      string                       `json:"category"`
	Price         string                       `json:"price"`
	SpecialStatus bool                         `json:"special_status"`
	Availability  []restaurantAvailabilityView `json:"availability"`
}

type productAvailabilityView struct {
	Restaurants []restaurantRef  `json:"restaurants"`
	Products    []productRowView `json:"products"`
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func roundDistance(km float64) float64 {
	return decimal.NewFromFloat(km).Round(distancePlaces).InexactFloat64()
}

func newOrderView(res *entity.OrderResolution) orderView {
	order := res.Order
	view := orderView{
		ID:            order.ID,
		CustomerName:  order.CustomerName(),
		PhoneNumber:   order.PhoneNumber,
		Address:       order.DeliveryAddress,
		Status:        labeledView{Code: order.Status.String(), Label: order.Status.Label()},
		PaymentMethod: labeledView{Code: order.PaymentMethod.String(), Label: order.PaymentMethod.Label()},
		Comment:       order.Comment,
		TotalPrice:    formatPrice(res.TotalPrice),
		RegisteredAt:  order.RegisteredAt,
		Resolution:    res.Status.String(),
		Candidates:    make([]candidateView, 0, len(res.Candidates)),
	}

	switch res.Status {
	case entity.ResolutionManuallyAssigned:
		if res.AssignedRestaurant != nil {
			view.AssignedRestaurant = &restaurantRef{ID: res.AssignedRestaurant.ID, Name: res.AssignedRestaurant.Name}
		}
	case entity.ResolutionUnresolvable:
		view.Unresolvable = true
	case entity.ResolutionRanked:
		for _, candidate := range res.Candidates {
			view.Candidates = append(view.Candidates, candidateView{
				ID:         candidate.Restaurant.ID,
				Name:       candidate.Restaurant.Name,
				DistanceKm: roundDistance(candidate.DistanceKm),
			})
		}
	}

	return view
}

func newOrdersView(batch *entity.BatchResolution) ordersView {
	view := ordersView{
		Orders:        make([]orderView, 0, len(batch.Resolutions)),
		CacheDegraded: batch.CacheErr != nil,
	}
	for _, res := range batch.Resolutions {
		view.Orders = append(view.Orders, newOrderView(res))
	}

	return view
}

func newAssignedOrderView(order *entity.Order) assignedOrderView {
	return assignedOrderView{
		ID:                   order.ID,
		Status:               labeledView{Code: order.Status.String(), Label: order.Status.Label()},
		AssignedRestaurantID: order.AssignedRestaurantID,
		ProcessedAt:          order.ProcessedAt,
	}
}

func newRestaurantViews(restaurants []*entity.Restaurant) []restaurantView {
	views := make([]restaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, restaurantView{
			ID:           r.ID,
			Name:         r.Name,
			Address:      r.Address,
			ContactPhone: r.ContactPhone,
		})
	}

	return views
}

func newProductAvailabilityView(matrix *usecase.ProductAvailability) productAvailabilityView {
	view := productAvailabilityView{
		Restaurants: make([]restaurantRef, 0, len(matrix.Restaurants)),
		Products:    make([]productRowView, 0, len(matrix.Rows)),
	}
	for _, r := range matrix.Restaurants {
		view.Restaurants = append(view.Restaurants, restaurantRef{ID: r.ID, Name: r.Name})
	}

	for _, row := range matrix.Rows {
		availability := make([]restaurantAvailabilityView, 0, len(matrix.Restaurants))
		for i, r := range matrix.Restaurants {
			availability = append(availability, restaurantAvailabilityView{
				RestaurantID: r.ID,
				Available:    i < len(row.Available) && row.Available[i],
			})
		}

		view.Products = append(view.Products, productRowView{
			ID:            row.Product.ID,
			Name:          row.Product.Name,
			Category:      row.Product.Category,
			Price:         formatPrice(row.Product.Price),
			SpecialStatus: row.Product.SpecialStatus,
			Availability:  availability,
		})
	}

	return view
}
