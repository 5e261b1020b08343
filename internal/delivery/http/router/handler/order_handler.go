package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/delivery/http/response"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves the order dashboard and manual assignment.
type OrderHandler struct {
	availability usecase.AvailabilityUsecase
	orders       usecase.OrderUsecase
	logger       *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(availability usecase.AvailabilityUsecase, orders usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		availability: availability,
		orders:       orders,
		logger:       logger,
	}
}

// ListOrders resolves every unfinished order and returns the dashboard rows.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	batch, err := h.availability.ResolveActiveOrders(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	if batch.CacheErr != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Geo cache degraded while listing orders",
			slog.Any("error", batch.CacheErr),
		)
	}

	return response.Success(c, http.StatusOK, newOrdersView(batch))
}

// AssignRestaurant commits an order to a restaurant chosen by staff.
func (h *OrderHandler) AssignRestaurant(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Order id must be a positive integer")
	}

	input := new(usecase.AssignRestaurantInput)
	if err := c.Bind(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid assignment input")
	}
	input.OrderID = orderID

	if err := c.Validate(input); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orders.AssignRestaurant(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAssignedOrderView(order))
}
