package handler

import (
	"net/http"

	"foodcart/internal/delivery/http/response"
	"foodcart/internal/errors"
	"foodcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves restaurants and the product availability matrix.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListRestaurants returns all restaurants ordered by name.
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.catalog.ListRestaurants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newRestaurantViews(restaurants))
}

// ProductAvailability returns which restaurant sells which product.
func (h *CatalogHandler) ProductAvailability(c echo.Context) error {
	matrix, err := h.catalog.ProductAvailability(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductAvailabilityView(matrix))
}
