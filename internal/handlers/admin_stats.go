package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naturespantry/shop/internal/repository"
	"github.com/naturespantry/shop/internal/stats"
)

type AdminStatsHandler struct {
	Products repository.Products
	Orders   repository.Orders
	Users    repository.Users
}

// Dashboard recomputes every aggregate from a fresh fetch on each request.
func (h *AdminStatsHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	productCount, err := h.Products.Count(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	userCount, err := h.Users.CountProfiles(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	orders, err := h.Orders.List(ctx)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, stats.Compute(productCount, userCount, orders))
}
