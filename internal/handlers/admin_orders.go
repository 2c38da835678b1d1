package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/naturespantry/shop/internal/models"
	"github.com/naturespantry/shop/internal/mykafka"
	"github.com/naturespantry/shop/internal/repository"
)

type AdminOrderHandler struct {
	Orders   repository.Orders
	Producer mykafka.Publisher
}

func orderMatches(o *models.Order, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(o.OrderNumber), q) ||
		strings.Contains(strings.ToLower(o.CustomerName), q) ||
		strings.Contains(strings.ToLower(o.CustomerEmail), q)
}

func validOrderStatus(s string) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusConfirmed,
		models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled,
		models.OrderStatusRefunded:
		return true
	}
	return false
}

func (h *AdminOrderHandler) List(c echo.Context) error {
	items, err := h.Orders.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	q := c.QueryParam("q")
	status := c.QueryParam("status")

	out := make([]models.Order, 0, len(items))
	for i := range items {
		o := &items[i]
		if !orderMatches(o, q) {
			continue
		}
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		out = append(out, *o)
	}

	return c.JSON(http.StatusOK, map[string]any{"data": out, "total": len(out)})
}

func (h *AdminOrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	o, err := h.Orders.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, o)
}

// Items serves the second fetch the order detail dialog makes.
func (h *AdminOrderHandler) Items(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	items, err := h.Orders.Items(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

// Update applies the detail dialog's partial update: status, tracking number
// and notes. Concurrent console edits stay last-write-wins.
func (h *AdminOrderHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req repository.OrderUpdate
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if !validOrderStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order status")
	}

	o, err := h.Orders.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	publishEvent(c, h.Producer, "order_events", o.ID.String(), map[string]any{
		"type":         "order_updated",
		"order_id":     o.ID.String(),
		"order_number": o.OrderNumber,
		"status":       o.Status,
	})

	return c.JSON(http.StatusOK, o)
}
