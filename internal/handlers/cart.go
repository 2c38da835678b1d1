package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/naturespantry/shop/internal/cart"
	"github.com/naturespantry/shop/internal/catalog"
	"github.com/naturespantry/shop/internal/mykafka"
)

const cartSessionCookie = "cartSession"

type CartHandler struct {
	Catalog  *catalog.Catalog
	Store    *cart.Store
	Producer mykafka.Publisher
}

// sessionID reads the cart session cookie, minting one on first contact.
func (h *CartHandler) sessionID(c echo.Context) string {
	if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	id := uuid.NewString()
	c.SetCookie(CreateCookie(cartSessionCookie, id, "/", time.Now().Add(30*24*time.Hour)))
	return id
}

func (h *CartHandler) cartJSON(c echo.Context, ct *cart.Cart) error {
	return c.JSON(http.StatusOK, map[string]any{
		"items":       ct.Items(),
		"total_items": ct.TotalItems(),
		"total_price": ct.TotalPrice(),
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return h.cartJSON(c, h.Store.Get(h.sessionID(c)))
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	p, ok := h.Catalog.ByID(req.ProductID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	session := h.sessionID(c)
	ct := h.Store.Get(session)
	ct.AddItem(p, req.Quantity)

	publishEvent(c, h.Producer, "cart_events", session, map[string]any{
		"type":       "cart_item_added",
		"session":    session,
		"product_id": p.ID,
		"quantity":   req.Quantity,
	})
	return h.cartJSON(c, ct)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	session := h.sessionID(c)
	ct := h.Store.Get(session)
	ct.UpdateQuantity(c.Param("id"), req.Quantity)

	publishEvent(c, h.Producer, "cart_events", session, map[string]any{
		"type":       "cart_quantity_updated",
		"session":    session,
		"product_id": c.Param("id"),
		"quantity":   req.Quantity,
	})
	return h.cartJSON(c, ct)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	session := h.sessionID(c)
	ct := h.Store.Get(session)
	ct.RemoveItem(c.Param("id"))

	publishEvent(c, h.Producer, "cart_events", session, map[string]any{
		"type":       "cart_item_removed",
		"session":    session,
		"product_id": c.Param("id"),
	})
	return h.cartJSON(c, ct)
}
