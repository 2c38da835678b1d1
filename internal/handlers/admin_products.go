package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	elastic "github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/naturespantry/shop/internal/es"
	"github.com/naturespantry/shop/internal/logging"
	"github.com/naturespantry/shop/internal/models"
	"github.com/naturespantry/shop/internal/mykafka"
	"github.com/naturespantry/shop/internal/repository"
)

type AdminProductHandler struct {
	Products repository.Products
	Producer mykafka.Publisher
	ES       *elastic.Client
}

// productMatches is the console's case-insensitive substring search.
func productMatches(p *models.Product, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Slug), q) ||
		strings.Contains(strings.ToLower(p.Type), q)
}

// List fetches everything newest-first, then narrows by search query and
// category in-process, the way the console table does.
func (h *AdminProductHandler) List(c echo.Context) error {
	items, err := h.Products.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	q := c.QueryParam("q")
	category := c.QueryParam("category")

	out := make([]models.Product, 0, len(items))
	for i := range items {
		p := &items[i]
		if !productMatches(p, q) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, *p)
	}

	return c.JSON(http.StatusOK, map[string]any{"data": out, "total": len(out)})
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (h *AdminProductHandler) Create(c echo.Context) error {
	var req repository.ProductUpdate
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Slug == "" {
		req.Slug = slugify(req.Name)
	}

	p := models.Product{
		Name:            req.Name,
		Slug:            req.Slug,
		Category:        req.Category,
		Type:            req.Type,
		Price:           req.Price,
		OriginalPrice:   req.OriginalPrice,
		ImageURL:        req.ImageURL,
		Description:     req.Description,
		NutritionalInfo: req.NutritionalInfo,
		Weight:          req.Weight,
		InStock:         req.InStock,
		StockQuantity:   req.StockQuantity,
	}
	if err := h.Products.Create(c.Request().Context(), &p); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	h.syncIndex(c, &p)
	publishEvent(c, h.Producer, "product_events", p.ID.String(), map[string]any{
		"type":       "product_created",
		"product_id": p.ID.String(),
		"name":       p.Name,
	})

	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req repository.ProductUpdate
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	p, err := h.Products.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	h.syncIndex(c, p)
	publishEvent(c, h.Producer, "product_events", p.ID.String(), map[string]any{
		"type":       "product_updated",
		"product_id": p.ID.String(),
		"name":       p.Name,
	})

	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Products.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	if h.ES != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()
		if err := es.DeleteProduct(ctx, h.ES, id); err != nil {
			logging.FromContext(c.Request().Context()).Error("search index delete failed", "error", err)
		}
	}
	publishEvent(c, h.Producer, "product_events", id.String(), map[string]any{
		"type":       "product_deleted",
		"product_id": id.String(),
	})

	return c.NoContent(http.StatusNoContent)
}

// syncIndex republishes the product to the search index best-effort.
func (h *AdminProductHandler) syncIndex(c echo.Context, p *models.Product) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := es.IndexProduct(ctx, h.ES, p); err != nil {
		logging.FromContext(c.Request().Context()).Error("search index update failed", "error", err)
	}
}
