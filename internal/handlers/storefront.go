package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/naturespantry/shop/internal/catalog"
)

// StorefrontHandler serves the bundled catalog to the shop pages. Everything
// here is a pure in-memory read; the remote store is never touched.
type StorefrontHandler struct {
	Catalog *catalog.Catalog
}

// ListProducts backs the category pages: scope by category, filter by the
// selected types (comma separated, empty = no filter), then sort.
func (h *StorefrontHandler) ListProducts(c echo.Context) error {
	category := c.QueryParam("category")
	sortKey := c.QueryParam("sort")

	var types []string
	if raw := c.QueryParam("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
	}

	products := h.Catalog.All()
	if category != "" {
		products = h.Catalog.ProductsByCategory(category)
	}
	products = catalog.FilterByTypes(products, types)
	products = catalog.SortProducts(products, sortKey)

	return c.JSON(http.StatusOK, map[string]any{
		"data":  products,
		"total": len(products),
	})
}

func (h *StorefrontHandler) FeaturedProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"data": h.Catalog.FeaturedProducts(),
	})
}

func (h *StorefrontHandler) ProductTypes(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category is required")
	}
	types := h.Catalog.TypesForCategory(category)
	if types == nil {
		types = []string{}
	}
	return c.JSON(http.StatusOK, map[string]any{"data": types})
}

func (h *StorefrontHandler) GetProduct(c echo.Context) error {
	p, ok := h.Catalog.ByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}
