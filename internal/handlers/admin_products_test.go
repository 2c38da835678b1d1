package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/naturespantry/shop/internal/models"
	"github.com/naturespantry/shop/internal/repository"
)

func newProductHandler(t *testing.T) (*AdminProductHandler, *gorm.DB, *fakePublisher) {
	db := newTestDB(t)
	pub := &fakePublisher{}
	h := &AdminProductHandler{
		Products: &repository.GormProducts{DB: db},
		Producer: pub,
	}
	return h, db, pub
}

func seedProduct(t *testing.T, db *gorm.DB, name, slug, category, typ string, createdAt time.Time) models.Product {
	p := models.Product{
		Name:     name,
		Slug:     slug,
		Category: category,
		Type:     typ,
		Price:    9.99,
		InStock:  true,
	}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Model(&p).Update("created_at", createdAt).Error)
	return p
}

func TestAdminCreateProductGeneratesSlug(t *testing.T) {
	h, db, pub := newProductHandler(t)

	rec, c := doJSON(t, http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name":     "Honey Glazed Cashews",
		"category": "cashews",
		"type":     "Honey Glazed",
		"price":    14.99,
		"in_stock": true,
	})
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Product
	decodeBody(t, rec, &resp)
	require.Equal(t, "honey-glazed-cashews", resp.Slug)

	var stored models.Product
	require.NoError(t, db.First(&stored, "slug = ?", "honey-glazed-cashews").Error)
	require.Equal(t, resp.ID, stored.ID)

	require.Equal(t, []string{"product_events"}, pub.topics)
	require.Equal(t, "product_created", pub.events[0]["type"])
}

func TestAdminCreateProductRequiresName(t *testing.T) {
	h, _, pub := newProductHandler(t)

	_, c := doJSON(t, http.MethodPost, "/api/v1/admin/products", map[string]any{
		"category": "cashews",
	})
	require.Error(t, h.Create(c))
	require.Empty(t, pub.topics)
}

func TestAdminListProductsSearchAndFilter(t *testing.T) {
	h, db, _ := newProductHandler(t)
	now := time.Now()

	seedProduct(t, db, "Raw Cashews", "raw-cashews", "cashews", "Raw", now.Add(-3*time.Hour))
	seedProduct(t, db, "Roasted Cashews", "roasted-cashews", "cashews", "Roasted", now.Add(-1*time.Hour))
	seedProduct(t, db, "Almond Flour", "almond-flour", "flours", "Almond", now.Add(-2*time.Hour))

	// Newest-first, no filters.
	rec, c := doJSON(t, http.MethodGet, "/api/v1/admin/products", nil)
	require.NoError(t, h.List(c))

	var resp struct {
		Data  []models.Product `json:"data"`
		Total int              `json:"total"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, 3, resp.Total)
	require.Equal(t, "Roasted Cashews", resp.Data[0].Name)
	require.Equal(t, "Almond Flour", resp.Data[1].Name)
	require.Equal(t, "Raw Cashews", resp.Data[2].Name)

	// Case-insensitive substring search.
	rec, c = doJSON(t, http.MethodGet, "/api/v1/admin/products?q=ROASTED", nil)
	require.NoError(t, h.List(c))
	decodeBody(t, rec, &resp)
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "Roasted Cashews", resp.Data[0].Name)

	// Category equality filter; "all" means no filter.
	rec, c = doJSON(t, http.MethodGet, "/api/v1/admin/products?category=flours", nil)
	require.NoError(t, h.List(c))
	decodeBody(t, rec, &resp)
	require.Equal(t, 1, resp.Total)

	rec, c = doJSON(t, http.MethodGet, "/api/v1/admin/products?category=all", nil)
	require.NoError(t, h.List(c))
	decodeBody(t, rec, &resp)
	require.Equal(t, 3, resp.Total)
}

func TestAdminUpdateProduct(t *testing.T) {
	h, db, pub := newProductHandler(t)
	p := seedProduct(t, db, "Raw Cashews", "raw-cashews", "cashews", "Raw", time.Now())

	rec, c := doJSON(t, http.MethodPatch, "/api/v1/admin/products/"+p.ID.String(), map[string]any{
		"name":           "Raw Cashews Premium",
		"slug":           "raw-cashews",
		"category":       "cashews",
		"type":           "Raw",
		"price":          15.49,
		"in_stock":       false,
		"stock_quantity": 12,
	})
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	decodeBody(t, rec, &resp)
	require.Equal(t, "Raw Cashews Premium", resp.Name)
	require.InDelta(t, 15.49, resp.Price, 1e-9)
	require.False(t, resp.InStock)
	require.Equal(t, 12, resp.StockQuantity)

	require.Equal(t, "product_updated", pub.events[len(pub.events)-1]["type"])
}

func TestAdminUpdateMissingProduct(t *testing.T) {
	h, _, _ := newProductHandler(t)

	_, c := doJSON(t, http.MethodPatch, "/api/v1/admin/products/00000000-0000-0000-0000-000000000000", map[string]any{
		"name": "x",
	})
	c.SetParamNames("id")
	c.SetParamValues("00000000-0000-0000-0000-000000000000")
	require.Error(t, h.Update(c))
}

func TestAdminDeleteProduct(t *testing.T) {
	h, db, pub := newProductHandler(t)
	p := seedProduct(t, db, "Raw Cashews", "raw-cashews", "cashews", "Raw", time.Now())

	rec, c := doJSON(t, http.MethodDelete, "/api/v1/admin/products/"+p.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)

	require.Equal(t, "product_deleted", pub.events[len(pub.events)-1]["type"])

	// Deleting again reports not found.
	_, c = doJSON(t, http.MethodDelete, "/api/v1/admin/products/"+p.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(p.ID.String())
	require.Error(t, h.Delete(c))
}
