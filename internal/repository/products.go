// Package repository gives every remote-store entity a typed interface so
// handlers never touch the table client directly and tests can substitute
// their own database.
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naturespantry/shop/internal/models"
)

type ProductUpdate struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	Price           float64  `json:"price"`
	OriginalPrice   *float64 `json:"original_price"`
	ImageURL        *string  `json:"image_url"`
	Description     *string  `json:"description"`
	NutritionalInfo *string  `json:"nutritional_info"`
	Weight          *string  `json:"weight"`
	InStock         bool     `json:"in_stock"`
	StockQuantity   int      `json:"stock_quantity"`
}

type Products interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id uuid.UUID, upd ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type GormProducts struct {
	DB *gorm.DB
}

func (r *GormProducts) List(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormProducts) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProducts) Create(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *GormProducts) Update(ctx context.Context, id uuid.UUID, upd ProductUpdate) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}

	p.Name = upd.Name
	p.Slug = upd.Slug
	p.Category = upd.Category
	p.Type = upd.Type
	p.Price = upd.Price
	p.OriginalPrice = upd.OriginalPrice
	p.ImageURL = upd.ImageURL
	p.Description = upd.Description
	p.NutritionalInfo = upd.NutritionalInfo
	p.Weight = upd.Weight
	p.InStock = upd.InStock
	p.StockQuantity = upd.StockQuantity

	if err := r.DB.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProducts) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormProducts) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
