package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naturespantry/shop/internal/models"
)

type Users interface {
	Profiles(ctx context.Context) ([]models.Profile, error)
	Roles(ctx context.Context) ([]models.UserRole, error)
	// SetRole replaces every role row of the user with a single new one.
	SetRole(ctx context.Context, userID uuid.UUID, role string) error
	CountProfiles(ctx context.Context) (int64, error)
}

type GormUsers struct {
	DB *gorm.DB
}

func (r *GormUsers) Profiles(ctx context.Context) ([]models.Profile, error) {
	var items []models.Profile
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormUsers) Roles(ctx context.Context) ([]models.UserRole, error) {
	var items []models.UserRole
	if err := r.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormUsers) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: userID, Role: role}).Error
	})
}

func (r *GormUsers) CountProfiles(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Profile{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
