package repository

import (
	"context"

	"cafe-service/models"

	"gorm.io/gorm"
)

// MenuRepository defines the interface for catalog data access.
type MenuRepository interface {
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id uint) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	// DeleteCascade removes the menu item and every order item referencing it
	// in a single transaction. Returns the number of order items removed, or
	// gorm.ErrRecordNotFound if the menu item does not exist.
	DeleteCascade(ctx context.Context, id uint) (int64, error)
}

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GormMenuRepository.
func NewGormMenuRepository(db *gorm.DB) MenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormMenuRepository) FindByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormMenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormMenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormMenuRepository) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.Select("id").First(&item, id).Error; err != nil {
			return err
		}
		res := tx.Where("menu_item_id = ?", id).Delete(&models.OrderItem{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return tx.Delete(&models.MenuItem{}, id).Error
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
