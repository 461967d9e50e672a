package repository

import (
	"context"
	"time"

	"cafe-service/models"

	"gorm.io/gorm"
)

// OrderRepository defines the interface for order aggregate data access.
// Multi-row writes (placement, cascades) run inside a single transaction so a
// concurrent reader sees either the pre-write or the fully written state.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	// PlaceOrder inserts the order and all of its items atomically. Every
	// MenuItemID is resolved inside the transaction; an unresolved reference
	// aborts the whole placement and is reported as a *ReferenceError.
	PlaceOrder(ctx context.Context, order *models.Order) error
	UpdateCreatedAt(ctx context.Context, id uint, createdAt time.Time) (*models.Order, error)
	// DeleteCascade removes the order and all of its items in one transaction.
	DeleteCascade(ctx context.Context, id uint) error

	FindAllItems(ctx context.Context) ([]models.OrderItem, error)
	FindItemByID(ctx context.Context, id uint) (*models.OrderItem, error)
	FindItemsByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	// CreateItem resolves both foreign keys and inserts the row in one
	// transaction; failure leaves no partial write.
	CreateItem(ctx context.Context, item *models.OrderItem) error
	UpdateItem(ctx context.Context, item *models.OrderItem) error
	DeleteItem(ctx context.Context, id uint) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems.MenuItem").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems.MenuItem").
		First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) PlaceOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range order.OrderItems {
			if err := resolveMenuItem(tx, order.OrderItems[i].MenuItemID); err != nil {
				return err
			}
		}
		return tx.Create(order).Error
	})
}

func (r *GormOrderRepository) UpdateCreatedAt(ctx context.Context, id uint, createdAt time.Time) (*models.Order, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("created_at", createdAt)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *GormOrderRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Select("id").First(&order, id).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

func (r *GormOrderRepository) FindAllItems(ctx context.Context) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.WithContext(ctx).
		Preload("MenuItem").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormOrderRepository) FindItemByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.WithContext(ctx).
		Preload("MenuItem").
		First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormOrderRepository) FindItemsByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.WithContext(ctx).
		Preload("MenuItem").
		Where("order_id = ?", orderID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormOrderRepository) CreateItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveOrder(tx, item.OrderID); err != nil {
			return err
		}
		if err := resolveMenuItem(tx, item.MenuItemID); err != nil {
			return err
		}
		return tx.Create(item).Error
	})
}

func (r *GormOrderRepository) UpdateItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resolveOrder(tx, item.OrderID); err != nil {
			return err
		}
		if err := resolveMenuItem(tx, item.MenuItemID); err != nil {
			return err
		}
		// Save would skip NULLing a cleared note; update all columns explicitly.
		res := tx.Model(&models.OrderItem{}).
			Where("id = ?", item.ID).
			Updates(map[string]interface{}{
				"order_id":     item.OrderID,
				"menu_item_id": item.MenuItemID,
				"quantity":     item.Quantity,
				"note":         item.Note,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormOrderRepository) DeleteItem(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.OrderItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func resolveMenuItem(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.MenuItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &ReferenceError{Entity: "menu item", ID: id}
	}
	return nil
}

func resolveOrder(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &ReferenceError{Entity: "order", ID: id}
	}
	return nil
}
