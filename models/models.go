package models

import (
	"time"
)

// MenuItem is a sellable catalog entry. Prices are stored in cents; the wire
// format is a decimal string ("65.00") parsed and rendered by the Cents type.
type MenuItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Category   string `gorm:"size:20;not null;index" json:"category"`
	PriceCents Cents  `gorm:"not null" json:"price"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// Order groups zero or more OrderItems. Deleting an order removes its items;
// the cascade is declared on the schema and also enforced explicitly in the
// repository so the behavior does not depend on storage-engine configuration.
type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time   `gorm:"not null" json:"createdAt"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a single line within an order. Both references are required
// and cascade on delete. Note is NULL when absent; a blank note is never stored.
type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"orderId"`
	MenuItemID uint      `gorm:"not null;index" json:"menuItemId"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	Note       *string   `gorm:"size:255" json:"note,omitempty"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"menuItem,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
