package models

import "time"

// The binding tags cover structural validation only (presence, basic shape).
// Semantic rules (existence of referenced rows, quantity positivity, price
// format) are re-checked by the services regardless of what the transport
// layer guarantees.

type CreateMenuItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Price    string `json:"price" binding:"required"`
}

type UpdateMenuItemRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Price    *string `json:"price"`
}

// OrderLine is one requested line of an order placement. Quantity is a
// pointer so an omitted quantity (defaults to 1) is distinguishable from an
// explicit zero, which is rejected.
type OrderLine struct {
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	Quantity   *int    `json:"quantity"`
	Note       *string `json:"note"`
}

type PlaceOrderRequest struct {
	CreatedAt *time.Time  `json:"createdAt"`
	Items     []OrderLine `json:"items" binding:"required,dive"`
}

type UpdateOrderRequest struct {
	CreatedAt *time.Time `json:"createdAt"`
}

type CreateOrderItemRequest struct {
	OrderID    uint    `json:"orderId" binding:"required"`
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	Quantity   *int    `json:"quantity"`
	Note       *string `json:"note"`
}

type UpdateOrderItemRequest struct {
	OrderID    *uint   `json:"orderId"`
	MenuItemID *uint   `json:"menuItemId"`
	Quantity   *int    `json:"quantity"`
	Note       *string `json:"note"`
}

// OrderResponse is an order joined with its resolved items plus the total
// recomputed from current line items on every read.
type OrderResponse struct {
	Order
	Total Cents `json:"total"`
}
