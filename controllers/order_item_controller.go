package controllers

import (
	"net/http"

	"cafe-service/models"
	"cafe-service/services"

	"github.com/gin-gonic/gin"
)

type OrderItemController struct {
	service services.OrderService
}

func NewOrderItemController(service services.OrderService) *OrderItemController {
	return &OrderItemController{service: service}
}

func (oic *OrderItemController) ListOrderItems(c *gin.Context) {
	items, serr := oic.service.ListOrderItems(c.Request.Context())
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (oic *OrderItemController) GetOrderItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, serr := oic.service.GetOrderItem(c.Request.Context(), id)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (oic *OrderItemController) ListOrderItemsForOrder(c *gin.Context) {
	orderID, ok := idParam(c, "orderId")
	if !ok {
		return
	}
	items, serr := oic.service.ListOrderItemsForOrder(c.Request.Context(), orderID)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (oic *OrderItemController) CreateOrderItem(c *gin.Context) {
	var req models.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, serr := oic.service.CreateOrderItem(c.Request.Context(), &req)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "orderItem": item})
}

func (oic *OrderItemController) UpdateOrderItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, serr := oic.service.UpdateOrderItem(c.Request.Context(), id, &req)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orderItem": item})
}

func (oic *OrderItemController) DeleteOrderItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if serr := oic.service.DeleteOrderItem(c.Request.Context(), id); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
