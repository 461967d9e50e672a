package routes

import (
	"cafe-service/controllers"
	"cafe-service/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, mc *controllers.MenuController, oc *controllers.OrderController, oic *controllers.OrderItemController) {
	menu := r.Group("/menu-items")
	menu.GET("/", mc.ListMenuItems)
	menu.GET("/categories", mc.CategoryCounts)
	menu.GET("/:id", mc.GetMenuItem)

	menuStaff := r.Group("/menu-items")
	menuStaff.Use(middleware.AuthMiddleware(), middleware.StaffOnly())
	menuStaff.POST("/", mc.CreateMenuItem)
	menuStaff.PATCH("/:id", mc.UpdateMenuItem)
	menuStaff.DELETE("/:id", mc.DeleteMenuItem)

	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	orders.POST("/", oc.PlaceOrder)
	orders.GET("/", oc.ListOrders)
	orders.GET("/:id", oc.GetOrder)
	orders.PATCH("/:id", oc.UpdateOrder)
	orders.DELETE("/:id", oc.DeleteOrder)

	items := r.Group("/order-items")
	items.Use(middleware.AuthMiddleware())
	items.GET("/", oic.ListOrderItems)
	items.GET("/order/:orderId", oic.ListOrderItemsForOrder)
	items.GET("/:id", oic.GetOrderItem)
	items.POST("/", oic.CreateOrderItem)
	items.PATCH("/:id", oic.UpdateOrderItem)
	items.DELETE("/:id", oic.DeleteOrderItem)
}
