package controllers

import (
	"net/http"

	"cafe-service/models"
	"cafe-service/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	service services.MenuService
}

func NewMenuController(service services.MenuService) *MenuController {
	return &MenuController{service: service}
}

func (mc *MenuController) ListMenuItems(c *gin.Context) {
	items, serr := mc.service.ListMenuItems(c.Request.Context())
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (mc *MenuController) GetMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	item, serr := mc.service.GetMenuItem(c.Request.Context(), id)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, serr := mc.service.CreateMenuItem(c.Request.Context(), &req)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "menuItem": item})
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, serr := mc.service.UpdateMenuItem(c.Request.Context(), id, &req)
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "menuItem": item})
}

func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if serr := mc.service.DeleteMenuItem(c.Request.Context(), id); serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (mc *MenuController) CategoryCounts(c *gin.Context) {
	counts, serr := mc.service.CategoryCounts(c.Request.Context())
	if serr != nil {
		respondError(c, serr)
		return
	}
	c.JSON(http.StatusOK, counts)
}
