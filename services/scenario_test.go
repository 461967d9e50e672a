package services_test

import (
	"context"
	"testing"

	"cafe-service/models"
	"cafe-service/repository"
	"cafe-service/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// End-to-end flow against real gorm repositories on an in-memory database:
// catalog entry, atomic placement, recomputed total, catalog cascade.

func setupScenario(t *testing.T) (services.MenuService, services.OrderService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderItem{}))

	log := zap.NewNop()
	menuSvc := services.NewMenuService(repository.NewGormMenuRepository(db), nil, log)
	orderSvc := services.NewOrderService(repository.NewGormOrderRepository(db), log)
	return menuSvc, orderSvc, db
}

func TestLatteScenario(t *testing.T) {
	menuSvc, orderSvc, _ := setupScenario(t)
	ctx := context.Background()

	latte, serr := menuSvc.CreateMenuItem(ctx, &models.CreateMenuItemRequest{
		Name:     "Latte",
		Category: "drink",
		Price:    "65.00",
	})
	require.Nil(t, serr)

	qty := 2
	placed, serr := orderSvc.PlaceOrder(ctx, &models.PlaceOrderRequest{
		Items: []models.OrderLine{{MenuItemID: latte.ID, Quantity: &qty}},
	})
	require.Nil(t, serr)
	require.Len(t, placed.OrderItems, 1)
	assert.Equal(t, "130.00", placed.Total.String())

	// removing the Latte from the catalog takes its line with it
	require.Nil(t, menuSvc.DeleteMenuItem(ctx, latte.ID))

	after, serr := orderSvc.GetOrder(ctx, placed.ID)
	require.Nil(t, serr)
	assert.Empty(t, after.OrderItems)
	assert.Equal(t, "0.00", after.Total.String())
}

func TestPlacementLeavesNothingBehindOnFailure(t *testing.T) {
	menuSvc, orderSvc, db := setupScenario(t)
	ctx := context.Background()

	latte, serr := menuSvc.CreateMenuItem(ctx, &models.CreateMenuItemRequest{
		Name:     "Latte",
		Category: "drink",
		Price:    "65.00",
	})
	require.Nil(t, serr)

	qty := 1
	_, serr = orderSvc.PlaceOrder(ctx, &models.PlaceOrderRequest{
		Items: []models.OrderLine{
			{MenuItemID: latte.ID, Quantity: &qty},
			{MenuItemID: 9999, Quantity: &qty},
		},
	})
	require.NotNil(t, serr)
	assert.Equal(t, services.KindInvalidReference, serr.Kind)

	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)

	listed, serr := orderSvc.ListOrders(ctx)
	require.Nil(t, serr)
	assert.Empty(t, listed)
}

func TestDeleteOrderCascadesItems(t *testing.T) {
	menuSvc, orderSvc, db := setupScenario(t)
	ctx := context.Background()

	latte, serr := menuSvc.CreateMenuItem(ctx, &models.CreateMenuItemRequest{
		Name:     "Latte",
		Category: "drink",
		Price:    "65.00",
	})
	require.Nil(t, serr)

	placed, serr := orderSvc.PlaceOrder(ctx, &models.PlaceOrderRequest{
		Items: []models.OrderLine{
			{MenuItemID: latte.ID},
			{MenuItemID: latte.ID},
		},
	})
	require.Nil(t, serr)

	require.Nil(t, orderSvc.DeleteOrder(ctx, placed.ID))

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, items)
}
