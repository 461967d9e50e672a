package services

import (
	"testing"

	"cafe-service/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotalCents(t *testing.T) {
	latte := &models.MenuItem{ID: 1, Name: "Latte", Category: "drink", PriceCents: 6500}
	scone := &models.MenuItem{ID: 2, Name: "Scone", Category: "pastry", PriceCents: 1250}

	items := []models.OrderItem{
		{MenuItemID: 1, Quantity: 2, MenuItem: latte},
		{MenuItemID: 2, Quantity: 3, MenuItem: scone},
	}
	total := OrderTotalCents(items)
	assert.Equal(t, models.Cents(16750), total)
	assert.Equal(t, "167.50", total.String())
}

func TestOrderTotalCentsEmptyOrder(t *testing.T) {
	total := OrderTotalCents(nil)
	assert.Equal(t, "0.00", total.String())
}

func TestOrderTotalCentsSkipsUnresolvedItems(t *testing.T) {
	items := []models.OrderItem{{MenuItemID: 99, Quantity: 5}}
	assert.Equal(t, models.Cents(0), OrderTotalCents(items))
}

func TestCategoryCounts(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Latte", Category: "drink"},
		{Name: "Mocha", Category: "drink"},
		{Name: "Scone", Category: "pastry"},
	}
	counts := CategoryCounts(items)
	assert.Equal(t, map[string]int{"drink": 2, "pastry": 1}, counts)
}

func TestSortMenuItems(t *testing.T) {
	items := []models.MenuItem{
		{Name: "Scone", Category: "pastry"},
		{Name: "Mocha", Category: "drink"},
		{Name: "Latte", Category: "drink"},
	}
	SortMenuItems(items)
	assert.Equal(t, "Latte", items[0].Name)
	assert.Equal(t, "Mocha", items[1].Name)
	assert.Equal(t, "Scone", items[2].Name)
}
