package services

import (
	"sort"

	"cafe-service/models"
)

// Read-side aggregation. Nothing here is persisted: totals, counts and
// display order are recomputed on every call so they can never drift from
// the underlying rows.

// OrderTotalCents sums quantity times unit price over an order's resolved
// items. Cents arithmetic is exact, so rendering via Cents.String yields the
// round-half-up two-digit result directly.
func OrderTotalCents(items []models.OrderItem) models.Cents {
	var total models.Cents
	for _, item := range items {
		if item.MenuItem == nil {
			continue
		}
		total += item.MenuItem.PriceCents * models.Cents(item.Quantity)
	}
	return total
}

// CategoryCounts groups menu items by category.
func CategoryCounts(items []models.MenuItem) map[string]int {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[item.Category]++
	}
	return counts
}

// SortMenuItems orders items by category then name for display.
func SortMenuItems(items []models.MenuItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
}
