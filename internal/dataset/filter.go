package dataset

import (
	"strings"

	"greenchain/internal/model"
)

// "All" (or empty) disables a category/status filter.
const FilterAll = "All"

func matches(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func filterActive(value string) bool {
	return value != "" && value != FilterAll
}

// InventoryFilter narrows the inventory list. Search matches item name or
// supplier as a case-insensitive substring.
type InventoryFilter struct {
	Search   string
	Category string
	Status   string
}

func FilterInventory(items []model.InventoryItem, f InventoryFilter) []model.InventoryItem {
	out := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if !matches(f.Search, item.Name, item.Supplier) {
			continue
		}
		if filterActive(f.Category) && item.Category != f.Category {
			continue
		}
		if filterActive(f.Status) && item.Status != f.Status {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FilterOrders matches the order ID or customer name as a case-insensitive
// substring.
func FilterOrders(orders []model.Order, search string) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if matches(search, o.ID, o.Customer) {
			out = append(out, o)
		}
	}
	return out
}

// SupplierFilter narrows the supplier list. Search matches supplier name or
// location.
type SupplierFilter struct {
	Search   string
	Category string
}

func FilterSuppliers(suppliers []model.Supplier, f SupplierFilter) []model.Supplier {
	out := make([]model.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if !matches(f.Search, s.Name, s.Location) {
			continue
		}
		if filterActive(f.Category) && s.Category != f.Category {
			continue
		}
		out = append(out, s)
	}
	return out
}

// InventoryCategories returns the distinct categories present in the
// inventory, in first-seen order.
func InventoryCategories(items []model.InventoryItem) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}
