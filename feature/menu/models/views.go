package models

import "github.com/shopspring/decimal"

// MenuDetail is a menu with its aggregate counts.
type MenuDetail struct {
	Menu
	SubmenusCount int64 `json:"submenus_count"`
	DishesCount   int64 `json:"dishes_count"`
}

// SubmenuDetail is a submenu with its aggregate dish count.
type SubmenuDetail struct {
	Submenu
	DishesCount int64 `json:"dishes_count"`
}

// DishView is a dish with the discounted price overlaid from the cache.
// Discount is nil when no discount applies.
type DishView struct {
	Dish
	Discount *decimal.Decimal `json:"discount"`
}

// SubmenuTree is a submenu with its nested dishes.
type SubmenuTree struct {
	Submenu
	Dishes []Dish `json:"dishes"`
}

// MenuTree is a menu with its fully nested hierarchy. It is the transport
// shape of the full-hierarchy snapshot consumed by the sync worker.
type MenuTree struct {
	Menu
	Submenus []SubmenuTree `json:"submenus"`
}
