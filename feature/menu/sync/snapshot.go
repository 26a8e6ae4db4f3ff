package sync

import (
	"context"

	"menu-manager/feature/menu/models"

	"github.com/shopspring/decimal"
)

// Catalog is the catalog surface the sync worker mutates. All creates carry
// sheet-assigned ids; the worker never mints identifiers of its own. It is
// implemented by the menu feature's catalog adapter.
type Catalog interface {
	FullHierarchy(ctx context.Context) ([]models.MenuTree, error)

	CreateMenu(ctx context.Context, id, title, description string) error
	UpdateMenu(ctx context.Context, id, title, description string) error
	DeleteMenu(ctx context.Context, id string) error

	CreateSubmenu(ctx context.Context, menuID, id, title, description string) error
	UpdateSubmenu(ctx context.Context, menuID, id, title, description string) error
	DeleteSubmenu(ctx context.Context, menuID, id string) error

	CreateDish(ctx context.Context, menuID, submenuID, id, title, description string, price decimal.Decimal) error
	UpdateDish(ctx context.Context, menuID, submenuID, id, title, description string, price decimal.Decimal) error
	DeleteDish(ctx context.Context, menuID, submenuID, id string) error
}

// Snapshot flattens the nested hierarchy into the three flat record sets the
// engine compares. Dish discounts are left nil here; the overlay fills them
// in afterwards so that online and offline dish records compare field for
// field.
func Snapshot(trees []models.MenuTree) ([]MenuRecord, []SubmenuRecord, []DishRecord) {
	var menus []MenuRecord
	var submenus []SubmenuRecord
	var dishes []DishRecord

	for _, m := range trees {
		menus = append(menus, MenuRecord{
			ID: m.ID, Title: m.Title, Description: m.Description,
		})
		for _, s := range m.Submenus {
			submenus = append(submenus, SubmenuRecord{
				ID: s.ID, Title: s.Title, Description: s.Description, MenuID: m.ID,
			})
			for _, d := range s.Dishes {
				dishes = append(dishes, DishRecord{
					ID: d.ID, Title: d.Title, Description: d.Description,
					Price: d.Price, SubmenuID: s.ID, MenuID: m.ID,
				})
			}
		}
	}

	return menus, submenus, dishes
}
