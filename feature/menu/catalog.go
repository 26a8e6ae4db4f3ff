package menu

import (
	"context"

	"menu-manager/feature/menu/models"

	"github.com/shopspring/decimal"
)

// Catalog exposes the catalog operations used by the sheet sync worker.
// Creates carry the sheet-assigned id so the next pass recognizes its own
// creations, and the hierarchy snapshot bypasses the read cache: the worker
// must diff against the store as it is now, not as it was cached. Each
// mutation triggers the same cache invalidation as its HTTP counterpart.
type Catalog struct {
	service *Service
}

// NewCatalog creates a catalog adapter over the service.
func NewCatalog(service *Service) *Catalog {
	return &Catalog{service: service}
}

// FullHierarchy returns the complete nested catalog as one snapshot, read
// straight from the store.
func (c *Catalog) FullHierarchy(ctx context.Context) ([]models.MenuTree, error) {
	return c.service.repo.FullHierarchy(ctx)
}

// CreateMenu inserts a menu with the given id.
func (c *Catalog) CreateMenu(ctx context.Context, id, title, description string) error {
	_, err := c.service.CreateMenu(ctx, id, title, description)
	return err
}

// UpdateMenu updates a menu's title and description.
func (c *Catalog) UpdateMenu(ctx context.Context, id, title, description string) error {
	_, err := c.service.UpdateMenu(ctx, id, title, description)
	return err
}

// DeleteMenu deletes a menu and its subtree.
func (c *Catalog) DeleteMenu(ctx context.Context, id string) error {
	return c.service.DeleteMenu(ctx, id)
}

// CreateSubmenu inserts a submenu with the given id under a menu.
func (c *Catalog) CreateSubmenu(ctx context.Context, menuID, id, title, description string) error {
	_, err := c.service.CreateSubmenu(ctx, menuID, id, title, description)
	return err
}

// UpdateSubmenu updates a submenu's title and description.
func (c *Catalog) UpdateSubmenu(ctx context.Context, menuID, id, title, description string) error {
	_, err := c.service.UpdateSubmenu(ctx, menuID, id, title, description)
	return err
}

// DeleteSubmenu deletes a submenu and its dishes.
func (c *Catalog) DeleteSubmenu(ctx context.Context, menuID, id string) error {
	return c.service.DeleteSubmenu(ctx, menuID, id)
}

// CreateDish inserts a dish with the given id under a submenu.
func (c *Catalog) CreateDish(ctx context.Context, menuID, submenuID, id, title, description string, price decimal.Decimal) error {
	_, err := c.service.CreateDish(ctx, menuID, submenuID, id, title, description, price)
	return err
}

// UpdateDish updates a dish's title, description, and price.
func (c *Catalog) UpdateDish(ctx context.Context, menuID, submenuID, id, title, description string, price decimal.Decimal) error {
	_, err := c.service.UpdateDish(ctx, menuID, submenuID, id, title, description, price)
	return err
}

// DeleteDish deletes a dish.
func (c *Catalog) DeleteDish(ctx context.Context, menuID, submenuID, id string) error {
	return c.service.DeleteDish(ctx, menuID, submenuID, id)
}
