package menu

import (
	"context"
	"time"

	"menu-manager/core/cache"

	"go.uber.org/zap"
)

// invalidateTimeout bounds each background invalidation sweep.
const invalidateTimeout = 5 * time.Second

// Invalidator drops cache entries made stale by a mutation. Invalidation is
// fire-and-forget: the mutation has already committed, so a failed delete
// only extends staleness until the TTL expires.
type Invalidator struct {
	store  cache.Store
	logger *zap.Logger
}

// NewInvalidator creates an invalidator over the given cache store.
func NewInvalidator(store cache.Store, logger *zap.Logger) *Invalidator {
	return &Invalidator{store: store, logger: logger}
}

func (i *Invalidator) drop(keys ...string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
		defer cancel()

		if err := i.store.Delete(ctx, keys...); err != nil {
			i.logger.Warn("cache invalidation failed",
				zap.Strings("keys", keys),
				zap.Error(err))
		}
	}()
}

func (i *Invalidator) dropByPattern(patterns ...string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
		defer cancel()

		if err := i.store.DeleteByPattern(ctx, patterns...); err != nil {
			i.logger.Warn("cache pattern invalidation failed",
				zap.Strings("patterns", patterns),
				zap.Error(err))
		}
	}()
}

// MenuCreated invalidates the list views a new menu appears in.
func (i *Invalidator) MenuCreated() {
	i.drop(KeyMenus, KeyFullHierarchy)
}

// MenuUpdated invalidates the menu's detail view and the lists containing it.
func (i *Invalidator) MenuUpdated(menuID string) {
	i.drop(KeyMenus, KeyFullHierarchy, KeyMenu(menuID))
}

// MenuDeleted invalidates the whole subtree under the menu.
func (i *Invalidator) MenuDeleted(menuID string) {
	i.drop(KeyMenus, KeyFullHierarchy, KeySubmenus(menuID))
	i.dropByPattern(KeyMenu(menuID)+"*", "get_dishes:"+menuID+":*")
}

// SubmenuCreated invalidates the views a new submenu appears in.
func (i *Invalidator) SubmenuCreated(menuID string) {
	i.drop(KeyMenus, KeyFullHierarchy, KeyMenu(menuID), KeySubmenus(menuID))
}

// SubmenuUpdated invalidates the submenu's detail view and its parent lists.
func (i *Invalidator) SubmenuUpdated(menuID, submenuID string) {
	i.drop(KeyFullHierarchy, KeySubmenus(menuID), KeySubmenu(menuID, submenuID))
}

// SubmenuDeleted invalidates the subtree under the submenu.
func (i *Invalidator) SubmenuDeleted(menuID, submenuID string) {
	i.drop(KeyMenus, KeyFullHierarchy, KeyMenu(menuID), KeySubmenus(menuID),
		KeyDishes(menuID, submenuID))
	i.dropByPattern(KeySubmenu(menuID, submenuID) + "*")
}

// DishCreated invalidates the views a new dish appears in.
func (i *Invalidator) DishCreated(menuID, submenuID string) {
	i.drop(KeyMenus, KeyFullHierarchy, KeyMenu(menuID), KeySubmenus(menuID),
		KeySubmenu(menuID, submenuID), KeyDishes(menuID, submenuID))
}

// DishUpdated invalidates the dish's detail view and its parent list.
func (i *Invalidator) DishUpdated(menuID, submenuID, dishID string) {
	i.drop(KeyFullHierarchy, KeyDishes(menuID, submenuID),
		KeyDish(menuID, submenuID, dishID))
}

// DishDeleted invalidates the views the dish appeared in, along with its
// discount overlay entry.
func (i *Invalidator) DishDeleted(menuID, submenuID, dishID string) {
	i.drop(KeyMenus, KeyFullHierarchy, KeyMenu(menuID), KeySubmenus(menuID),
		KeySubmenu(menuID, submenuID), KeyDishes(menuID, submenuID),
		KeyDish(menuID, submenuID, dishID), KeyDiscount(dishID))
}
