package menu

// Cache key builders. List keys use a short prefix scheme, detail keys mirror
// the API path so pattern invalidation can sweep a whole subtree at once.

// KeyMenus is the cache key for the menu list.
const KeyMenus = "get_menus"

// KeyFullHierarchy is the cache key for the full nested hierarchy.
const KeyFullHierarchy = "get_full_menu"

// KeyMenu returns the cache key for one menu's detail view.
func KeyMenu(menuID string) string {
	return "/api/v1/menus/" + menuID
}

// KeySubmenus returns the cache key for a menu's submenu list.
func KeySubmenus(menuID string) string {
	return "get_submenus:" + menuID
}

// KeySubmenu returns the cache key for one submenu's detail view.
func KeySubmenu(menuID, submenuID string) string {
	return KeyMenu(menuID) + "/submenus/" + submenuID
}

// KeyDishes returns the cache key for a submenu's dish list.
func KeyDishes(menuID, submenuID string) string {
	return "get_dishes:" + menuID + ":" + submenuID
}

// KeyDish returns the cache key for one dish's detail view.
func KeyDish(menuID, submenuID, dishID string) string {
	return KeySubmenu(menuID, submenuID) + "/dishes/" + dishID
}

// KeyDiscount returns the cache key holding a dish's discounted price. The
// sync worker writes these, the read path overlays them onto dish views.
func KeyDiscount(dishID string) string {
	return "dish:" + dishID
}
