// Package menu serves the three-level catalog hierarchy over HTTP: menus,
// their submenus, and the dishes inside each submenu.
//
// Reads go through a read-through cache keyed per view, with singleflight
// collapsing concurrent misses into one database query. Writes hit the
// database first and then invalidate the affected cache keys in the
// background; a failed invalidation only extends staleness until the TTL.
//
// Dish reads overlay discounted prices from the cache entries written by the
// sync worker (see feature/menu/sync). The database itself never stores
// discounted prices.
package menu
