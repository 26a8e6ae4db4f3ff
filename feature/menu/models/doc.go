// Package models defines the catalog's persistence and response models.
//
// The hierarchy is three levels: Menu → Submenu → Dish. Child rows carry a
// foreign key to their parent with ON DELETE CASCADE, so deleting a parent
// removes the whole subtree at the store layer.
//
// Titles are unique per level. Prices are stored as decimal(10,2); the store
// always holds the pre-discount price, with discounted prices carried in the
// cache overlay only (see feature/menu/sync).
package models
