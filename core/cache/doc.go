// Package cache provides the Redis-backed read cache.
//
// It exposes a small Store interface (Get/Set/Delete/DeleteByPattern) so that
// services and the sync worker can be tested against mocks without a live
// Redis instance. Entries are stored as JSON.
//
// # TTL policy
//
// Regular entries (menu lists, details) carry the bounded default TTL from
// Config.TTLSeconds. Discount overlay entries (`dish:{id}`) are deliberately
// long-lived (Config.DiscountTTLSeconds, zero = no expiry): they must survive
// at least one full sync interval, since the sync pass is the only writer.
//
// # Consistency
//
// Cache invalidation is fire-and-forget relative to database mutations: a
// failed invalidation is logged and the entry's natural TTL is the fallback
// consistency mechanism.
package cache
