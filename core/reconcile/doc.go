// Package reconcile provides a generic engine for converging an "online" set
// of records (the system of record) toward an "offline" set (an authoritative
// external source).
//
// # Model
//
// Records are matched by identifier (Record.RecordID). For each level the
// engine computes three action sets:
//
//   - Delete: present online, absent offline
//   - Create: present offline, absent online
//   - Update: present in both, content differs (per the caller's equal func)
//
// The engine is purely computational: it never mutates anything and never
// mints identifiers. Callers apply the resulting Changes in an order that
// respects parent-child containment (deletions leaf-to-root, creations and
// updates root-to-leaf) — see feature/menu/sync for the three-level driver.
//
// # Usage
//
//	changes := reconcile.Diff(online, offline, func(a, b MenuRecord) bool {
//	    return a == b
//	})
//	for _, m := range changes.Delete { ... }
package reconcile
