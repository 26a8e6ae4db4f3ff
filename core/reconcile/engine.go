package reconcile

// Diff compares the online set (system of record) against the offline set
// (authoritative external source) and returns the minimal action sets that
// converge online toward offline.
//
// Output ordering is deterministic: Create and Update preserve offline
// document order, Delete preserves online order. Callers own cross-level
// sequencing (deletions leaf-to-root, creations root-to-leaf); within one
// level the returned order is safe to apply as-is.
func Diff[T Record](online, offline []T, equal func(a, b T) bool) Changes[T] {
	onlineByID := make(map[string]T, len(online))
	for _, rec := range online {
		onlineByID[rec.RecordID()] = rec
	}

	offlineIDs := make(map[string]struct{}, len(offline))

	var changes Changes[T]

	for _, rec := range offline {
		id := rec.RecordID()
		offlineIDs[id] = struct{}{}

		current, exists := onlineByID[id]
		if !exists {
			changes.Create = append(changes.Create, rec)
			continue
		}
		if !equal(current, rec) {
			changes.Update = append(changes.Update, rec)
		}
	}

	for _, rec := range online {
		if _, exists := offlineIDs[rec.RecordID()]; !exists {
			changes.Delete = append(changes.Delete, rec)
		}
	}

	return changes
}
