package reconcile

// Record is implemented by any entity carrying a stable identifier.
// Identity equality between an online and an offline record is defined by
// RecordID equality; content equality is supplied per call via an equal func.
type Record interface {
	RecordID() string
}

// Changes holds the action sets computed by Diff for one entity level.
type Changes[T Record] struct {
	// Create contains offline records with no online counterpart.
	Create []T
	// Update contains offline records whose online counterpart differs in content.
	Update []T
	// Delete contains online records with no offline counterpart.
	Delete []T
}

// Empty reports whether the diff produced no actions.
func (c Changes[T]) Empty() bool {
	return len(c.Create) == 0 && len(c.Update) == 0 && len(c.Delete) == 0
}

// Summary provides aggregate counts for a computed diff.
type Summary struct {
	Creates int `json:"creates"`
	Updates int `json:"updates"`
	Deletes int `json:"deletes"`
}

// Summary returns the aggregate counts of the diff.
func (c Changes[T]) Summary() Summary {
	return Summary{
		Creates: len(c.Create),
		Updates: len(c.Update),
		Deletes: len(c.Delete),
	}
}
