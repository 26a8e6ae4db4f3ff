// Package sync keeps the catalog converged toward a spreadsheet kept in
// object storage. The worksheet is the authoritative offline state; the
// database is the online state to be corrected on every pass.
//
// One pass runs parse → snapshot → overlay → diff → apply. The worksheet is
// parsed tolerantly (bad rows are skipped, never fatal), the catalog is read
// as one full snapshot, discounted prices are overlaid from the cache so both
// sides compare symmetrically, and the per-level change sets are applied with
// deletions leaf to root and creations root to leaf.
//
// Failure containment follows the data's blast radius: a source that cannot
// be read aborts the pass before any mutation, a single rejected mutation is
// logged and skipped, and a failed cache write only delays the discount until
// the next pass.
package sync
