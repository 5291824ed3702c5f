// Package selectors prepares the candidate selector pool consumed by the
// pattern-mining engine: it filters the populated attribute catalog by
// the minimum support count and orders the survivors most-frequent-first.
//
// Preparation is read-only over the catalog. It runs after the
// statistics pass has frozen all frequencies, so there is never a
// concurrent read of a selector under mutation — guaranteed purely by
// sequencing.
//
// Ordering is deterministic: descending frequency, ties broken by
// attribute id then literal value. No map iteration.
//
// Usage:
//
//	r := arffreader.New()
//	if err := r.FetchInfo("data/items.arff", 0, 0.1); err != nil { ... }
//	pool := selectors.Prepare(r)
//	_ = pool.Predictor // frequent predictor selectors, most frequent first
package selectors
