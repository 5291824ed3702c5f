// Package dataset defines the shared data model and adapter contract for
// the P3C ingestion layer: attributes, selectors, dataset counters, format
// detection, sentinel errors and configuration options.
//
// 🚀 What is dataset?
//
//	The common ground beneath the concrete format adapters
//	(csvreader, arffreader). It specifies:
//	  • Attribute / Selector — the catalog the statistics pass populates
//	  • Reader — the two-pass scan/stream contract a mining engine
//	    relies on without re-validating structure
//	  • Format — declared-vs-detected source format classification
//	  • Option — functional configuration (delimiter, scan logger)
//
// Two passes, one contract:
//
//	r := csvreader.New()
//	if err := r.FetchInfo("train.csv", 1, 0.25); err != nil { ... } // pass 1
//	pool := selectors.Prepare(r)                                    // candidates
//	if err := r.BindSource("train.csv"); err != nil { ... }         // pass 2
//	for {
//	  rec, err := r.NextRecord()
//	  if errors.Is(err, io.EOF) { break }
//	  if err != nil { ... }
//	  _ = rec // fixed-width normalized token array
//	}
//
// Every record returned by NextRecord has length exactly AttrCount();
// malformed rows are repaired (pad/truncate/clip/drop), never rejected.
// Only structural failures (missing header or data section, format
// mismatch, stream-open failure) propagate as errors.
package dataset
