// SPDX-License-Identifier: MIT

package dataset

// Reader is the shared capability set every format adapter exposes:
// configuration, lifecycle operations and derived counters. Both passes
// are fully sequential, single-threaded scans over the same logical
// source; each adapter owns its stream handle exclusively.
//
// Contract:
//   - FetchInfo opens the source once, parses structural header content
//     into the attribute catalog, scans every data row exactly once
//     incrementing selector frequencies, and freezes the derived
//     counters. Structural failures return ErrFormatMismatch,
//     ErrEmptySource or ErrMissingDataSection; underlying read errors
//     propagate wrapped. No partial catalog survives a failure.
//   - BindSource (re)opens a stream positioned immediately after the
//     structural header, closing any prior handle first. Idempotent.
//   - NextRecord returns the next record as a token array of length
//     exactly AttrCount, or io.EOF at exhaustion. Malformed rows are
//     repaired (pad/truncate/clip), never rejected.
type Reader interface {
	// FetchInfo runs the statistics computation over path.
	FetchInfo(path string, targetAttrCount int, supportThreshold float64) error

	// BindSource opens (or reopens) the streaming pass over path.
	BindSource(path string) error

	// NextRecord returns the next normalized fixed-width token array,
	// io.EOF at end of stream, or ErrNotBound before any BindSource.
	NextRecord() ([]string, error)

	// Close releases the bound stream handle, if any.
	Close() error

	// Format reports the adapter's declared source format.
	Format() Format

	// Attributes returns the catalog built by the last FetchInfo, in
	// dense id order.
	Attributes() []*Attribute

	// AttrCount is the fixed total attribute count.
	AttrCount() int
	// TargetAttrCount is the declared target attribute count.
	TargetAttrCount() int
	// PredictAttrCount is AttrCount minus TargetAttrCount (never negative).
	PredictAttrCount() int
	// RowCount is the number of non-blank records seen by FetchInfo.
	RowCount() int
	// MinSupCount is the absolute minimum support derived from RowCount
	// and the support threshold, frozen by FetchInfo.
	MinSupCount() int
}
