// SPDX-License-Identifier: MIT

// Package dataset: sentinel error set shared by all format adapters.
// Adapters MUST return these sentinels for structural failures and tests
// MUST check them via errors.Is. Row-level anomalies (short/long rows,
// unterminated quotes, out-of-range sparse indices) are repaired silently
// and never surface as errors. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) — callers still match with errors.Is.

package dataset

import "errors"

var (
	// ErrFormatMismatch indicates the file's detected format disagrees with
	// the adapter's declared format (e.g. an .arff path given to csvreader).
	ErrFormatMismatch = errors.New("dataset: declared and detected formats disagree")

	// ErrEmptySource indicates no header line could be found in the source.
	ErrEmptySource = errors.New("dataset: no header found in source")

	// ErrMissingDataSection indicates the structural data-section marker
	// (@data) is absent from a declaration-style header.
	ErrMissingDataSection = errors.New("dataset: data section not found")

	// ErrNotBound indicates NextRecord was called before a successful
	// BindSource.
	ErrNotBound = errors.New("dataset: no stream bound")
)
