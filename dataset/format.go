// SPDX-License-Identifier: MIT

package dataset

import (
	"path/filepath"
	"strings"
)

// Format identifies a source encoding. Adapters declare one Format and
// fail with ErrFormatMismatch when a path detects as a different one.
type Format uint8

const (
	// FormatUnknown marks an unrecognized file extension.
	FormatUnknown Format = iota
	// FormatCSV marks delimited-text sources (.csv).
	FormatCSV
	// FormatARFF marks sparse/dense binary-matrix sources (.arff).
	FormatARFF
)

// String returns the conventional lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatARFF:
		return "arff"
	default:
		return "unknown"
	}
}

// DetectFormat classifies a path by its extension, case-insensitively.
// Detection is purely lexical; content sniffing is not performed.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".arff":
		return FormatARFF
	default:
		return FormatUnknown
	}
}
