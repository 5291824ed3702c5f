// SPDX-License-Identifier: MIT

// Package dataset: functional configuration shared by the format
// adapters. Defaults are documented constants (single source of truth);
// constructors panic only on nonsensical values (programmer error);
// public entry points accept ...Option and resolve via NewOptions.

package dataset

import (
	"io"
	"log/slog"
)

// DefaultDelimiter is the token delimiter used when none is configured.
const DefaultDelimiter = ','

// Internal panic messages (no magic strings).
const (
	panicDelimiterInvalid = "dataset: WithDelimiter: delimiter must be a printable non-quote character"
)

// Option mutates internal options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// Options stores the effective adapter configuration after applying
// Option setters. Fields are unexported; adapters read them through the
// accessor methods.
type Options struct {
	delimiter rune         // single-character token delimiter
	logger    *slog.Logger // scan diagnostics sink; discards by default
}

// Delimiter returns the configured single-character token delimiter.
func (o Options) Delimiter() rune { return o.delimiter }

// Logger returns the configured diagnostics logger (never nil).
func (o Options) Logger() *slog.Logger { return o.logger }

// WithDelimiter sets the token delimiter for delimited rows.
// Panics when d is NUL, a line break, or the double quote (the quote is
// reserved by the tokenizer).
func WithDelimiter(d rune) Option {
	if d == 0 || d == '\n' || d == '\r' || d == '"' {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delimiter = d }
}

// WithLogger routes scan diagnostics (sample rows, header/row totals) to
// l. A nil l restores the discarding default. Diagnostics always go
// through an explicit handle — never process-wide state.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// NewOptions resolves option setters against the documented defaults.
// Pure function; stable for a given sequence of opts.
func NewOptions(opts ...Option) Options {
	o := Options{
		delimiter: DefaultDelimiter,
		logger:    discardLogger(),
	}
	for _, set := range opts {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
