// SPDX-License-Identifier: MIT

// Package dataset: domain types populated by the statistics pass.
// This file contains ONLY the catalog model (Attribute, Selector, Kind);
// errors and options live in dedicated files per the package conventions.

package dataset

import "fmt"

// NullSymbol is the normalized missing-value token for delimited-text
// sources. Sparse/dense binary sources encode absence structurally as "0"
// instead; the two conventions carry different domain meanings (true
// missing vs. structural absence) and are intentionally not unified.
const NullSymbol = "?"

// Kind classifies an attribute. The ingestion layer performs no typing
// beyond a single undifferentiated category kind.
type Kind uint8

const (
	// Category is the only attribute kind; every value is a literal token.
	Category Kind = iota
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k == Category {
		return "category"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Selector is one (attribute, value) pair with an observed frequency —
// the atomic candidate unit for pattern mining. Frequency counts the rows
// where the attribute holds the value, excluding null-symbol occurrences.
// It is mutated only during one statistics scan and read-only afterward.
type Selector struct {
	AttrID    int    // dense, 0-based, equals column position
	AttrName  string // denormalized attribute name, for convenience
	Value     string // literal token
	Frequency int    // monotonically non-decreasing during the scan
}

// Attribute is one column/feature of the source dataset: id, name, kind
// and an insertion-ordered mapping from literal value to its Selector.
// A value never observed during the statistics scan has implicit
// frequency zero and no Selector entry.
type Attribute struct {
	ID   int
	Name string
	Kind Kind

	values map[string]*Selector
	order  []string // insertion order of distinct values
}

// NewAttribute builds an empty category attribute with the given dense id
// and name.
func NewAttribute(id int, name string) *Attribute {
	return &Attribute{
		ID:     id,
		Name:   name,
		Kind:   Category,
		values: make(map[string]*Selector),
	}
}

// Observe records one occurrence of value on the attribute, creating the
// Selector on first sight. Called by adapters during the statistics scan
// only; the streaming pass never mutates the catalog.
func (a *Attribute) Observe(value string) *Selector {
	if s, ok := a.values[value]; ok {
		s.Frequency++
		return s
	}

	s := &Selector{AttrID: a.ID, AttrName: a.Name, Value: value, Frequency: 1}
	a.values[value] = s
	a.order = append(a.order, value)

	return s
}

// SetFrequency installs a selector with a precomputed frequency, used by
// adapters that tally outside the catalog (sparse/dense binary counting).
func (a *Attribute) SetFrequency(value string, freq int) *Selector {
	if s, ok := a.values[value]; ok {
		s.Frequency = freq
		return s
	}

	s := &Selector{AttrID: a.ID, AttrName: a.Name, Value: value, Frequency: freq}
	a.values[value] = s
	a.order = append(a.order, value)

	return s
}

// Selector returns the selector for value, or (nil, false) when the value
// was never observed.
func (a *Attribute) Selector(value string) (*Selector, bool) {
	s, ok := a.values[value]
	return s, ok
}

// Selectors returns the attribute's selectors in insertion order.
// Deterministic: no map iteration.
func (a *Attribute) Selectors() []*Selector {
	out := make([]*Selector, 0, len(a.order))
	for _, v := range a.order {
		out = append(out, a.values[v])
	}

	return out
}

// NumValues returns the count of distinct observed values.
func (a *Attribute) NumValues() int { return len(a.order) }
