package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leo890106/P3C/dataset"
)

// TestAttributeObserve verifies create-on-first-sight and increment
// semantics of the statistics scan.
func TestAttributeObserve(t *testing.T) {
	a := dataset.NewAttribute(2, "color")

	s := a.Observe("red")
	require.NotNil(t, s)
	assert.Equal(t, 2, s.AttrID)
	assert.Equal(t, "color", s.AttrName)
	assert.Equal(t, "red", s.Value)
	assert.Equal(t, 1, s.Frequency)

	a.Observe("red")
	a.Observe("blue")
	again := a.Observe("red")

	assert.Same(t, s, again, "repeated observations hit the same selector")
	assert.Equal(t, 3, s.Frequency)
	assert.Equal(t, 2, a.NumValues())
}

// TestAttributeSelectorLookup verifies that never-observed values have no
// selector entry (implicit frequency zero).
func TestAttributeSelectorLookup(t *testing.T) {
	a := dataset.NewAttribute(0, "size")
	a.Observe("xl")

	s, ok := a.Selector("xl")
	require.True(t, ok)
	assert.Equal(t, 1, s.Frequency)

	_, ok = a.Selector("never-seen")
	assert.False(t, ok)
}

// TestAttributeSelectorsOrder verifies insertion-ordered iteration,
// independent of observation counts.
func TestAttributeSelectorsOrder(t *testing.T) {
	a := dataset.NewAttribute(1, "shape")
	for _, v := range []string{"circle", "square", "circle", "triangle", "square", "circle"} {
		a.Observe(v)
	}

	sels := a.Selectors()
	require.Len(t, sels, 3)
	assert.Equal(t, "circle", sels[0].Value)
	assert.Equal(t, "square", sels[1].Value)
	assert.Equal(t, "triangle", sels[2].Value)
	assert.Equal(t, 3, sels[0].Frequency)
	assert.Equal(t, 2, sels[1].Frequency)
	assert.Equal(t, 1, sels[2].Frequency)
}

// TestAttributeSetFrequency verifies installing a precomputed tally, the
// path the sparse/dense adapter uses.
func TestAttributeSetFrequency(t *testing.T) {
	a := dataset.NewAttribute(3, "f3")

	s := a.SetFrequency("1", 42)
	assert.Equal(t, 42, s.Frequency)
	assert.Equal(t, 1, a.NumValues())

	// overwrite keeps one entry
	a.SetFrequency("1", 7)
	got, ok := a.Selector("1")
	require.True(t, ok)
	assert.Equal(t, 7, got.Frequency)
	assert.Equal(t, 1, a.NumValues())
}

// TestKindString covers the single category kind.
func TestKindString(t *testing.T) {
	assert.Equal(t, "category", dataset.Category.String())
	assert.Equal(t, "Kind(9)", dataset.Kind(9).String())
}
