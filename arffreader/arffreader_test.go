package arffreader_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leo890106/P3C/arffreader"
	"github.com/Leo890106/P3C/dataset"
)

// writeFixture puts content into a temp file and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// drain streams every record from an already-bound reader.
func drain(t *testing.T, r dataset.Reader) [][]string {
	t.Helper()
	var out [][]string
	for {
		rec, err := r.NextRecord()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

const fixture = `% generated matrix
@RELATION demo
@attribute f0 numeric
@ATTRIBUTE 'f 1' numeric
@attribute "f2" numeric
@attribute f3 numeric
@weird directive is ignored
@data
1,0,1.0,true
{0 1, 2 1}
{1:1, 9:1}
% a comment between rows
0,0,0
`

//----------------------------------------------------------------------------//
// Statistics computation
//----------------------------------------------------------------------------//

// TestFetchInfo_Catalog verifies header classification, tolerant name
// parsing and ones-only frequency counting across sparse and dense rows.
func TestFetchInfo_Catalog(t *testing.T) {
	path := writeFixture(t, "d.arff", fixture)
	r := arffreader.New()
	require.NoError(t, r.FetchInfo(path, 5, 0))

	attrs := r.Attributes()
	require.Len(t, attrs, 4)
	assert.Equal(t, "f0", attrs[0].Name)
	assert.Equal(t, "f 1", attrs[1].Name, "single-quoted names keep inner spaces")
	assert.Equal(t, "f2", attrs[2].Name, "double-quoted names are unwrapped")
	assert.Equal(t, "f3", attrs[3].Name)

	assert.Equal(t, 4, r.RowCount(), "comments and blanks are not rows")
	assert.Equal(t, 4, r.AttrCount())
	assert.Equal(t, 0, r.TargetAttrCount(), "target count is fixed to zero")
	assert.Equal(t, 4, r.PredictAttrCount())

	wantFreq := []int{2, 1, 2, 1}
	for i, attr := range attrs {
		s, ok := attr.Selector("1")
		require.True(t, ok, "attr %d", i)
		assert.Equal(t, wantFreq[i], s.Frequency, "attr %d", i)
		assert.Equal(t, 1, attr.NumValues(), "only the one selector is materialized")
	}
}

// TestFetchInfo_NoOnesNoSelector verifies an all-zero attribute gets no
// selector entry at all.
func TestFetchInfo_NoOnesNoSelector(t *testing.T) {
	content := "@attribute f0 numeric\n@attribute f1 numeric\n@data\n1,0\n1,garbage\n"
	path := writeFixture(t, "d.arff", content)

	r := arffreader.New()
	require.NoError(t, r.FetchInfo(path, 0, 0))

	require.Len(t, r.Attributes(), 2)
	assert.Equal(t, 0, r.Attributes()[1].NumValues())
	_, ok := r.Attributes()[1].Selector("0")
	assert.False(t, ok, `"0" is never stored as a selector`)
}

// TestFetchInfo_OneTokens verifies the presence test: 1, 1.0 and true in
// any case count; everything else is zero.
func TestFetchInfo_OneTokens(t *testing.T) {
	content := "@attribute f0 x\n@data\n1\n1.0\ntrue\nTRUE\n True \n0\n2\nyes\n\n"
	path := writeFixture(t, "d.arff", content)

	r := arffreader.New()
	require.NoError(t, r.FetchInfo(path, 0, 0))

	s, ok := r.Attributes()[0].Selector("1")
	require.True(t, ok)
	assert.Equal(t, 5, s.Frequency)
	assert.Equal(t, 8, r.RowCount())
}

// TestFetchInfo_MinSupportFloor verifies floor semantics with no
// floor-to-one adjustment — the documented divergence from the
// delimited-text adapter.
func TestFetchInfo_MinSupportFloor(t *testing.T) {
	content := "@attribute f0 x\n@data\n" + strings.Repeat("1\n", 10)
	cases := []struct {
		name      string
		threshold float64
		want      int
	}{
		{"FloorOfFraction", 0.25, 2}, // floor(2.5) = 2, where csvreader yields 3
		{"ZeroThreshold", 0, 0},
		{"BelowOneStaysZero", 0.05, 0}, // floor(0.5) = 0, no adjustment
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, "d.arff", content)
			r := arffreader.New()
			require.NoError(t, r.FetchInfo(path, 0, tc.threshold))
			assert.Equal(t, tc.want, r.MinSupCount())
		})
	}
}

// TestFetchInfo_StructuralErrors covers the error taxonomy.
func TestFetchInfo_StructuralErrors(t *testing.T) {
	t.Run("MissingDataSection", func(t *testing.T) {
		path := writeFixture(t, "d.arff", "@relation x\n@attribute f0 numeric\n1,0\n")
		err := arffreader.New().FetchInfo(path, 0, 0)
		assert.ErrorIs(t, err, dataset.ErrMissingDataSection)
	})
	t.Run("FormatMismatch", func(t *testing.T) {
		path := writeFixture(t, "d.csv", "a,b\n")
		err := arffreader.New().FetchInfo(path, 0, 0)
		assert.ErrorIs(t, err, dataset.ErrFormatMismatch)
	})
	t.Run("BindFormatMismatch", func(t *testing.T) {
		path := writeFixture(t, "d.csv", "a,b\n")
		err := arffreader.New().BindSource(path)
		assert.ErrorIs(t, err, dataset.ErrFormatMismatch)
	})
	t.Run("MissingFile", func(t *testing.T) {
		err := arffreader.New().FetchInfo(filepath.Join(t.TempDir(), "nope.arff"), 0, 0)
		require.Error(t, err)
		assert.NotErrorIs(t, err, dataset.ErrMissingDataSection)
	})
}

//----------------------------------------------------------------------------//
// Streaming pass
//----------------------------------------------------------------------------//

// TestFetchInfo_LeavesStreamBound verifies the statistics pass ends
// rebound at the data section, ready for NextRecord.
func TestFetchInfo_LeavesStreamBound(t *testing.T) {
	path := writeFixture(t, "d.arff", fixture)
	r := arffreader.New()
	require.NoError(t, r.FetchInfo(path, 0, 0))
	defer r.Close()

	rec, err := r.NextRecord()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "0", "1.0", "true"}, rec)
}

// TestNextRecord_SparseExpansion verifies both pair-separator
// conventions expand to full dense 0/1 arrays with out-of-range indices
// dropped.
func TestNextRecord_SparseExpansion(t *testing.T) {
	content := "@attribute f0 x\n@attribute f1 x\n@attribute f2 x\n@attribute f3 x\n" +
		"@data\n{0 1, 2 1}\n{1:1, 3:1}\n{0 1, 7 1, -2 1}\n{}\n{0 0, 1 junk}\n"
	path := writeFixture(t, "d.arff", content)

	r := arffreader.New()
	require.NoError(t, r.FetchInfo(path, 0, 0))
	defer r.Close()

	recs := drain(t, r)
	require.Len(t, recs, 5)
	assert.Equal(t, []string{"1", "0", "1", "0"}, recs[0])
	assert.Equal(t, []string{"0", "1", "0", "1"}, recs[1])
	assert.Equal(t, []string{"1", "0", "0", "0"}, recs[2], "out-of-range indices dropped silently")
	assert.Equal(t, []string{"0", "0", "0", "0"}, recs[3], "empty sparse row is all zeros")
	assert.Equal(t, []string{"0", "0", "0", "0"}, recs[4], "non-one values expand to zero")
}

// TestNextRecord_DenseRows verifies exact-width passthrough and the
// pad/clip repair of mismatched rows.
func TestNextRecord_DenseRows(t *testing.T) {
	content := "@attribute f0 x\n@attribute f1 x\n@attribute f2 x\n" +
		"@data\n1,0,1\n1,1\n1,0,1,1,1\n"
	path := writeFixture(t, "d.arff", content)

	r := arffreader.New()
	require.NoError(t, r.FetchInfo(path, 0, 0))
	defer r.Close()

	recs := drain(t, r)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"1", "0", "1"}, recs[0])
	assert.Equal(t, []string{"1", "1", "0"}, recs[1], "short dense rows are zero-padded")
	assert.Equal(t, []string{"1", "0", "1"}, recs[2], "long dense rows are clipped")
}

// TestNextRecord_FixedWidth asserts every record has length exactly
// AttrCount across encodings.
func TestNextRecord_FixedWidth(t *testing.T) {
	path := writeFixture(t, "d.arff", fixture)
	r := arffreader.New()
	require.NoError(t, r.FetchInfo(path, 0, 0))
	defer r.Close()

	recs := drain(t, r)
	require.Len(t, recs, 4)
	for _, rec := range recs {
		assert.Len(t, rec, r.AttrCount())
	}
}

// TestNextRecord_Determinism verifies rebinding and re-streaming yields
// an identical sequence with frequencies untouched.
func TestNextRecord_Determinism(t *testing.T) {
	path := writeFixture(t, "d.arff", fixture)
	r := arffreader.New()
	require.NoError(t, r.FetchInfo(path, 0, 0))

	s0, ok := r.Attributes()[0].Selector("1")
	require.True(t, ok)
	freqBefore := s0.Frequency

	first := drain(t, r)
	require.NoError(t, r.BindSource(path))
	second := drain(t, r)
	defer r.Close()

	assert.Equal(t, first, second)
	assert.Equal(t, freqBefore, s0.Frequency)
}

// TestNextRecord_NotBound verifies the guard sentinel.
func TestNextRecord_NotBound(t *testing.T) {
	_, err := arffreader.New().NextRecord()
	assert.ErrorIs(t, err, dataset.ErrNotBound)
}
