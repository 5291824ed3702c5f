package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leo890106/P3C/dataset"
)

// TestOpenReader picks the adapter by detected format.
func TestOpenReader(t *testing.T) {
	delimiter = ","

	r, err := openReader("x.csv")
	require.NoError(t, err)
	assert.Equal(t, dataset.FormatCSV, r.Format())

	r, err = openReader("x.arff")
	require.NoError(t, err)
	assert.Equal(t, dataset.FormatARFF, r.Format())

	_, err = openReader("x.bin")
	assert.Error(t, err)

	delimiter = "multi"
	_, err = openReader("x.csv")
	assert.Error(t, err)
	delimiter = ","
}

// TestOpenReader_ReservedDelimiter rejects tokenizer-reserved runes with a
// flag error instead of reaching the option constructor's panic.
func TestOpenReader_ReservedDelimiter(t *testing.T) {
	defer func() { delimiter = "," }()

	for _, reserved := range []string{`"`, "\n", "\r", "\x00"} {
		delimiter = reserved
		assert.NotPanics(t, func() {
			_, err := openReader("x.csv")
			assert.Error(t, err)
		})
	}
}

// TestSweepRun verifies the per-efficiency output file naming and that a
// run's summary lands in it.
func TestSweepRun(t *testing.T) {
	delimiter = ","
	targetCount = 0
	support = 0.5
	outputDir = t.TempDir()

	src := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b\nx,y\nx,z\n"), 0o644))

	require.NoError(t, sweepRun(src, 10))

	data, err := os.ReadFile(filepath.Join(outputDir, "train_ingest_effc10.txt"))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "efficiency      : 10")
	assert.Contains(t, out, "rows            : 2")
	assert.Contains(t, out, "min sup count   : 1")
}
