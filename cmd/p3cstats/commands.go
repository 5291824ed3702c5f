package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Leo890106/P3C/arffreader"
	"github.com/Leo890106/P3C/csvreader"
	"github.com/Leo890106/P3C/dataset"
	"github.com/Leo890106/P3C/selectors"
)

const sweepRunLimit = 10 // doubling-schedule runs, matching the harness

// openReader picks the adapter matching the file's detected format.
func openReader(path string) (dataset.Reader, error) {
	if utf8.RuneCountInString(delimiter) != 1 {
		return nil, fmt.Errorf("p3cstats: --delimiter must be a single character, got %q", delimiter)
	}
	d, _ := utf8.DecodeRuneInString(delimiter)
	switch d {
	case 0, '\n', '\r', '"':
		return nil, fmt.Errorf("p3cstats: --delimiter %q is reserved by the tokenizer", delimiter)
	}
	opts := []dataset.Option{dataset.WithDelimiter(d), dataset.WithLogger(scanLogger())}

	switch f := dataset.DetectFormat(path); f {
	case dataset.FormatCSV:
		return csvreader.New(opts...), nil
	case dataset.FormatARFF:
		return arffreader.New(opts...), nil
	default:
		return nil, fmt.Errorf("p3cstats: unrecognized dataset format for %q", path)
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	r, err := openReader(path)
	if err != nil {
		return err
	}

	start := time.Now()
	if err = r.FetchInfo(path, targetCount, support); err != nil {
		return err
	}
	defer r.Close()
	pool := selectors.Prepare(r)

	return writeSummary(cmd.OutOrStdout(), path, r, pool, time.Since(start))
}

func runStream(cmd *cobra.Command, args []string) error {
	path := args[0]
	r, err := openReader(path)
	if err != nil {
		return err
	}

	// The statistics pass fixes the attribute count the streaming pass
	// pads records to.
	if err = r.FetchInfo(path, targetCount, support); err != nil {
		return err
	}
	if err = r.BindSource(path); err != nil {
		return err
	}
	defer r.Close()

	w := cmd.OutOrStdout()
	for {
		rec, err := r.NextRecord()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, strings.Join(rec, "\t")); err != nil {
			return err
		}
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("p3cstats: sweep: %w", err)
	}

	schedule := efficiencies
	if !fixedSchedule {
		schedule = make([]int, 0, sweepRunLimit)
		for eff, n := startEfficiency, 0; n < sweepRunLimit; eff, n = eff*2, n+1 {
			schedule = append(schedule, eff)
		}
	}

	for _, eff := range schedule {
		if err := sweepRun(path, eff); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "effc=%d done\n", eff)
	}

	return nil
}

// sweepRun re-runs the full ingestion scan and writes the summary to
// <output-dir>/<stem>_ingest_effc<N>.txt. Output goes through an
// explicit file handle — never process-wide redirection.
func sweepRun(path string, efficiency int) error {
	r, err := openReader(path)
	if err != nil {
		return err
	}

	start := time.Now()
	if err = r.FetchInfo(path, targetCount, support); err != nil {
		return err
	}
	defer r.Close()
	pool := selectors.Prepare(r)

	stem := strings.SplitN(filepath.Base(path), ".", 2)[0]
	name := fmt.Sprintf("%s_ingest_effc%d.txt", stem, efficiency)
	out, err := os.Create(filepath.Join(outputDir, name))
	if err != nil {
		return fmt.Errorf("p3cstats: sweep: %w", err)
	}
	defer out.Close()

	fmt.Fprintf(out, "efficiency      : %d\n", efficiency)

	return writeSummary(out, path, r, pool, time.Since(start))
}

// writeSummary prints dataset counters, per-attribute distinct-value
// counts and the prepared selector pool.
func writeSummary(w io.Writer, path string, r dataset.Reader, pool selectors.Prepared, elapsed time.Duration) error {
	fmt.Fprintf(w, "source          : %s (%s)\n", path, r.Format())
	fmt.Fprintf(w, "attributes      : %d (target %d, predictor %d)\n",
		r.AttrCount(), r.TargetAttrCount(), r.PredictAttrCount())
	fmt.Fprintf(w, "rows            : %d\n", r.RowCount())
	fmt.Fprintf(w, "min sup count   : %d\n", r.MinSupCount())
	fmt.Fprintf(w, "scan time       : %s\n", elapsed)
	fmt.Fprintf(w, "selector pool   : %d predictor, %d target\n\n",
		len(pool.Predictor), len(pool.Target))

	for _, attr := range r.Attributes() {
		fmt.Fprintf(w, "attr %4d %-24s %s  distinct=%d\n",
			attr.ID, attr.Name, attr.Kind, attr.NumValues())
	}
	fmt.Fprintln(w)

	for _, s := range pool.Predictor {
		fmt.Fprintf(w, "  (%d:%s = %q) freq=%d\n", s.AttrID, s.AttrName, s.Value, s.Frequency)
	}
	for _, s := range pool.Target {
		fmt.Fprintf(w, "  target (%d:%s = %q) freq=%d\n", s.AttrID, s.AttrName, s.Value, s.Frequency)
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	return nil
}
