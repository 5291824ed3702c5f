// p3cstats drives the P3C ingestion layer from the command line:
// it runs the statistics pass over a dataset file, streams normalized
// records, and produces benchmark-style per-efficiency output files the
// way the mining benchmark harness expects them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "p3cstats",
		Short: "Inspect and stream P3C dataset sources",
		Long: `p3cstats runs the ingestion layer of the P3C pattern-mining pipeline
over a delimited-text (.csv) or sparse/dense binary (.arff) dataset:
the statistics pass builds the attribute catalog and selector
frequencies, the streaming pass re-emits every record as a fixed-width
normalized token array.`,
	}

	infoCmd = &cobra.Command{
		Use:   "info [file]",
		Short: "Run the statistics pass and print the attribute catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
	streamCmd = &cobra.Command{
		Use:   "stream [file]",
		Short: "Stream every record as a normalized fixed-width token array",
		Args:  cobra.ExactArgs(1),
		RunE:  runStream,
	}
	sweepCmd = &cobra.Command{
		Use:   "sweep [file]",
		Short: "Re-run the statistics pass per efficiency value, one output file each",
		Long: `sweep repeats the full ingestion scan once per efficiency value and
writes each run's summary to <output-dir>/<stem>_ingest_effc<N>.txt,
mirroring the file layout of the mining benchmark harness. With
--fixed the values come from --efficiencies; otherwise the schedule
doubles from --start-efficiency for ten runs.`,
		Args: cobra.ExactArgs(1),
		RunE: runSweep,
	}

	// shared flags
	delimiter   string
	targetCount int
	support     float64
	verbose     bool

	// sweep flags
	outputDir       string
	efficiencies    []int
	startEfficiency int
	fixedSchedule   bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&delimiter, "delimiter", "d", ",", "single-character token delimiter")
	rootCmd.PersistentFlags().IntVarP(&targetCount, "target-count", "t", 0, "number of target attributes (delimited text only)")
	rootCmd.PersistentFlags().Float64VarP(&support, "support", "s", 0.01, "relative support threshold")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log scan diagnostics to stderr")

	sweepCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "data/output", "directory for per-run output files")
	sweepCmd.Flags().IntSliceVar(&efficiencies, "efficiencies", []int{10, 20, 30, 40, 50, 100, 150, 200, 250, 300, 350, 400}, "fixed efficiency values (with --fixed)")
	sweepCmd.Flags().IntVar(&startEfficiency, "start-efficiency", 10, "first efficiency of the doubling schedule")
	sweepCmd.Flags().BoolVar(&fixedSchedule, "fixed", false, "use the fixed --efficiencies list instead of doubling")

	rootCmd.AddCommand(infoCmd, streamCmd, sweepCmd)
}

// scanLogger builds the diagnostics logger handed to adapters; silent
// unless --verbose.
func scanLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
