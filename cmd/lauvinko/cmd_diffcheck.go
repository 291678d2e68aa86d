package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lauvinko/lauvinko/diffcheck"
)

var (
	diffSamples int
	diffSeed    uint64
	diffWorkers int
	diffShow    int
)

var diffcheckCmd = &cobra.Command{
	Use:   "diffcheck",
	Short: "Compare lv.Join of evolved pieces with the evolution of joined forms",
	Long: `Draws random pairs of Proto-Kasanic morphemes and checks whether joining
their Lauvinko reflexes gives the same result as evolving the joined
Proto-Kasanic form. Fails when the mismatch rate exceeds
diffcheck.max_mismatch_rate.`,
	Args: cobra.NoArgs,
	RunE: runDiffcheck,
}

func init() {
	diffcheckCmd.Flags().IntVar(&diffSamples, "samples", 0, "number of pairs (overrides diffcheck.samples)")
	diffcheckCmd.Flags().Uint64Var(&diffSeed, "seed", 0, "random seed (overrides diffcheck.seed)")
	diffcheckCmd.Flags().IntVar(&diffWorkers, "workers", 0, "worker goroutines (overrides diffcheck.workers)")
	diffcheckCmd.Flags().IntVar(&diffShow, "show", 10, "mismatches to print")
}

func runDiffcheck(cmd *cobra.Command, args []string) error {
	opts := diffcheck.Options{
		Samples:        cfg.DiffCheck.Samples,
		Seed:           cfg.DiffCheck.Seed,
		Workers:        cfg.DiffCheck.Workers,
		ShowMismatches: diffShow,
		Logger:         logger,
	}
	if cmd.Flags().Changed("samples") {
		opts.Samples = diffSamples
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = diffSeed
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = diffWorkers
	}

	report, err := diffcheck.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, p := range report.Samples {
		fmt.Fprintln(out, p)
	}
	fmt.Fprintf(out, "%d/%d mismatches (%.1f%%), %d errors\n",
		report.Mismatches, report.Total, 100*report.Rate(), report.Errors)
	if report.Rate() > cfg.DiffCheck.MaxMismatchRate {
		return fmt.Errorf("mismatch rate %.3f exceeds %.3f", report.Rate(), cfg.DiffCheck.MaxMismatchRate)
	}
	return nil
}
