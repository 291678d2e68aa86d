package main

import (
	"fmt"
	"math/rand/v2"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

var (
	generateCategory string
	generateCount    int
	generateSeed     uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Invent random Proto-Kasanic lemmas and show their Lauvinko reflexes",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateCategory, "category", semantics.Uninflected.String(), "stem category")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 10, "number of lemmas")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "random seed; 0 picks one")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	category, err := semantics.ParseStemCategory(generateCategory)
	if err != nil {
		return err
	}
	if generateCount < 1 {
		return fmt.Errorf("--count must be positive, got %d", generateCount)
	}
	seed := generateSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for range generateCount {
		l := pk.RandomLemma(rng, category)
		stem, err := l.CitationForm()
		if err != nil {
			return err
		}
		sf, err := stem.SurfaceForm()
		if err != nil {
			return err
		}
		reflex, err := lv.FromProto(l, "", nil)
		if err != nil {
			return err
		}
		m, err := reflex.CitationForm(lv.NonAugmented)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Generic, pk.Romanize(sf, false),
			m.Surface.HistoricalTranscription(), lv.Romanize(m.Surface))
	}
	return tw.Flush()
}
