package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lauvinko/lauvinko/internal/logging"
	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

var (
	evolveContext string
	evolveStress  int
	parseLang     string
)

var evolveCmd = &cobra.Command{
	Use:   "evolve <proto-form>...",
	Short: "Evolve Proto-Kasanic forms into Lauvinko",
	Long: `Applies the sound changes to each Proto-Kasanic transcription, e.g.
"paaraye+N". With --verbose every intermediate stage is logged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEvolve,
}

var parseCmd = &cobra.Command{
	Use:   "parse <transcription>...",
	Short: "Parse transcriptions and print their renderings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	evolveCmd.Flags().StringVar(&evolveContext, "ctx", "na", "context: au, na or pf")
	evolveCmd.Flags().IntVar(&evolveStress, "stress", 0, "stressed syllable, counted from 0")
	parseCmd.Flags().StringVar(&parseLang, "lang", string(semantics.Lauvinko), "language of the transcriptions: pk or lv")
}

func runEvolve(cmd *cobra.Command, args []string) error {
	ctx, err := lv.ParseContext(evolveContext)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, text := range args {
		m, err := pk.ParseMorpheme(text)
		if err != nil {
			return err
		}
		sf, err := m.SurfaceForm(evolveStress)
		if err != nil {
			return fmt.Errorf("%s: %w", text, err)
		}
		var result lv.SurfaceForm
		if verbose {
			result, err = lv.EvolveTraced(sf, ctx, logging.Tracer(logger, text))
		} else {
			result, err = lv.Evolve(sf, ctx)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", text, err)
		}
		logger.Debug("evolved", zap.String("input", text), zap.String("context", ctx.String()))
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", text, result.HistoricalTranscription(),
			result.NarrowTranscription(), lv.Romanize(result))
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, text := range args {
		switch semantics.Language(parseLang) {
		case semantics.ProtoKasanic:
			m, err := pk.ParseMorpheme(text)
			if err != nil {
				return err
			}
			sf, err := m.SurfaceForm(0)
			if err != nil {
				return fmt.Errorf("%s: %w", text, err)
			}
			printProto(out, text, sf)
		case semantics.Lauvinko:
			m, err := lv.ParseMorpheme(text)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n", text, m.Surface.BroadTranscription(),
				m.Surface.NarrowTranscription(), lv.Romanize(m.Surface), m.Falavay())
		default:
			return fmt.Errorf("unknown language %q", parseLang)
		}
	}
	return nil
}

func printProto(out io.Writer, text string, sf pk.SurfaceForm) {
	fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", text, sf.BroadTranscription(),
		pk.Romanize(sf, sf.Stressed()), pk.Falavay(sf, false))
}
