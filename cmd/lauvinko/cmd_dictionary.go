package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lauvinko/lauvinko"
	"github.com/lauvinko/lauvinko/internal/store"
	"github.com/lauvinko/lauvinko/semantics"
)

var exportPath string

var glossCmd = &cobra.Command{
	Use:   "gloss <gloss>",
	Short: "Render an interlinear gloss such as \"if-cut want-rice\"",
	Long: `Resolves every morpheme of the gloss against the dictionary and prints
its analysis, broad and narrow transcriptions, romanization and falavay
spelling. Arguments are joined with spaces.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGloss,
}

var paradigmCmd = &cobra.Command{
	Use:   "paradigm <ident>",
	Short: "Print every form of a dictionary entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runParadigm,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every paradigm to a SQLite database",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportPath, "db", "", "database file (overrides store.path)")
}

func runGloss(cmd *cobra.Command, args []string) error {
	d, err := loadDictionary()
	if err != nil {
		return err
	}
	g, err := lauvinko.ParseGloss(d, strings.Join(args, " "))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, g.Analysis())
	fmt.Fprintln(out, g.BroadTranscription())
	fmt.Fprintln(out, g.NarrowTranscription())
	fmt.Fprintln(out, g.Romanization())
	fmt.Fprintln(out, g.Falavay())
	return nil
}

func runParadigm(cmd *cobra.Command, args []string) error {
	d, err := loadDictionary()
	if err != nil {
		return err
	}
	e, err := d.Entry(args[0])
	if err != nil {
		return err
	}
	forms, err := e.Paradigm()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s %s, %s)\n", e.Ident, e.Origin, e.Category, e.Type)
	for _, lang := range e.Languages() {
		if def := e.Definition(lang); def != "" {
			fmt.Fprintf(out, "  %s: %s\n", lang.Title(), def)
		}
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, f := range forms {
		mark := ""
		if f.Overridden {
			mark = "*"
		}
		transcription := f.Broad
		if f.Language == semantics.Lauvinko {
			transcription = f.Historical
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\t%s\t%s\n", f.Language, f.Key(), mark,
			transcription, f.Narrow, f.Romanization, f.Falavay)
	}
	return tw.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := loadDictionary()
	if err != nil {
		return err
	}
	path := cfg.Store.Path
	if exportPath != "" {
		path = exportPath
	}
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := store.Export(cmd.Context(), db, d, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d entries, %d forms written to %s\n", res.RunID, res.Entries, res.Forms, path)
	return nil
}
