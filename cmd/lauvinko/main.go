// Command lauvinko evolves Proto-Kasanic forms into Lauvinko, reads
// transcriptions and glosses, and exports the dictionary's paradigms.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lauvinko/lauvinko"
	"github.com/lauvinko/lauvinko/internal/config"
	"github.com/lauvinko/lauvinko/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lauvinko",
	Short: "Proto-Kasanic to Lauvinko sound changes and dictionary tools",
	Long: `lauvinko applies the historical sound changes from Proto-Kasanic to
Lauvinko, parses transcriptions in either language and renders glosses
against the dictionary.

Settings are read from lauvinko.yaml when present; see --config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		logger, err = logging.New(cfg.Log)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level, including every sound change stage")

	rootCmd.AddCommand(
		evolveCmd,
		parseCmd,
		glossCmd,
		paradigmCmd,
		diffcheckCmd,
		exportCmd,
		generateCmd,
	)
}

// loadDictionary reads the configured dictionary file.
func loadDictionary() (*lauvinko.Dictionary, error) {
	d, err := lauvinko.Load(cfg.Dictionary)
	if err != nil {
		return nil, err
	}
	logger.Debug("dictionary loaded", zap.String("path", cfg.Dictionary), zap.Int("entries", d.Len()))
	return d, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
