package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/config"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/logging"
)

var (
	verbose bool
	envFile string

	// Set up by the root command before any subcommand runs.
	logger = zap.NewNop()
	cfg    *config.DrugbankConfig
)

var rootCmd = &cobra.Command{
	Use:   "drugbankctl",
	Short: "Parse, explore and serve DrugBank XML exports",
	Long: `drugbankctl reads DrugBank XML exports and projects them into flat tables
(drugs, synonyms, products, pathways, targets, interactions, genes), graph
views and summary reports. It can fabricate larger synthetic exports from the
structure of a real one, import tables into PostgreSQL, and serve a lookup API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before configuration")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
