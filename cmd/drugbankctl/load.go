package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/audit"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/model"
	gormstore "github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store/gorm"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Import an export into the database",
	Long: `Import an export into the database.

The imported tables are replaced in one transaction, so readers see either
the previous export or the new one. Each import is recorded in load_runs.

Requires database_url (or DATABASE_URL) and a migrated schema.

Example:
  drugbankctl load data/drugbank_partial.xml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database, err := connectDatabase(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load: %v\n", err)
			os.Exit(1)
		}

		if _, err := runLoad(cmd.Context(), cmd.OutOrStdout(), database, xmlPathArg(args)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(ctx context.Context, w io.Writer, database *gorm.DB, path string) (*model.LoadRun, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	// An unreadable export must not replace what is already loaded.
	set, err := readExport(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	event := audit.LoadEvent{Source: path, Target: "postgres", Drugs: len(set.Drugs)}
	run, err := gormstore.NewDrugsStore(database).Import(ctx, set, path)
	if err != nil {
		event.ErrorMessage = err.Error()
		audit.Log(event)
		return nil, err
	}
	event.Success = true
	event.RunID = run.ID.String()
	audit.Log(event)

	logger.Info("imported export",
		zap.String("source", path),
		zap.String("run", run.ID.String()),
		zap.Int("drugs", run.DrugCount),
	)
	_, _ = okColor.Fprintf(w, "Loaded %d drugs from %s\n", run.DrugCount, path)
	fmt.Fprintf(w, "Run: %s\n", run.ID)
	return run, nil
}
