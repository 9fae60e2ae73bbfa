package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/audit"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/config"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/endpoints"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store"
	gormstore "github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/server/store/memory"
)

// serverOptions selects the backing store of the server command.
type serverOptions struct {
	XMLPath   string
	Watch     bool
	NoMigrate bool
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the DrugBank lookup API",
	Long: `Run the DrugBank lookup API.

With --xml, or when no database is configured, the export is parsed into memory
and served from there; --watch reloads it when the file changes. Otherwise the
tables imported with "drugbankctl load" are served from PostgreSQL, and
database migrations are run on startup unless --no-migrate is given.

When DRUGBANK_API_TOKEN_SECRET is set every route except / and /health
requires an HS256 bearer token (see "drugbankctl token").

Example:
  drugbankctl server --xml data/drugbank_partial.xml --watch
  DATABASE_URL=postgres://localhost/drugbank drugbankctl server -p 9000`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := serverOptions{}
		opts.XMLPath, _ = cmd.Flags().GetString("xml")
		opts.Watch, _ = cmd.Flags().GetBool("watch")
		opts.NoMigrate, _ = cmd.Flags().GetBool("no-migrate")
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind-address") {
			cfg.BindAddress, _ = cmd.Flags().GetString("bind-address")
		}

		if err := runServer(cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to run server: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().IntP("port", "p", 8000, "server listen port (default port)")
	serverCmd.Flags().StringP("bind-address", "b", "0.0.0.0", "server bind address (default bind_address)")
	serverCmd.Flags().String("xml", "", "serve this export from memory instead of the database")
	serverCmd.Flags().Bool("watch", false, "reload the in-memory export when it changes")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}

func runServer(cfg *config.DrugbankConfig, opts serverOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.XMLPath == "" && databaseURL(cfg) == "" {
		opts.XMLPath = cfg.XMLPath
		logger.Info("no database configured, serving export from memory", zap.String("path", opts.XMLPath))
	}

	var (
		drugsStore  store.DrugsStore
		healthStore store.HealthStore
		mem         *memory.Store
	)
	if opts.XMLPath != "" {
		set, err := extractFile(ctx, opts.XMLPath)
		if err != nil {
			return err
		}
		mem = memory.New(set)
		audit.Log(audit.LoadEvent{Source: opts.XMLPath, Target: "memory", Drugs: len(set.Drugs), Success: true})
		drugsStore, healthStore = mem, mem
	} else {
		if !opts.NoMigrate {
			logger.Info("running database migrations")
			if err := runMigrations(); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
		}
		database, err := connectDatabase(cfg)
		if err != nil {
			return err
		}
		drugsStore = gormstore.NewDrugsStore(database)
		healthStore = gormstore.NewHealthStore(database)
	}

	s := server.NewServer(drugsStore, healthStore, cfg, logger)
	endpoints.RegisterAll(s)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Run(ctx)
	})
	if opts.Watch && mem != nil {
		g.Go(func() error {
			return watchFile(ctx, opts.XMLPath, watchDebounce, reloadMemory(mem, opts.XMLPath))
		})
	}
	return g.Wait()
}

// reloadMemory returns a watch callback that swaps a fresh parse of path
// into mem. A failed parse keeps the tables being served.
func reloadMemory(mem *memory.Store, path string) func(context.Context) error {
	return func(ctx context.Context) error {
		event := audit.LoadEvent{Source: path, Target: "memory"}
		set, err := mem.Reload(ctx, path)
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			return err
		}
		event.Success = true
		event.Drugs = len(set.Drugs)
		audit.Log(event)
		logger.Info("reloaded export", zap.String("path", path), zap.Int("drugs", len(set.Drugs)))
		return nil
	}
}
