package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Editors often write a file in several steps; changes are batched.
const watchDebounce = 250 * time.Millisecond

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-import an export into the database whenever it changes",
	Long: `Watch an export and re-import it into the database whenever it changes.

The file is imported once on start. Replacing the file (for example with mv)
is picked up as well as writes in place.

Example:
  drugbankctl watch /data/drugbank.xml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := xmlPathArg(args)

		if err := watchExport(path); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch export: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watchExport(path string) error {
	database, err := connectDatabase(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reimport := func(ctx context.Context) error {
		_, err := runLoad(ctx, os.Stdout, database, path)
		return err
	}
	if err := reimport(ctx); err != nil {
		logger.Error("initial import failed", zap.String("path", path), zap.Error(err))
	}

	fmt.Printf("Watching %s for changes\n", path)
	if err := watchFile(ctx, path, watchDebounce, reimport); err != nil {
		return err
	}
	fmt.Println("\nShutting down...")
	return nil
}

// watchFile calls onChange after path is written or replaced, at most once
// per debounce interval, until ctx is done. Errors from onChange are logged.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func(context.Context) error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so replacing the file does not drop the watch.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("export changed", zap.String("path", path), zap.String("op", event.Op.String()))
			timer.Reset(debounce)
			pending = true
		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			logger.Info("reloading export", zap.String("path", path))
			if err := onChange(ctx); err != nil {
				logger.Error("reload failed", zap.String("path", path), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
