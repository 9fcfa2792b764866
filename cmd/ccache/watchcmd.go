package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hashgate/checksumcache"
	"github.com/hashgate/checksumcache/internal/watch"
)

var (
	watchOut      string
	watchDebounce int
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Continuously sync changed files out of a directory",
	Long: `Watch performs an initial sync of DIR into the output directory, then
re-syncs whenever files change, debouncing bursts of filesystem events.
Stops on SIGINT/SIGTERM.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		cache, err := newCache()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		syncDir := func(paths []string) {
			results, err := cache.TransformContext(ctx, paths, watchOut, "", checksumcache.CopyFile, cfg.Concurrency)
			if err != nil {
				logger.Error("sync failed", "error", err.Error())
				return
			}
			copied := 0
			for _, r := range results {
				if r.Transformed {
					copied++
				}
			}
			logger.Info("synced", "copied", copied, "skipped", len(results)-copied)
		}

		inputs, err := expandInputs([]string{dir})
		if err != nil {
			return err
		}
		syncDir(inputs)

		debounce := watchDebounce
		if debounce <= 0 {
			debounce = cfg.DebounceMs
		}
		watcher, err := watch.New(time.Duration(debounce)*time.Millisecond, func(paths []string) {
			// Only regular files feed the cache; new directories are
			// picked up on the next full walk.
			var files []string
			for _, p := range paths {
				if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
					files = append(files, p)
				}
			}
			if len(files) > 0 {
				syncDir(files)
			}
		})
		if err != nil {
			return err
		}
		defer watcher.Close()

		if err := addWatchDirs(watcher, dir); err != nil {
			return err
		}

		logger.Info("watching", "dir", dir, "out", watchOut)
		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// addWatchDirs registers dir and all of its subdirectories, skipping .git.
func addWatchDirs(w *watch.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

func init() {
	watchCmd.Flags().StringVar(&watchOut, "out", "", "Output directory (required)")
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "Debounce in milliseconds (default from config)")
	_ = watchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(watchCmd)
}
