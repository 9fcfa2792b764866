package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashgate/checksumcache"
	"github.com/hashgate/checksumcache/internal/config"
)

var (
	cacheFile string
	baseDir   string
	logLevel  string

	cfg    *config.Config
	logger *slog.Logger

	// exitCode is set by commands that signal state through the exit
	// status (check: 1 means changed).
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "ccache",
	Short: "Skip redundant work on unchanged files",
	Long: `ccache fingerprints file contents and remembers them in a JSON cache,
so pipelines can skip files that have not changed since the last run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("cache-file") {
			cacheFile = cfg.CacheFile
		}
		if !cmd.Flags().Changed("base-dir") {
			baseDir = cfg.BaseDir
		}
		if !cmd.Flags().Changed("log-level") {
			logLevel = cfg.LogLevel
		}

		var level slog.Level
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		logger = slog.New(handler)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache-file", config.DefaultConfig().CacheFile, "Path to the checksum cache file")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "Base directory for resolving relative paths")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// newCache builds the cache from the effective flag/config values.
func newCache() (*checksumcache.Cache, error) {
	return checksumcache.New(cacheFile, baseDir)
}
