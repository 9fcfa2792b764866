package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hashgate/checksumcache"
	"github.com/hashgate/checksumcache/internal/gitutil"
)

var (
	syncOut   string
	syncExt   string
	syncJobs  int
	syncForce bool
)

var syncCmd = &cobra.Command{
	Use:   "sync INPUT...",
	Short: "Copy changed files into an output directory",
	Long: `Sync copies each input file to the output directory, skipping files
whose content is unchanged since the last run. Directory arguments are
expanded recursively, honoring the directory's .gitignore.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newCache()
		if err != nil {
			return err
		}

		inputs, err := expandInputs(args)
		if err != nil {
			return err
		}

		if syncForce {
			// A forced run reprocesses everything and still refreshes
			// fingerprints, so entries are dropped rather than bypassed.
			for _, input := range inputs {
				if err := cache.Remove(input); err != nil {
					return err
				}
			}
		}

		jobs := syncJobs
		if jobs <= 0 {
			jobs = cfg.Concurrency
		}

		results, err := cache.TransformContext(cmd.Context(), inputs, syncOut, syncExt, checksumcache.CopyFile, jobs)
		if err != nil {
			return err
		}

		copied := 0
		for _, r := range results {
			if r.Transformed {
				copied++
			}
		}
		logger.Info("sync complete", "copied", copied, "skipped", len(results)-copied, "out", syncOut)
		fmt.Printf("copied %d, skipped %d\n", copied, len(results)-copied)
		return nil
	},
}

// expandInputs replaces directory arguments with their contained files,
// honoring each directory's .gitignore.
func expandInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}
		files, err := gitutil.CollectFiles(arg)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, files...)
	}
	return inputs, nil
}

func init() {
	syncCmd.Flags().StringVar(&syncOut, "out", "", "Output directory (required)")
	syncCmd.Flags().StringVar(&syncExt, "ext", "", "Output extension: leading dot replaces, otherwise appends")
	syncCmd.Flags().IntVar(&syncJobs, "jobs", 0, "Max concurrent copies (default from config)")
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "Reprocess all files, refreshing their fingerprints")
	_ = syncCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(syncCmd)
}
