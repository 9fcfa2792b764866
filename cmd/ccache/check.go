package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Report whether files changed since the last check",
	Long: `Check fingerprints each file against the cache and updates the cache
for changed files. Exit status is 1 when any file changed, 0 when none did.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newCache()
		if err != nil {
			return err
		}

		anyChanged := false
		for _, path := range args {
			changed, err := cache.HasChanged(path)
			if err != nil {
				return err
			}
			state := "unchanged"
			if changed {
				state = "changed"
				anyChanged = true
			}
			fmt.Printf("%s\t%s\n", state, path)
		}

		if anyChanged {
			exitCode = 1
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
