package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the checksum cache",
}

var cacheLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List tracked files and their fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newCache()
		if err != nil {
			return err
		}

		entries := cache.Entries()
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s\t%s\n", entries[k], k)
		}
		return nil
	},
}

var cacheRmCmd = &cobra.Command{
	Use:   "rm PATH...",
	Short: "Drop entries so the next check reports a change",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newCache()
		if err != nil {
			return err
		}
		for _, path := range args {
			if err := cache.Remove(path); err != nil {
				return err
			}
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newCache()
		if err != nil {
			return err
		}
		return cache.Clear()
	},
}

var cacheRefreshCmd = &cobra.Command{
	Use:   "refresh [PATH...]",
	Short: "Recompute fingerprints without reporting changes",
	Long: `Refresh recomputes and stores the fingerprint for the given paths, or
for every tracked file when no path is given. Entries for files that no
longer exist are dropped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newCache()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return cache.RefreshAll()
		}
		for _, path := range args {
			if err := cache.Refresh(path); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheLsCmd, cacheRmCmd, cacheClearCmd, cacheRefreshCmd)
	rootCmd.AddCommand(cacheCmd)
}
