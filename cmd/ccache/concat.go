package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var concatOut string

var concatCmd = &cobra.Command{
	Use:   "concat INPUT...",
	Short: "Concatenate inputs into one output when any input changed",
	Long: `Concat is an aggregate transform: the output file is rebuilt from the
full input list when any input changed, and left alone otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newCache()
		if err != nil {
			return err
		}

		result, err := cache.TransformAggregateContext(cmd.Context(), args, concatOut, concatFiles)
		if err != nil {
			return err
		}

		if result.Transformed {
			fmt.Printf("rebuilt %s\n", result.OutputPath)
		} else {
			fmt.Printf("up to date %s\n", result.OutputPath)
		}
		return nil
	},
}

// concatFiles writes the concatenation of inputPaths to outputPath.
func concatFiles(inputPaths []string, outputPath string) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	for _, input := range inputPaths {
		in, err := os.Open(input)
		if err != nil {
			out.Close()
			return err
		}
		_, err = io.Copy(out, in)
		in.Close()
		if err != nil {
			out.Close()
			return err
		}
	}
	return out.Close()
}

func init() {
	concatCmd.Flags().StringVar(&concatOut, "out", "", "Output file (required)")
	_ = concatCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(concatCmd)
}
