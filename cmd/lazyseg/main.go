// Package main provides the lazyseg command, which stress-tests the lazy
// segment tree variants against a naive model and runs the stream puzzles.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lazyseg",
		Short: "Lazy segment tree checks and puzzles",
		Long: `lazyseg checks lazy segment trees against a naive model and solves
small puzzles read from standard input.

Commands:
  stress      randomized oracle check of the tree variants
  divisible   count digit substrings divisible by 3
  peano       multiply two Peano numerals`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				tracing.Select("lazyseg").SetTraceLevel(tracing.LevelDebug)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace at debug level")

	rootCmd.AddCommand(newStressCommand())
	rootCmd.AddCommand(newDivisibleCommand())
	rootCmd.AddCommand(newPeanoCommand())
	return rootCmd
}
