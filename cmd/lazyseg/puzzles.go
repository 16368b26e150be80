package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/lazyseg/puzzles"
)

func newDivisibleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "divisible",
		Short: "Count digit substrings of stdin divisible by 3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := puzzles.DivisibleSubstrings(cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}

func newPeanoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "peano",
		Short: "Multiply the two Peano numerals on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			product, err := puzzles.PeanoProduct(cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), product)
			return nil
		},
	}
}
