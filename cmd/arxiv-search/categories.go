package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-search/pkg/types"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the arXiv category codes accepted by --category",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range types.Categories {
			fmt.Fprintf(out, "%-18s %s\n", c.Code, c.Label)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
