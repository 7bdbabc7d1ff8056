package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-search/internal/session"
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search arXiv and print one page of results",
	Long: `Search queries arXiv for papers matching the free text and filter flags
and prints one page of results. Filters combine with AND. At least one
non-empty text filter or a category is required.

Examples:
  arxiv-search search "graph neural networks" --category cs.LG
  arxiv-search search --author Hinton --sort submitted --page 2
  arxiv-search search --filters query.yaml --format csl > refs.yaml`,
	RunE: runSearch,
}

func init() {
	addFilterFlags(searchCmd)
	searchCmd.Flags().Int("page", 1, "page number to show")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := renderOptions(cmd.Flags())
	if err != nil {
		return err
	}
	filters, sort, err := readFilters(cmd.Flags(), args, configuredSort(cfg))
	if err != nil {
		return err
	}
	page, _ := cmd.Flags().GetInt("page")

	s := newSession(sort)
	ctx := cmd.Context()

	outcome, err := s.Search(ctx, filters)
	if err != nil {
		return err
	}
	if page > 1 && outcome == session.OutcomeResults {
		if _, err := s.GoToPage(ctx, page); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if outcome == session.OutcomeNoResults && format != "json" && format != "csl" {
		fmt.Fprintln(out, "No results found.")
		return nil
	}
	return printView(out, s.View(), format, opts)
}
