package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pdiddy/arxiv-search/internal/filterfile"
	"github.com/pdiddy/arxiv-search/internal/render"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

// addFilterFlags registers the filter and sort flags shared by search and
// browse.
func addFilterFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("title", "", "words that must appear in the title")
	f.String("author", "", "author name")
	f.String("abstract", "", "words that must appear in the abstract")
	f.String("category", "", "arXiv category code, e.g. cs.LG (see 'categories')")
	f.String("from", "", "earliest submission date (YYYY-MM-DD)")
	f.String("to", "", "latest submission date (YYYY-MM-DD)")
	f.String("filters", "", "YAML file with filters; flags override its fields")
	f.String("sort", "", "sort key: relevance, submitted, updated")
	f.String("order", "", "sort order: ascending, descending")
	f.String("format", "cards", "output format: cards, table, json, csl")
	f.Int("width", 0, "card width in columns (default 88)")
	f.Bool("full", false, "print abstracts in full instead of a preview")
}

// readFilters builds filters and the initial sort from a filter file (if
// any), then the flags, then the positional free text.
func readFilters(flags *pflag.FlagSet, args []string, base types.Sort) (types.SearchFilters, types.Sort, error) {
	var file filterfile.File
	if path, _ := flags.GetString("filters"); path != "" {
		f, err := filterfile.Read(path)
		if err != nil {
			return types.SearchFilters{}, base, err
		}
		file = *f
	}

	override := func(dst *string, flag string) {
		if v, _ := flags.GetString(flag); v != "" {
			*dst = v
		}
	}
	override(&file.Title, "title")
	override(&file.Author, "author")
	override(&file.Abstract, "abstract")
	override(&file.Category, "category")
	override(&file.From, "from")
	override(&file.To, "to")
	override(&file.SortBy, "sort")
	override(&file.SortOrder, "order")
	if len(args) > 0 {
		file.Query = strings.Join(args, " ")
	}

	filters, err := file.Filters()
	if err != nil {
		return filters, base, err
	}
	sort, err := file.Sort(base)
	if err != nil {
		return filters, base, err
	}
	return filters, sort, nil
}

// renderOptions reads the card layout flags.
func renderOptions(flags *pflag.FlagSet) (render.Options, error) {
	width, _ := flags.GetInt("width")
	if width < 0 {
		return render.Options{}, fmt.Errorf("width must not be negative, got %d", width)
	}
	full, _ := flags.GetBool("full")
	return render.Options{Width: width, FullAbstracts: full}, nil
}

func outputFormat(flags *pflag.FlagSet) (string, error) {
	format, _ := flags.GetString("format")
	switch format {
	case "cards", "table", "json", "csl":
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q (want cards, table, json or csl)", format)
}
