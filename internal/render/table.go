// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/arxiv-search/internal/session"
)

// Table writes the view as a fixed-width table.
func Table(w io.Writer, v session.View) {
	if v.Results == nil {
		return
	}
	if len(v.Results.Entries) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-12s  %-56s  %-20s  %-10s  %s\n",
		"#", "arXiv", "Title", "Authors", "Published", "Category")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for i, r := range v.Results.Entries {
		category := ""
		if len(r.Categories) > 0 {
			category = r.Categories[0]
		}
		published := r.Published
		if len(published) >= 10 {
			published = published[:10]
		}
		fmt.Fprintf(w, "%-4d  %-12s  %-56s  %-20s  %-10s  %s\n",
			v.Results.StartIndex+i+1,
			ArxivID(r.ID),
			clip(r.Title, 56),
			formatAuthors(r.Authors),
			published,
			category)
	}

	fmt.Fprintf(w, "\n%s\n", Summary(v))
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return clip(authors[0], 20)
	default:
		return clip(authors[0], 14) + " et al."
	}
}

// clip shortens s to max runes with a trailing "...".
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
