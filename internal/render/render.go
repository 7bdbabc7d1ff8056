// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes a session view to the terminal: result cards,
// a plain table, JSON, or CSL-YAML, plus the pagination bar.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/arxiv-search/internal/session"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(0, 0, 1, 0)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	currentPageStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)
)

// Options controls card rendering.
type Options struct {
	// Width is the card width in columns (default 88).
	Width int

	// FullAbstracts prints summaries in full instead of truncating them.
	FullAbstracts bool
}

const (
	defaultWidth   = 88
	summaryPreview = 320
	maxAuthors     = 8
)

// Cards writes the view as a header, one card per record and the
// pagination bar.
func Cards(w io.Writer, v session.View, opts Options) {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if v.Results == nil {
		return
	}
	if len(v.Results.Entries) == 0 {
		fmt.Fprintln(w, noDataStyle.Render("No results found. Try adjusting your search filters."))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(Summary(v)))
	for i, rec := range v.Results.Entries {
		n := v.Results.StartIndex + i + 1
		fmt.Fprintln(w, cardStyle.Width(opts.Width).Render(card(n, rec, opts)))
	}
	if bar := Pagination(v); bar != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, bar)
	}
}

// Summary describes the result count, sort and page position.
func Summary(v session.View) string {
	total := 0
	if v.Results != nil {
		total = v.Results.TotalResults
	}
	s := fmt.Sprintf("%d results · sorted by %s (%s)", total, SortLabel(v.Sort.Key), v.Sort.Order)
	if v.TotalPages > 1 {
		s += fmt.Sprintf(" · page %d of %d", v.Page, v.TotalPages)
	}
	return s
}

// SortLabel returns the display name of a sort key.
func SortLabel(k types.SortKey) string {
	switch k {
	case types.SortSubmitted:
		return "submission date"
	case types.SortLastUpdated:
		return "last updated"
	default:
		return "relevance"
	}
}

func card(n int, rec types.PaperRecord, opts Options) string {
	inner := opts.Width - 4
	var b strings.Builder

	b.WriteString(titleStyle.Width(inner).Render(fmt.Sprintf("%d. %s", n, rec.Title)))
	b.WriteString("\n")
	if len(rec.Authors) > 0 {
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(Authors(rec.Authors, maxAuthors)))
		b.WriteString("\n")
	}

	dates := "Published: " + FormatDate(rec.Published)
	if rec.Revised() {
		dates += " · Updated: " + FormatDate(rec.Updated)
	}
	b.WriteString(metaStyle.Render(dates))
	b.WriteString("\n")

	if len(rec.Categories) > 0 {
		cats := strings.Join(rec.Categories, " ")
		if label := types.CategoryLabel(rec.Categories[0]); label != rec.Categories[0] {
			cats += " · " + label
		}
		b.WriteString(categoryStyle.Render(cats))
		b.WriteString("\n")
	}

	summary := rec.Summary
	if !opts.FullAbstracts {
		summary = truncate(summary, summaryPreview)
	}
	if summary != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(summary))
		b.WriteString("\n")
	}

	var extra []string
	if rec.DOI != nil {
		extra = append(extra, "DOI: "+*rec.DOI)
	}
	if rec.JournalRef != nil {
		extra = append(extra, "Journal: "+*rec.JournalRef)
	}
	if rec.Comment != nil {
		extra = append(extra, "Comment: "+*rec.Comment)
	}
	if len(extra) > 0 {
		b.WriteString("\n")
		b.WriteString(metaStyle.Width(inner).Render(strings.Join(extra, "\n")))
		b.WriteString("\n")
	}

	var links []string
	if rec.AbstractURL != "" {
		links = append(links, "Abstract: "+rec.AbstractURL)
	}
	if rec.PDFURL != "" {
		links = append(links, "PDF: "+rec.PDFURL)
	}
	if len(links) > 0 {
		b.WriteString("\n")
		b.WriteString(urlStyle.Render(strings.Join(links, "\n")))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Pagination renders the page controls, or "" when there is one page or
// fewer.
func Pagination(v session.View) string {
	controls := v.Controls()
	if controls == nil {
		return ""
	}
	parts := []string{}
	if v.HasPrev() {
		parts = append(parts, "‹ prev")
	}
	for _, c := range controls {
		switch {
		case c.Ellipsis:
			parts = append(parts, "…")
		case c.Current:
			parts = append(parts, currentPageStyle.Render(fmt.Sprintf("[%d]", c.Page)))
		default:
			parts = append(parts, fmt.Sprint(c.Page))
		}
	}
	if v.HasNext() {
		parts = append(parts, "next ›")
	}
	return strings.Join(parts, " ")
}

// Authors lists up to limit names followed by "et al." when there are more.
func Authors(names []string, limit int) string {
	if limit > 0 && len(names) > limit {
		return strings.Join(names[:limit], ", ") + " et al."
	}
	return strings.Join(names, ", ")
}

// FormatDate renders an RFC 3339 timestamp as "Jan 2, 2006". Anything it
// cannot parse is returned unchanged.
func FormatDate(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimSpace(string(r[:max-1])) + "…"
}
