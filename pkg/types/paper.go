// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRecord is one normalized feed entry.
type PaperRecord struct {
	// ID is the entry identifier as it appears in the feed
	// (e.g. "http://arxiv.org/abs/2301.07041v1").
	ID string `json:"id" yaml:"id"`

	// Title and Summary are trimmed, with internal whitespace runs collapsed
	// to a single space.
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`

	// Authors lists author names in feed order. Never nil.
	Authors []string `json:"authors" yaml:"authors"`

	// Published and Updated are the raw feed timestamps.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated" yaml:"updated"`

	// Categories lists subject class terms in feed order. Never nil.
	Categories []string `json:"categories" yaml:"categories"`

	AbstractURL string `json:"abstract_url" yaml:"abstract_url"`
	PDFURL      string `json:"pdf_url" yaml:"pdf_url"`

	// DOI, Comment and JournalRef are nil when the feed does not carry them.
	DOI        *string `json:"doi,omitempty" yaml:"doi,omitempty"`
	Comment    *string `json:"comment,omitempty" yaml:"comment,omitempty"`
	JournalRef *string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`
}

// Revised reports whether the entry was updated after first publication.
// Timestamps are compared as strings, never parsed.
func (p PaperRecord) Revised() bool {
	return p.Updated != p.Published
}

// SearchResultPage is one page of results plus the feed's paging metadata.
type SearchResultPage struct {
	Entries []PaperRecord `json:"entries" yaml:"entries"`

	// TotalResults counts every match for the query, not just this page.
	TotalResults int `json:"total_results" yaml:"total_results"`

	StartIndex   int `json:"start_index" yaml:"start_index"`
	ItemsPerPage int `json:"items_per_page" yaml:"items_per_page"`
}
