// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the value types shared by the query builder, the
// feed normalizer, the arXiv transport and the search session.
//
// All of them are request-scoped: a session replaces them wholesale on every
// search or page change and nothing here is persisted.
package types

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPageSize is the number of results requested per page.
const DefaultPageSize = 10

// SearchFilters holds the user's filter values. Every field is optional.
// Values are passed to the API verbatim.
type SearchFilters struct {
	// Query is free text matched against all fields.
	Query string `json:"query,omitempty" yaml:"query,omitempty" mapstructure:"query"`

	Title    string `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty" mapstructure:"author"`
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty" mapstructure:"abstract"`

	// Category is an arXiv subject class such as "cs.LG".
	Category string `json:"category,omitempty" yaml:"category,omitempty" mapstructure:"category"`

	// Dates is an inclusive submission date range. Zero bounds are open.
	Dates DateRange `json:"dates,omitempty" yaml:"dates,omitempty" mapstructure:"dates"`
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time `json:"from,omitempty" yaml:"from,omitempty"`
	To   time.Time `json:"to,omitempty" yaml:"to,omitempty"`
}

// IsZero reports whether both bounds are unset.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// SortKey selects the API's result ordering.
type SortKey string

const (
	SortRelevance   SortKey = "relevance"
	SortSubmitted   SortKey = "submittedDate"
	SortLastUpdated SortKey = "lastUpdatedDate"
)

// ParseSortKey accepts the API names plus the short aliases used on the
// command line ("submitted", "updated").
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relevance":
		return SortRelevance, nil
	case "submitteddate", "submitted", "submission":
		return SortSubmitted, nil
	case "lastupdateddate", "updated", "lastupdated":
		return SortLastUpdated, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want relevance, submitted or updated)", s)
}

// SortOrder is the direction of the ordering.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// ParseSortOrder accepts "ascending"/"descending" and "asc"/"desc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return "", fmt.Errorf("unknown sort order %q (want ascending or descending)", s)
}

// Toggle returns the opposite direction.
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// Sort pairs a key with a direction.
type Sort struct {
	Key   SortKey   `json:"key" yaml:"key"`
	Order SortOrder `json:"order" yaml:"order"`
}

// DefaultSort is relevance, most relevant first.
func DefaultSort() Sort {
	return Sort{Key: SortRelevance, Order: Descending}
}

// SearchRequest is one page request against the search API.
type SearchRequest struct {
	Filters SearchFilters

	// Start is the zero-based offset of the first result.
	Start int `validate:"gte=0"`

	// MaxResults is the page size.
	MaxResults int `validate:"gte=1,lte=2000"`

	SortBy    SortKey   `validate:"oneof=relevance submittedDate lastUpdatedDate"`
	SortOrder SortOrder `validate:"oneof=ascending descending"`
}
