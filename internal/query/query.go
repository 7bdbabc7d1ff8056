// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query turns structured search filters into the arXiv API's
// field-qualified boolean query string.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-search/pkg/types"
)

// ErrEmptyFilters is returned by Validate when no filter produces a clause.
var ErrEmptyFilters = errors.New("at least one search parameter is required")

// dateLayout is the day part of a submittedDate bound; the API wants
// minutes appended.
const dateLayout = "20060102"

// field pairs an API field prefix with the filter value it reads.
type field struct {
	prefix string
	value  func(types.SearchFilters) string
}

// fields fixes clause order: free text, title, author, abstract, category.
var fields = []field{
	{"all", func(f types.SearchFilters) string { return f.Query }},
	{"ti", func(f types.SearchFilters) string { return f.Title }},
	{"au", func(f types.SearchFilters) string { return f.Author }},
	{"abs", func(f types.SearchFilters) string { return f.Abstract }},
	{"cat", func(f types.SearchFilters) string { return f.Category }},
}

// Build returns the search_query value for f. Each non-empty field becomes
// one "<prefix>:<value>" clause with the value passed through verbatim;
// clauses are joined with " AND ". The date range is not included.
// Build returns "" when every field is empty.
func Build(f types.SearchFilters) string {
	var parts []string
	for _, fd := range fields {
		v := fd.value(f)
		if v == "" {
			continue
		}
		parts = append(parts, fd.prefix+":"+v)
	}
	return strings.Join(parts, " AND ")
}

// Validate reports whether f can be searched: at least one field must hold
// something other than whitespace. A date range on its own is not enough.
func Validate(f types.SearchFilters) error {
	for _, fd := range fields {
		if strings.TrimSpace(fd.value(f)) != "" {
			return nil
		}
	}
	return ErrEmptyFilters
}

// DateClause returns a submittedDate range clause for r, using "*" for an
// open bound, or "" when r has no bounds.
func DateClause(r types.DateRange) string {
	if r.IsZero() {
		return ""
	}
	from, to := "*", "*"
	if !r.From.IsZero() {
		from = r.From.Format(dateLayout) + "0000"
	}
	if !r.To.IsZero() {
		to = r.To.Format(dateLayout) + "2359"
	}
	return fmt.Sprintf("submittedDate:[%s TO %s]", from, to)
}

// Compose joins the clauses that are non-empty with " AND ".
func Compose(clauses ...string) string {
	var parts []string
	for _, c := range clauses {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " AND ")
}
