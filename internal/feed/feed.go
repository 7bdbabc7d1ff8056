// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed normalizes arXiv Atom search responses into typed records.
//
// Only a payload that is not well-formed markup is an error. Inside a
// well-formed payload every missing or malformed field falls back to a
// default, so a partially populated record is returned rather than dropped.
//
// Field extraction is table-driven: each field lists candidate element
// names (namespaced first, then bare) and the first one present wins.
// Adding an optional field means adding a table row.
package feed

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/arxiv-search/pkg/types"
)

// ErrMalformedFeed wraps markup syntax errors.
var ErrMalformedFeed = errors.New("malformed feed")

const (
	nsOpenSearch = "http://a9.com/-/spec/opensearch/1.1/"
	nsArxiv      = "http://arxiv.org/schemas/atom"
)

var (
	entryName  = name{local: "entry"}
	authorName = name{local: "author"}
	personName = name{local: "name"}
	catName    = name{local: "category"}
	linkName   = name{local: "link"}
)

// metaField reads one integer of paging metadata. Absent or non-numeric
// text yields 0.
type metaField struct {
	candidates []name
	set        func(*types.SearchResultPage, int)
}

var metaFields = []metaField{
	{
		[]name{{nsOpenSearch, "totalResults"}, {"", "totalResults"}},
		func(p *types.SearchResultPage, v int) { p.TotalResults = v },
	},
	{
		[]name{{nsOpenSearch, "startIndex"}, {"", "startIndex"}},
		func(p *types.SearchResultPage, v int) { p.StartIndex = v },
	},
	{
		[]name{{nsOpenSearch, "itemsPerPage"}, {"", "itemsPerPage"}},
		func(p *types.SearchResultPage, v int) { p.ItemsPerPage = v },
	},
}

// textField reads the text of one entry element. Fields whose element is
// missing keep their zero value.
type textField struct {
	candidates []name
	set        func(*types.PaperRecord, string)
}

// entryFields default to the empty string.
var entryFields = []textField{
	{[]name{{"", "id"}}, func(r *types.PaperRecord, s string) { r.ID = s }},
	{[]name{{"", "title"}}, func(r *types.PaperRecord, s string) { r.Title = collapse(s) }},
	{[]name{{"", "summary"}}, func(r *types.PaperRecord, s string) { r.Summary = collapse(s) }},
	{[]name{{"", "published"}}, func(r *types.PaperRecord, s string) { r.Published = s }},
	{[]name{{"", "updated"}}, func(r *types.PaperRecord, s string) { r.Updated = s }},
}

// optionalFields stay nil unless the element is present with text.
var optionalFields = []textField{
	{
		[]name{{nsArxiv, "doi"}, {"", "doi"}},
		func(r *types.PaperRecord, s string) { r.DOI = &s },
	},
	{
		[]name{{nsArxiv, "comment"}, {"", "comment"}},
		func(r *types.PaperRecord, s string) { r.Comment = &s },
	},
	{
		[]name{{nsArxiv, "journal_ref"}, {"", "journal_ref"}},
		func(r *types.PaperRecord, s string) { r.JournalRef = &s },
	},
}

// Parse reads an Atom search response.
func Parse(r io.Reader) (*types.SearchResultPage, error) {
	root, err := readTree(r)
	if err != nil {
		return nil, err
	}

	page := &types.SearchResultPage{Entries: []types.PaperRecord{}}
	for _, f := range metaFields {
		if n := root.first(f.candidates); n != nil {
			f.set(page, atoi(n.text.String()))
		}
	}

	for _, e := range root.findAll(entryName) {
		page.Entries = append(page.Entries, parseEntry(e))
	}
	return page, nil
}

func parseEntry(e *node) types.PaperRecord {
	rec := types.PaperRecord{
		Authors:    []string{},
		Categories: []string{},
	}

	for _, f := range entryFields {
		if n := e.first(f.candidates); n != nil {
			f.set(&rec, n.text.String())
		}
	}

	for _, a := range e.findAll(authorName) {
		for _, n := range a.findAll(personName) {
			rec.Authors = append(rec.Authors, strings.TrimSpace(n.text.String()))
		}
	}

	for _, c := range e.findAll(catName) {
		rec.Categories = append(rec.Categories, c.attr("term"))
	}

	// Later links overwrite earlier ones.
	for _, l := range e.findAll(linkName) {
		href := l.attr("href")
		if l.attr("title") == "pdf" {
			rec.PDFURL = href
		} else if l.attr("rel") == "alternate" {
			rec.AbstractURL = href
		}
	}

	for _, f := range optionalFields {
		if n := e.first(f.candidates); n != nil {
			if s := n.text.String(); s != "" {
				f.set(&rec, s)
			}
		}
	}
	return rec
}

// collapse trims s and replaces every internal whitespace run, newlines
// included, with one space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func atoi(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
