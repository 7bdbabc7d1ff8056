// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filterfile reads search filters from a YAML file so a complex
// search can be kept alongside a project and passed to the CLI. Files are
// only read; the CLI never writes them.
package filterfile

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-search/pkg/types"
)

// File is the on-disk representation of a search.
type File struct {
	Query    string `yaml:"query,omitempty"`
	Title    string `yaml:"title,omitempty"`
	Author   string `yaml:"author,omitempty"`
	Abstract string `yaml:"abstract,omitempty"`
	Category string `yaml:"category,omitempty"`

	// From and To bound the submission date (YYYY-MM-DD, inclusive).
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`

	// SortBy and SortOrder override the configured sort when set.
	SortBy    string `yaml:"sort_by,omitempty"`
	SortOrder string `yaml:"sort_order,omitempty"`
}

// DateLayout is the date format accepted in filter files and on the
// command line.
const DateLayout = "2006-01-02"

// Read loads and parses a filter file.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading filter file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing filter file %s: %w", path, err)
	}
	return &f, nil
}

// Filters converts the file into SearchFilters.
func (f File) Filters() (types.SearchFilters, error) {
	out := types.SearchFilters{
		Query:    f.Query,
		Title:    f.Title,
		Author:   f.Author,
		Abstract: f.Abstract,
		Category: f.Category,
	}
	var err error
	if out.Dates, err = ParseDates(f.From, f.To); err != nil {
		return out, err
	}
	return out, nil
}

// Sort returns the file's sort override applied on top of base.
func (f File) Sort(base types.Sort) (types.Sort, error) {
	s := base
	if f.SortBy != "" {
		k, err := types.ParseSortKey(f.SortBy)
		if err != nil {
			return base, err
		}
		s.Key = k
	}
	if f.SortOrder != "" {
		o, err := types.ParseSortOrder(f.SortOrder)
		if err != nil {
			return base, err
		}
		s.Order = o
	}
	return s, nil
}

// ParseDates parses an inclusive YYYY-MM-DD range. Empty bounds stay open.
func ParseDates(from, to string) (types.DateRange, error) {
	var r types.DateRange
	if from != "" {
		t, err := time.Parse(DateLayout, from)
		if err != nil {
			return r, fmt.Errorf("invalid from date %q: %w", from, err)
		}
		r.From = t
	}
	if to != "" {
		t, err := time.Parse(DateLayout, to)
		if err != nil {
			return r, fmt.Errorf("invalid to date %q: %w", to, err)
		}
		r.To = t
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, fmt.Errorf("date range ends (%s) before it starts (%s)", to, from)
	}
	return r, nil
}
