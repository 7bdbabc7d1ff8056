// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session owns the state of one interactive search: the last
// filters, the sort, the current page, the current result page, the
// in-flight flag and the last error. Presentation reads it through View and
// changes it only through Search, GoToPage and ChangeSort.
//
// One request is outstanding at a time. Operations that arrive while a
// request is in flight fail with ErrBusy; they are not queued, so every
// response belongs to the latest request.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-search/internal/query"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

var (
	// ErrBusy is returned when another request is still in flight.
	ErrBusy = errors.New("a search is already in progress")

	// ErrNoSearch is returned by GoToPage before a successful search.
	ErrNoSearch = errors.New("no search to page through")

	// ErrInvalidPage is returned for a page number outside 1..TotalPages.
	ErrInvalidPage = errors.New("page out of range")

	// ErrInvalidSort is returned by ChangeSort for an unknown key or order.
	ErrInvalidSort = errors.New("invalid sort")
)

// Fetcher retrieves one page of results.
type Fetcher interface {
	Fetch(ctx context.Context, req types.SearchRequest) (*types.SearchResultPage, error)
}

// Outcome describes what a successful operation changed.
type Outcome int

const (
	// OutcomeNone means nothing was applied; an error accompanies it.
	OutcomeNone Outcome = iota
	// OutcomeResults means a non-empty result page replaced the previous one.
	OutcomeResults
	// OutcomeNoResults means the search succeeded with an empty page.
	OutcomeNoResults
	// OutcomeSortUpdated means the sort changed and there was nothing to rerun.
	OutcomeSortUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResults:
		return "results"
	case OutcomeNoResults:
		return "no_results"
	case OutcomeSortUpdated:
		return "sort_updated"
	default:
		return "none"
	}
}

// View is a read-only snapshot of the session.
type View struct {
	// Results is nil before the first successful search and after a
	// failed one.
	Results *types.SearchResultPage

	// Filters is nil until the first search.
	Filters *types.SearchFilters

	Page       int
	TotalPages int
	PageSize   int
	Sort       types.Sort
	InFlight   bool
	LastError  string
}

// Controls returns the pagination bar for this view.
func (v View) Controls() []Control {
	return Controls(v.Page, v.TotalPages)
}

// HasPrev reports whether a previous page exists.
func (v View) HasPrev() bool { return v.Results != nil && v.Page > 1 }

// HasNext reports whether a next page exists.
func (v View) HasNext() bool { return v.Results != nil && v.Page < v.TotalPages }

// Session is a search orchestrator. The zero value is not usable; call New.
type Session struct {
	fetcher  Fetcher
	pageSize int
	log      zerolog.Logger

	mu       sync.Mutex
	filters  *types.SearchFilters
	sort     types.Sort
	page     int
	results  *types.SearchResultPage
	inFlight bool
	lastErr  string
}

// Option configures a Session.
type Option func(*Session)

// WithPageSize sets the number of results per page.
func WithPageSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithSort sets the initial sort.
func WithSort(sort types.Sort) Option {
	return func(s *Session) { s.sort = sort }
}

// WithLogger sets the session logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New creates a Session that fetches through f.
func New(f Fetcher, opts ...Option) *Session {
	s := &Session{
		fetcher:  f,
		pageSize: types.DefaultPageSize,
		sort:     types.DefaultSort(),
		page:     1,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "session").Logger()
	return s
}

// Search runs a fresh search for f from page 1 and stores f as the last
// filters. On failure the current result page is cleared.
func (s *Session) Search(ctx context.Context, f types.SearchFilters) (Outcome, error) {
	if err := query.Validate(f); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return OutcomeNone, err
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return OutcomeNone, ErrBusy
	}
	req := s.restartLocked(f)
	s.mu.Unlock()

	return s.run(ctx, req, 1, true)
}

// GoToPage loads page n (1-based) of the last search with the current
// sort. On failure the page already shown is kept.
func (s *Session) GoToPage(ctx context.Context, n int) (Outcome, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return OutcomeNone, ErrBusy
	}
	if s.filters == nil || s.results == nil {
		s.mu.Unlock()
		return OutcomeNone, ErrNoSearch
	}
	if total := TotalPages(s.results.TotalResults, s.pageSize); n < 1 || n > max(total, 1) {
		s.mu.Unlock()
		return OutcomeNone, fmt.Errorf("%w: %d of %d", ErrInvalidPage, n, total)
	}
	req := s.beginLocked(*s.filters, (n-1)*s.pageSize)
	s.mu.Unlock()

	return s.run(ctx, req, n, false)
}

// ChangeSort stores the new sort. If a search has run before, it is rerun
// from page 1 with the last filters.
func (s *Session) ChangeSort(ctx context.Context, key types.SortKey, order types.SortOrder) (Outcome, error) {
	if !validSort(key, order) {
		return OutcomeNone, fmt.Errorf("%w: %q %q", ErrInvalidSort, key, order)
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return OutcomeNone, ErrBusy
	}
	s.sort = types.Sort{Key: key, Order: order}
	if s.filters == nil {
		s.mu.Unlock()
		s.log.Debug().Str("sort_by", string(key)).Str("sort_order", string(order)).Msg("sort updated")
		return OutcomeSortUpdated, nil
	}
	req := s.restartLocked(*s.filters)
	s.mu.Unlock()

	return s.run(ctx, req, 1, true)
}

// View returns a snapshot of the session state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Page:      s.page,
		PageSize:  s.pageSize,
		Sort:      s.sort,
		InFlight:  s.inFlight,
		LastError: s.lastErr,
	}
	if s.filters != nil {
		f := *s.filters
		v.Filters = &f
	}
	if s.results != nil {
		r := *s.results
		r.Entries = slices.Clone(s.results.Entries)
		v.Results = &r
		v.TotalPages = TotalPages(r.TotalResults, s.pageSize)
	}
	return v
}

// restartLocked stores f as the last filters, resets to page 1 and begins a
// request at offset 0.
func (s *Session) restartLocked(f types.SearchFilters) types.SearchRequest {
	stored := f
	s.filters = &stored
	s.page = 1
	return s.beginLocked(f, 0)
}

// beginLocked marks a request in flight and returns it.
func (s *Session) beginLocked(f types.SearchFilters, offset int) types.SearchRequest {
	s.inFlight = true
	return types.SearchRequest{
		Filters:    f,
		Start:      offset,
		MaxResults: s.pageSize,
		SortBy:     s.sort.Key,
		SortOrder:  s.sort.Order,
	}
}

// run performs the fetch and applies its result. fresh marks a new search,
// whose failure clears the current results.
func (s *Session) run(ctx context.Context, req types.SearchRequest, page int, fresh bool) (Outcome, error) {
	log := s.log.With().Int("start", req.Start).Int("page", page).Logger()
	log.Debug().Str("sort_by", string(req.SortBy)).Str("sort_order", string(req.SortOrder)).Msg("request issued")

	res, err := s.fetch(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false

	if err != nil {
		s.lastErr = err.Error()
		if fresh {
			s.results = nil
		}
		log.Error().Err(err).Bool("fresh", fresh).Msg("search failed")
		return OutcomeNone, err
	}

	s.results = res
	s.page = page
	s.lastErr = ""
	log.Info().Int("entries", len(res.Entries)).Int("total_results", res.TotalResults).Msg("results applied")

	if len(res.Entries) == 0 {
		return OutcomeNoResults, nil
	}
	return OutcomeResults, nil
}

// fetch calls the fetcher, turning a panic or a nil page into an error so
// the in-flight flag is always cleared.
func (s *Session) fetch(ctx context.Context, req types.SearchRequest) (res *types.SearchResultPage, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("search failed: %v", r)
		}
	}()
	res, err = s.fetcher.Fetch(ctx, req)
	if err == nil && res == nil {
		err = errors.New("search returned no result page")
	}
	return res, err
}

func validSort(key types.SortKey, order types.SortOrder) bool {
	switch key {
	case types.SortRelevance, types.SortSubmitted, types.SortLastUpdated:
	default:
		return false
	}
	return order == types.Ascending || order == types.Descending
}
