// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv is the outbound boundary to the arXiv export API. It maps a
// SearchRequest onto query parameters, makes one GET request, and hands the
// body to the feed normalizer.
package arxiv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-search/internal/feed"
	"github.com/pdiddy/arxiv-search/internal/httputil"
	"github.com/pdiddy/arxiv-search/internal/query"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

// ErrInvalidRequest is returned when a request fails validation; no
// network call is made.
var ErrInvalidRequest = errors.New("invalid search request")

// Client queries the arXiv search endpoint.
type Client struct {
	baseURL  string
	http     *resty.Client
	limiter  *httputil.Limiter
	validate *validator.Validate
	log      zerolog.Logger
}

// New creates a Client from cfg.
func New(cfg types.HTTPConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		http:     httputil.NewClient(cfg),
		limiter:  httputil.NewLimiter(cfg.MinInterval),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With().Str("component", "arxiv").Logger(),
	}
}

// Params returns the query parameters for req. search_query combines the
// filter clauses with the submission date range and is omitted when both
// are empty.
func Params(req types.SearchRequest) url.Values {
	v := url.Values{}
	if q := query.Compose(query.Build(req.Filters), query.DateClause(req.Filters.Dates)); q != "" {
		v.Set("search_query", q)
	}
	v.Set("start", strconv.Itoa(req.Start))
	v.Set("max_results", strconv.Itoa(req.MaxResults))
	if req.SortBy != "" {
		v.Set("sortBy", string(req.SortBy))
	}
	if req.SortOrder != "" {
		v.Set("sortOrder", string(req.SortOrder))
	}
	return v
}

// Fetch requests one page of results. Non-2xx responses are returned as
// errors wrapping *httputil.StatusError; a body that is not well-formed
// markup wraps feed.ErrMalformedFeed.
func (c *Client) Fetch(ctx context.Context, req types.SearchRequest) (*types.SearchResultPage, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for arXiv rate limit: %w", err)
	}

	params := Params(req)
	c.log.Debug().
		Str("search_query", params.Get("search_query")).
		Int("start", req.Start).
		Int("max_results", req.MaxResults).
		Msg("arXiv request")

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	if err := httputil.CheckStatus(resp); err != nil {
		return nil, fmt.Errorf("arXiv API error: %w", err)
	}

	page, err := feed.Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	c.log.Debug().
		Int("entries", len(page.Entries)).
		Int("total_results", page.TotalResults).
		Msg("arXiv response")
	return page, nil
}
