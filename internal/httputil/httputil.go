// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP plumbing shared by outbound API clients:
// a configured resty client, request spacing, and status checking.
//
// Requests are made exactly once. A failed request is reported to the
// caller, never retried.
package httputil

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/pdiddy/arxiv-search/pkg/types"
)

// NewClient returns a resty client with the configured timeout and
// User-Agent. Resty's retry support stays disabled.
func NewClient(cfg types.HTTPConfig) *resty.Client {
	c := resty.New()
	c.SetTimeout(cfg.Timeout)
	c.SetRetryCount(0)
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	return c
}

// Limiter keeps consecutive requests at least a fixed interval apart.
// It is safe for concurrent use.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter allows one request per interval with no burst beyond the
// first. A non-positive interval disables limiting.
func NewLimiter(interval time.Duration) *Limiter {
	if interval <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next request may be sent or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// StatusError reports a non-success HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("HTTP %s", e.Status)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// CheckStatus returns a *StatusError unless resp has a 2xx status.
func CheckStatus(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &StatusError{StatusCode: resp.StatusCode(), Status: resp.Status()}
}
