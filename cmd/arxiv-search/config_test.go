// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-search/internal/render"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

func newTestViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetEnvPrefix("ARXIV_SEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, types.DefaultConfig())
	return v
}

func TestDecodeConfigDefaults(t *testing.T) {
	c, err := decodeConfig(newTestViper(t))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), c)
}

func TestDecodeConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arxiv-search.yaml")
	content := `http:
  timeout: 5s
  min_interval: 0s
search:
  page_size: 25
  sort_by: submitted
  sort_order: asc
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := newTestViper(t)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	c, err := decodeConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.HTTP.Timeout)
	assert.Equal(t, time.Duration(0), c.HTTP.MinInterval)
	assert.Equal(t, "https://export.arxiv.org/api/query", c.HTTP.BaseURL)
	assert.Equal(t, 25, c.Search.PageSize)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, types.Sort{Key: types.SortSubmitted, Order: types.Ascending}, configuredSort(c))
}

func TestDecodeConfigEnv(t *testing.T) {
	t.Setenv("ARXIV_SEARCH_SEARCH_PAGE_SIZE", "50")
	t.Setenv("ARXIV_SEARCH_HTTP_BASE_URL", "http://localhost:9999/api/query")

	c, err := decodeConfig(newTestViper(t))
	require.NoError(t, err)
	assert.Equal(t, 50, c.Search.PageSize)
	assert.Equal(t, "http://localhost:9999/api/query", c.HTTP.BaseURL)
}

func TestDecodeConfigInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"search.page_size", 0},
		{"search.sort_by", "popularity"},
		{"search.sort_order", "sideways"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := newTestViper(t)
			v.Set(tt.key, tt.value)
			_, err := decodeConfig(v)
			assert.Error(t, err)
		})
	}
}

func newFilterCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addFilterFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestReadFiltersFromFlags(t *testing.T) {
	cmd := newFilterCmd(t, "--title", "attention", "--category", "cs.CL", "--from", "2020-01-01", "--sort", "updated")

	f, sort, err := readFilters(cmd.Flags(), []string{"large", "language", "models"}, types.DefaultSort())
	require.NoError(t, err)
	assert.Equal(t, "large language models", f.Query)
	assert.Equal(t, "attention", f.Title)
	assert.Equal(t, "cs.CL", f.Category)
	assert.Equal(t, 2020, f.Dates.From.Year())
	assert.True(t, f.Dates.To.IsZero())
	assert.Equal(t, types.Sort{Key: types.SortLastUpdated, Order: types.Descending}, sort)
}

func TestReadFiltersFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filters.yaml")
	content := `query: diffusion
author: Ho
category: cs.LG
sort_by: submitted
sort_order: ascending
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cmd := newFilterCmd(t, "--filters", path, "--author", "Song", "--order", "desc")
	f, sort, err := readFilters(cmd.Flags(), nil, types.DefaultSort())
	require.NoError(t, err)
	assert.Equal(t, "diffusion", f.Query)
	assert.Equal(t, "Song", f.Author)
	assert.Equal(t, "cs.LG", f.Category)
	assert.Equal(t, types.Sort{Key: types.SortSubmitted, Order: types.Descending}, sort)
}

func TestReadFiltersErrors(t *testing.T) {
	cmd := newFilterCmd(t, "--from", "2024-13-01")
	_, _, err := readFilters(cmd.Flags(), nil, types.DefaultSort())
	assert.Error(t, err)

	cmd = newFilterCmd(t, "--sort", "popularity")
	_, _, err = readFilters(cmd.Flags(), nil, types.DefaultSort())
	assert.Error(t, err)

	cmd = newFilterCmd(t, "--filters", filepath.Join(t.TempDir(), "missing.yaml"))
	_, _, err = readFilters(cmd.Flags(), nil, types.DefaultSort())
	assert.Error(t, err)
}

func TestOutputFormat(t *testing.T) {
	cmd := newFilterCmd(t)
	got, err := outputFormat(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, "cards", got)

	cmd = newFilterCmd(t, "--format", "xml")
	_, err = outputFormat(cmd.Flags())
	assert.Error(t, err)
}

func TestRenderOptions(t *testing.T) {
	opts, err := renderOptions(newFilterCmd(t).Flags())
	require.NoError(t, err)
	assert.Equal(t, render.Options{}, opts)

	opts, err = renderOptions(newFilterCmd(t, "--width", "120", "--full").Flags())
	require.NoError(t, err)
	assert.Equal(t, render.Options{Width: 120, FullAbstracts: true}, opts)

	_, err = renderOptions(newFilterCmd(t, "--width", "-1").Flags())
	assert.Error(t, err)
}
