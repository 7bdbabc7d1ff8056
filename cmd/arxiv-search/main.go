// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-search CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-search/internal/arxiv"
	"github.com/pdiddy/arxiv-search/internal/observability"
	"github.com/pdiddy/arxiv-search/internal/session"
	"github.com/pdiddy/arxiv-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is loaded once in PersistentPreRunE.
	cfg    = types.DefaultConfig()
	logger = zerolog.Nop()
)

// rootCmd is the base command for the arxiv-search CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-search",
	Short: "Search arXiv from the terminal",
	Long: `arxiv-search queries the public arXiv API with structured filters
(free text, title, author, abstract, category, submission dates) and shows
one page of results at a time.

Use "search" for a single page of results, or "browse" to page through and
re-sort results interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		logger = observability.NewLogger(cfg.Logging)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Info().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-search.yaml or ~/.config/arxiv-search/arxiv-search.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-search"))
		}
	}

	viper.SetEnvPrefix("ARXIV_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults(viper.GetViper(), types.DefaultConfig())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
		}
	}
}

// setDefaults registers every key so environment overrides are seen by
// Unmarshal.
func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("http.base_url", d.HTTP.BaseURL)
	v.SetDefault("http.timeout", d.HTTP.Timeout)
	v.SetDefault("http.user_agent", d.HTTP.UserAgent)
	v.SetDefault("http.min_interval", d.HTTP.MinInterval)
	v.SetDefault("search.page_size", d.Search.PageSize)
	v.SetDefault("search.sort_by", d.Search.SortBy)
	v.SetDefault("search.sort_order", d.Search.SortOrder)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
}

func loadConfig() (types.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (types.Config, error) {
	c := types.DefaultConfig()
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	if c.Search.PageSize <= 0 {
		return c, fmt.Errorf("search.page_size must be positive, got %d", c.Search.PageSize)
	}
	if _, err := types.ParseSortKey(c.Search.SortBy); err != nil {
		return c, fmt.Errorf("search.sort_by: %w", err)
	}
	if _, err := types.ParseSortOrder(c.Search.SortOrder); err != nil {
		return c, fmt.Errorf("search.sort_order: %w", err)
	}
	return c, nil
}

// configuredSort returns the initial sort from config. decodeConfig has
// already validated both fields.
func configuredSort(c types.Config) types.Sort {
	k, _ := types.ParseSortKey(c.Search.SortBy)
	o, _ := types.ParseSortOrder(c.Search.SortOrder)
	return types.Sort{Key: k, Order: o}
}

// newSession wires a session to the live arXiv client.
func newSession(sort types.Sort) *session.Session {
	client := arxiv.New(cfg.HTTP, logger)
	return session.New(client,
		session.WithPageSize(cfg.Search.PageSize),
		session.WithSort(sort),
		session.WithLogger(logger),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
