package types

import "time"

// HTTPConfig holds settings for the outbound search API connection.
type HTTPConfig struct {
	// BaseURL is the search endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds a single request. The session itself never times out,
	// so this is what keeps the in-flight flag from sticking.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MinInterval is the minimum spacing between requests. arXiv asks
	// clients to make no more than one request every three seconds.
	MinInterval time.Duration `json:"min_interval" yaml:"min_interval" mapstructure:"min_interval"`
}

// SearchConfig holds session defaults.
type SearchConfig struct {
	// PageSize is the number of results per page (default 10).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// SortBy and SortOrder are the initial sort.
	SortBy    string `json:"sort_by" yaml:"sort_by" mapstructure:"sort_by"`
	SortOrder string `json:"sort_order" yaml:"sort_order" mapstructure:"sort_order"`
}

// LoggingConfig selects log level, format and destination.
type LoggingConfig struct {
	// Level is trace, debug, info, warn or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output is stderr or stdout.
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

// Config groups all settings read from the config file and environment.
type Config struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Logging LoggingConfig `json:"logging" yaml:"logging" mapstructure:"logging"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		HTTP: HTTPConfig{
			BaseURL:     "https://export.arxiv.org/api/query",
			Timeout:     30 * time.Second,
			UserAgent:   "arxiv-search/0.1",
			MinInterval: 3 * time.Second,
		},
		Search: SearchConfig{
			PageSize:  DefaultPageSize,
			SortBy:    string(SortRelevance),
			SortOrder: string(Descending),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
		},
	}
}
