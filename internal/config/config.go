// Package config provides configuration loading for componentd.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for componentd.
type Config struct {
	Repository RepositoryConfig `koanf:"repository"`
	Crawler    CrawlerConfig    `koanf:"crawler"`
	Cache      CacheConfig      `koanf:"cache"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// RepositoryConfig identifies the remote component repository.
type RepositoryConfig struct {
	// Owner is the GitHub organization or user owning the repository.
	Owner string `koanf:"owner"`

	// Name is the repository name.
	Name string `koanf:"name"`

	// Branch is the ref to crawl. Defaults to "main".
	Branch string `koanf:"branch"`

	// Roots are the repository paths searched for component sources.
	// If every root yields nothing, the repository root is scanned once.
	Roots []string `koanf:"roots"`

	// Token is an optional GitHub token. Absence only lowers rate limits.
	Token Secret `koanf:"token"`
}

// CrawlerConfig tunes the repository crawl.
type CrawlerConfig struct {
	// Extensions is the source file extension allowlist.
	Extensions []string `koanf:"extensions"`

	// Concurrency bounds parallel directory fetches.
	Concurrency int `koanf:"concurrency"`

	// MaxFileSize skips files above this byte count.
	MaxFileSize int64 `koanf:"max_file_size"`

	// RequestTimeout caps each remote call so a hung path degrades
	// to a logged skip instead of stalling the crawl.
	RequestTimeout Duration `koanf:"request_timeout"`

	// RateLimit is the sustained remote request rate per second.
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the rate limiter burst size.
	RateBurst int `koanf:"rate_burst"`
}

// CacheConfig tunes the in-memory registry cache.
type CacheConfig struct {
	// TTL is the snapshot time-to-live before a read triggers a recrawl.
	TTL Duration `koanf:"ttl"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// Output is "stderr" or "stdout". MCP stdio transport owns stdout,
	// so stderr is the default.
	Output string `koanf:"output"`
}

func applyDefaults(cfg *Config) {
	if cfg.Repository.Branch == "" {
		cfg.Repository.Branch = "main"
	}
	if len(cfg.Repository.Roots) == 0 {
		cfg.Repository.Roots = []string{"components", "src/components", "registry"}
	}
	if len(cfg.Crawler.Extensions) == 0 {
		cfg.Crawler.Extensions = []string{".tsx", ".jsx", ".ts", ".js", ".vue", ".svelte"}
	}
	if cfg.Crawler.Concurrency == 0 {
		cfg.Crawler.Concurrency = 8
	}
	if cfg.Crawler.MaxFileSize == 0 {
		cfg.Crawler.MaxFileSize = 1024 * 1024 // 1MB
	}
	if cfg.Crawler.RequestTimeout == 0 {
		cfg.Crawler.RequestTimeout = Duration(15 * time.Second)
	}
	if cfg.Crawler.RateLimit == 0 {
		cfg.Crawler.RateLimit = 5
	}
	if cfg.Crawler.RateBurst == 0 {
		cfg.Crawler.RateBurst = 10
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = Duration(5 * time.Minute)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}

// Validate checks the configuration for values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Repository.Owner == "" {
		return fmt.Errorf("repository.owner is required")
	}
	if c.Repository.Name == "" {
		return fmt.Errorf("repository.name is required")
	}
	if c.Crawler.Concurrency < 1 {
		return fmt.Errorf("crawler.concurrency must be at least 1, got %d", c.Crawler.Concurrency)
	}
	if c.Crawler.MaxFileSize > 10*1024*1024 {
		return fmt.Errorf("crawler.max_file_size cannot exceed 10MB")
	}
	if c.Crawler.RateLimit <= 0 {
		return fmt.Errorf("crawler.rate_limit must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	switch c.Logging.Output {
	case "stderr", "stdout":
	default:
		return fmt.Errorf("logging.output must be stderr or stdout, got %q", c.Logging.Output)
	}
	return nil
}
