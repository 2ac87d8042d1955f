// Componentd is an MCP server that indexes a remote UI component
// repository and serves it as structured, searchable component records.
//
// Configuration is loaded from ~/.config/componentd/config.yaml and
// COMPONENTD_* environment variables. See internal/config for details.
//
// Usage:
//
//	# Serve the registry over stdio
//	COMPONENTD_REPOSITORY_OWNER=acme COMPONENTD_REPOSITORY_NAME=ui-kit componentd
//
//	# With a config file
//	componentd --config ./config.yaml
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/componentd/internal/catalog"
	"github.com/fyrsmithlabs/componentd/internal/config"
	"github.com/fyrsmithlabs/componentd/internal/crawler"
	"github.com/fyrsmithlabs/componentd/internal/extract"
	"github.com/fyrsmithlabs/componentd/internal/logging"
	mcpserver "github.com/fyrsmithlabs/componentd/internal/mcp"
	"github.com/fyrsmithlabs/componentd/internal/source"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "componentd",
	Short: "MCP server for a remote UI component registry",
	Long: `Componentd crawls a remote GitHub repository of UI components,
classifies each source file into a searchable component record, and
serves the registry to MCP clients over stdio.`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("componentd %s (commit %s, built %s)\n", version, gitCommit, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "componentd: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	token := cfg.Repository.Token.Value()
	if token == "" {
		// Unauthenticated access works, just with lower rate limits.
		token = os.Getenv("GITHUB_TOKEN")
	}

	src, err := source.NewGitHubSource(ctx, source.Config{
		Owner:          cfg.Repository.Owner,
		Repo:           cfg.Repository.Name,
		Ref:            cfg.Repository.Branch,
		Token:          token,
		RequestTimeout: cfg.Crawler.RequestTimeout.Duration(),
		RateLimit:      cfg.Crawler.RateLimit,
		RateBurst:      cfg.Crawler.RateBurst,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("creating repository source: %w", err)
	}

	c := crawler.New(src, extract.NewExtractor(cfg.Repository.Name), crawler.Config{
		Roots:       cfg.Repository.Roots,
		Extensions:  cfg.Crawler.Extensions,
		Concurrency: cfg.Crawler.Concurrency,
		MaxFileSize: cfg.Crawler.MaxFileSize,
		Logger:      logger,
	})

	catalogSvc := catalog.NewService(c, catalog.Config{
		TTL:    cfg.Cache.TTL.Duration(),
		Logger: logger,
	})

	logger.Info("componentd starting",
		zap.String("version", version),
		zap.String("repository", cfg.Repository.Owner+"/"+cfg.Repository.Name),
		zap.String("branch", cfg.Repository.Branch))

	// Warm the registry. A failed first crawl is not fatal: the cache
	// is rebuilt on the next tool call once the remote recovers.
	if snap, err := catalogSvc.Snapshot(ctx, false); err != nil {
		logger.Warn("initial registry crawl failed, serving will retry on demand", zap.Error(err))
	} else {
		logger.Info("registry warmed", zap.Int("components", len(snap.Records)))
	}

	srv, err := mcpserver.NewServer(&mcpserver.Config{
		Name:    "componentd",
		Version: version,
		Logger:  logger,
	}, catalogSvc)
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	return srv.Run(ctx)
}
