package source

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Config configures a GitHubSource.
type Config struct {
	// Owner is the repository owner.
	Owner string

	// Repo is the repository name.
	Repo string

	// Ref is the branch or tag to read. Empty means the default branch.
	Ref string

	// Token is an optional bearer token. Absence is not an error, only
	// a throughput constraint (unauthenticated rate limits).
	Token string

	// RequestTimeout caps each remote call.
	RequestTimeout time.Duration

	// RateLimit is requests per second against the contents API.
	RateLimit float64

	// RateBurst is the limiter burst size.
	RateBurst int

	// Logger for structured logging.
	Logger *zap.Logger
}

// GitHubSource implements Source over the GitHub contents API.
type GitHubSource struct {
	client  *github.Client
	owner   string
	repo    string
	ref     string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewGitHubSource creates a GitHub-backed Source.
func NewGitHubSource(ctx context.Context, cfg Config) (*GitHubSource, error) {
	if cfg.Owner == "" || cfg.Repo == "" {
		return nil, fmt.Errorf("owner and repo are required")
	}

	client := github.NewClient(nil)
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	}

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	limit := cfg.RateLimit
	if limit == 0 {
		limit = 5
	}
	burst := cfg.RateBurst
	if burst == 0 {
		burst = 10
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &GitHubSource{
		client:  client,
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		ref:     cfg.Ref,
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Limit(limit), burst),
		logger:  logger,
	}, nil
}

// ListDirectory returns the entries directly under path.
func (s *GitHubSource) ListDirectory(ctx context.Context, path string) ([]Entry, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{Op: "list", Path: path, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, dir, _, err := s.client.Repositories.GetContents(callCtx, s.owner, s.repo, path, s.getOpts())
	if err != nil {
		return nil, &FetchError{Op: "list", Path: path, Err: err}
	}
	if dir == nil {
		return nil, &FetchError{Op: "list", Path: path, Err: fmt.Errorf("not a directory")}
	}

	s.logger.Debug("listed directory",
		zap.String("path", path),
		zap.Int("entries", len(dir)))

	entries := make([]Entry, 0, len(dir))
	for _, c := range dir {
		entries = append(entries, Entry{
			Name:      c.GetName(),
			Path:      c.GetPath(),
			Size:      int64(c.GetSize()),
			IsDir:     c.GetType() == "dir",
			SourceURL: c.GetHTMLURL(),
		})
	}
	return entries, nil
}

// FetchContent returns the decoded text of the file at path.
func (s *GitHubSource) FetchContent(ctx context.Context, path string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", &FetchError{Op: "fetch", Path: path, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	file, _, _, err := s.client.Repositories.GetContents(callCtx, s.owner, s.repo, path, s.getOpts())
	if err != nil {
		return "", &FetchError{Op: "fetch", Path: path, Err: err}
	}
	if file == nil {
		return "", &FetchError{Op: "fetch", Path: path, Err: fmt.Errorf("not a file")}
	}

	content, err := file.GetContent()
	if err != nil {
		return "", &FetchError{Op: "fetch", Path: path, Err: fmt.Errorf("decoding content: %w", err)}
	}
	return content, nil
}

func (s *GitHubSource) getOpts() *github.RepositoryContentGetOptions {
	if s.ref == "" {
		return nil
	}
	return &github.RepositoryContentGetOptions{Ref: s.ref}
}
