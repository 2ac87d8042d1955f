// Package crawler walks the remote component repository and yields
// extracted component records.
//
// The walk is depth-first and order-preserving: records appear in
// directory-listing order, which downstream search ranking uses as its
// tie-break. Sibling subtrees and file fetches fan out concurrently
// under a bounded semaphore so one slow path cannot stall the rest,
// and any single path failure is logged and skipped rather than
// aborting the crawl.
package crawler

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/componentd/internal/extract"
	"github.com/fyrsmithlabs/componentd/internal/source"
)

// defaultSkipDirs are directory names never descended into.
var defaultSkipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"__tests__":    true,
	"__mocks__":    true,
}

// testMarkers mark test, spec and storybook files, which are not
// components.
var testMarkers = []string{".test.", ".spec.", ".stories.", ".story."}

// Config configures a Crawler.
type Config struct {
	// Roots are the repository paths to crawl. If every root yields
	// nothing, the repository root is scanned once as a fallback.
	Roots []string

	// Extensions is the source file extension allowlist (with dots).
	Extensions []string

	// Concurrency bounds simultaneous remote calls.
	Concurrency int

	// MaxFileSize skips files larger than this many bytes.
	MaxFileSize int64

	// Logger for structured logging.
	Logger *zap.Logger
}

// Crawler discovers component files in a remote repository and runs
// each through the extractor.
type Crawler struct {
	src         source.Source
	extractor   *extract.Extractor
	roots       []string
	extensions  map[string]bool
	concurrency int
	maxFileSize int64
	logger      *zap.Logger
}

// New creates a Crawler over the given source and extractor.
func New(src source.Source, extractor *extract.Extractor, cfg Config) *Crawler {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 8
	}
	maxFileSize := cfg.MaxFileSize
	if maxFileSize == 0 {
		maxFileSize = 1024 * 1024
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	extensions := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		extensions[strings.ToLower(ext)] = true
	}

	return &Crawler{
		src:         src,
		extractor:   extractor,
		roots:       cfg.Roots,
		extensions:  extensions,
		concurrency: concurrency,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Crawl walks every configured root and returns the deduplicated
// records in crawl order. If all roots yield nothing, the repository
// root is scanned once before giving up. The returned error is non-nil
// only when the crawl produced nothing and no listing succeeded.
func (c *Crawler) Crawl(ctx context.Context) ([]extract.Record, error) {
	sem := make(chan struct{}, c.concurrency)
	listed := &listTracker{}

	var records []extract.Record
	for _, root := range c.roots {
		records = append(records, c.walk(ctx, root, sem, listed)...)
	}

	if len(records) == 0 {
		c.logger.Info("configured roots yielded no components, scanning repository root")
		records = c.walk(ctx, "", sem, listed)
	}

	if len(records) == 0 && !listed.succeeded() {
		return nil, fmt.Errorf("crawl failed: no directory listing succeeded")
	}

	return dedupeByName(records), nil
}

// walk lists one directory and recurses depth-first. Entry order is
// preserved: each entry's records are spliced back at its listing
// position. Failures are logged and contribute zero records.
func (c *Crawler) walk(ctx context.Context, dir string, sem chan struct{}, listed *listTracker) []extract.Record {
	sem <- struct{}{}
	entries, err := c.src.ListDirectory(ctx, dir)
	<-sem
	if err != nil {
		c.logger.Warn("skipping unreadable directory",
			zap.String("path", dir),
			zap.Error(err))
		return nil
	}
	listed.mark()

	results := make([][]extract.Record, len(entries))
	var wg sync.WaitGroup

	for i, entry := range entries {
		if entry.IsDir {
			if defaultSkipDirs[entry.Name] {
				continue
			}
			wg.Add(1)
			go func(i int, entry source.Entry) {
				defer wg.Done()
				results[i] = c.walk(ctx, entry.Path, sem, listed)
			}(i, entry)
			continue
		}

		if !c.wantFile(entry) {
			continue
		}

		wg.Add(1)
		go func(i int, entry source.Entry) {
			defer wg.Done()

			sem <- struct{}{}
			content, err := c.src.FetchContent(ctx, entry.Path)
			<-sem
			if err != nil {
				c.logger.Warn("skipping unreadable file",
					zap.String("path", entry.Path),
					zap.Error(err))
				return
			}
			if !utf8.ValidString(content) {
				c.logger.Debug("skipping binary file", zap.String("path", entry.Path))
				return
			}

			record := c.extractor.Extract(extract.FileItem{
				Name:      entry.Name,
				Path:      entry.Path,
				Size:      entry.Size,
				SourceURL: entry.SourceURL,
			}, content)
			results[i] = []extract.Record{record}
		}(i, entry)
	}

	wg.Wait()

	var records []extract.Record
	for _, r := range results {
		records = append(records, r...)
	}
	return records
}

// wantFile applies the source-file filters: extension allowlist,
// test/spec/story markers, private-convention underscore prefix, and
// the size cap.
func (c *Crawler) wantFile(entry source.Entry) bool {
	if strings.HasPrefix(entry.Name, "_") {
		return false
	}

	ext := strings.ToLower(path.Ext(entry.Name))
	if !c.extensions[ext] {
		return false
	}

	lower := strings.ToLower(entry.Name)
	for _, marker := range testMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	if entry.Size > c.maxFileSize {
		c.logger.Debug("skipping oversized file",
			zap.String("path", entry.Path),
			zap.Int64("size", entry.Size))
		return false
	}

	return true
}

// dedupeByName keeps the first occurrence of each component name,
// preserving crawl order.
func dedupeByName(records []extract.Record) []extract.Record {
	seen := make(map[string]bool, len(records))
	out := records[:0]
	for _, r := range records {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		out = append(out, r)
	}
	return out
}

// listTracker records whether any directory listing succeeded during
// a crawl.
type listTracker struct {
	mu sync.Mutex
	ok bool
}

func (t *listTracker) mark() {
	t.mu.Lock()
	t.ok = true
	t.mu.Unlock()
}

func (t *listTracker) succeeded() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ok
}
