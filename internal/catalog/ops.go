package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/componentd/internal/extract"
)

// ComponentSummary is the list-level view of a record: everything but
// the code and dependency details.
type ComponentSummary struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
}

// ComponentInfo is the full metadata view of a record, without code.
type ComponentInfo struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
	Path          string   `json:"path"`
	Size          int64    `json:"size"`
	SizeFormatted string   `json:"size_formatted"`
	SourceURL     string   `json:"source_url,omitempty"`
}

// ListResult is the response to a list operation.
type ListResult struct {
	Total      int                `json:"total"`
	Components []ComponentSummary `json:"components"`
}

// CodeResult is the response to a get-code operation.
type CodeResult struct {
	Name     string         `json:"name"`
	Path     string         `json:"path"`
	Code     string         `json:"code"`
	Metadata *ComponentInfo `json:"metadata,omitempty"`
}

// RefreshResult reports the outcome of a forced refresh.
type RefreshResult struct {
	Components int           `json:"components"`
	Previous   int           `json:"previous"`
	Duration   time.Duration `json:"-"`
}

// List returns component summaries, optionally filtered by category and
// truncated to limit (limit <= 0 means all). Total counts the filtered
// set before truncation.
func (s *Service) List(ctx context.Context, category string, limit int) (*ListResult, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" {
		records = filterByCategory(records, category)
	}

	result := &ListResult{Total: len(records)}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	result.Components = summarize(records)
	return result, nil
}

// SearchComponents ranks the registry against a free-text query.
// An empty result slice is a valid "no match" outcome, not an error.
func (s *Service) SearchComponents(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is required")
	}

	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	results := Search(records, query, limit)
	s.metrics.RecordSearch(ctx, len(results))
	return results, nil
}

// GetCode returns a component's full source. The name must match
// exactly (case-insensitive); otherwise a NotFoundError carries up to
// MaxSuggestions name-substring suggestions.
func (s *Service) GetCode(ctx context.Context, name string, includeMetadata bool) (*CodeResult, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	record, err := findByName(records, name)
	if err != nil {
		return nil, err
	}

	result := &CodeResult{
		Name: record.Name,
		Path: record.Path,
		Code: record.Code,
	}
	if includeMetadata {
		meta := info(*record)
		result.Metadata = &meta
	}
	return result, nil
}

// GetInfo returns a component's full metadata, including a formatted
// size.
func (s *Service) GetInfo(ctx context.Context, name string) (*ComponentInfo, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	record, err := findByName(records, name)
	if err != nil {
		return nil, err
	}

	result := info(*record)
	return &result, nil
}

// GetByCategory returns every record in the given category. An unknown
// category yields a NotFoundError listing the known categories.
func (s *Service) GetByCategory(ctx context.Context, category string) ([]ComponentSummary, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("category is required")
	}

	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	matched := filterByCategory(records, category)
	if len(matched) == 0 {
		known := make([]string, 0)
		for _, summary := range Aggregate(records) {
			known = append(known, summary.Name)
		}
		if len(known) > MaxSuggestions {
			known = known[:MaxSuggestions]
		}
		return nil, &NotFoundError{Kind: "category", Name: category, Suggestions: known}
	}
	return summarize(matched), nil
}

// Categories returns one summary per category in first-seen crawl
// order.
func (s *Service) Categories(ctx context.Context) ([]CategorySummary, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(records), nil
}

// Refresh forces a recrawl regardless of TTL and reports the old and
// new record counts.
func (s *Service) Refresh(ctx context.Context) (*RefreshResult, error) {
	s.mu.RLock()
	previous := len(s.snap.Records)
	s.mu.RUnlock()

	start := s.now()
	snap, err := s.Snapshot(ctx, true)
	if err != nil {
		return nil, err
	}

	return &RefreshResult{
		Components: len(snap.Records),
		Previous:   previous,
		Duration:   s.now().Sub(start),
	}, nil
}

// records is the single read-side accessor: every query operation goes
// through it, so the TTL policy is enforced in one place. When a
// refresh fails but a previous snapshot exists, the stale records are
// served and the failure is only logged; with no snapshot at all the
// failure propagates.
func (s *Service) records(ctx context.Context) ([]extract.Record, error) {
	snap, err := s.Snapshot(ctx, false)
	if err != nil {
		if snap.Empty() {
			return nil, err
		}
		s.logger.Warn("serving stale snapshot after failed refresh",
			zap.Time("snapshot", snap.Timestamp),
			zap.Error(err))
	}
	return snap.Records, nil
}

// findByName resolves a record by exact case-insensitive name. A miss
// returns a NotFoundError with name-substring suggestions.
func findByName(records []extract.Record, name string) (*extract.Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("component name is required")
	}

	lower := strings.ToLower(name)
	for i := range records {
		if strings.ToLower(records[i].Name) == lower {
			return &records[i], nil
		}
	}

	var suggestions []string
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), lower) {
			suggestions = append(suggestions, r.Name)
			if len(suggestions) == MaxSuggestions {
				break
			}
		}
	}
	return nil, &NotFoundError{Kind: "component", Name: name, Suggestions: suggestions}
}

func filterByCategory(records []extract.Record, category string) []extract.Record {
	lower := strings.ToLower(category)
	var out []extract.Record
	for _, r := range records {
		if strings.ToLower(r.Category) == lower {
			out = append(out, r)
		}
	}
	return out
}

func summarize(records []extract.Record) []ComponentSummary {
	out := make([]ComponentSummary, 0, len(records))
	for _, r := range records {
		out = append(out, ComponentSummary{
			Name:        r.Name,
			Category:    r.Category,
			Description: r.Description,
			Tags:        r.Tags,
			SourceURL:   r.SourceURL,
		})
	}
	return out
}

func info(r extract.Record) ComponentInfo {
	return ComponentInfo{
		Name:          r.Name,
		Category:      r.Category,
		Description:   r.Description,
		Tags:          r.Tags,
		Dependencies:  r.Dependencies,
		Path:          r.Path,
		Size:          r.Size,
		SizeFormatted: formatSize(r.Size),
		SourceURL:     r.SourceURL,
	}
}

func formatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
