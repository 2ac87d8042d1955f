package catalog

import (
	"sort"
	"strings"

	"github.com/fyrsmithlabs/componentd/internal/extract"
)

// Field match weights. A record accrues every applicable weight; the
// matches are independent, not mutually exclusive.
const (
	weightNameContains = 50
	weightNameExact    = 30 // bonus on top of the contains weight
	weightCategory     = 30
	weightTags         = 20 // applied once even if several tags match
	weightDescription  = 10
)

// DefaultSearchLimit caps result counts when the caller gives none.
const DefaultSearchLimit = 10

// SearchResult is one scored record.
type SearchResult struct {
	// Record is the matched component.
	Record extract.Record

	// Score is the accumulated match weight. Always positive in
	// returned results.
	Score int

	// MatchedFields names the fields that contributed to the score.
	// Non-empty whenever Score > 0.
	MatchedFields []string
}

// Search scores every record against the query and returns the top
// matches, ordered by score descending. Ties keep crawl order (stable
// sort), which is why record order is preserved through the pipeline.
// Zero-score records are excluded.
func Search(records []extract.Record, query string, limit int) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var results []SearchResult
	for _, record := range records {
		score, fields := scoreRecord(record, query)
		if score == 0 {
			continue
		}
		results = append(results, SearchResult{
			Record:        record,
			Score:         score,
			MatchedFields: fields,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// scoreRecord accumulates the weighted field matches for one record
// against a pre-normalized query.
func scoreRecord(record extract.Record, query string) (int, []string) {
	score := 0
	var fields []string

	name := strings.ToLower(record.Name)
	if strings.Contains(name, query) {
		score += weightNameContains
		if name == query {
			score += weightNameExact
		}
		fields = append(fields, "name")
	}

	if strings.Contains(strings.ToLower(record.Category), query) {
		score += weightCategory
		fields = append(fields, "category")
	}

	for _, tag := range record.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			score += weightTags
			fields = append(fields, "tags")
			break
		}
	}

	if strings.Contains(strings.ToLower(record.Description), query) {
		score += weightDescription
		fields = append(fields, "description")
	}

	return score, fields
}
