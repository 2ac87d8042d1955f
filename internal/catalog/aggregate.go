package catalog

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/componentd/internal/extract"
)

// CategorySummary describes one category present in the registry.
type CategorySummary struct {
	// Name is the category name.
	Name string `json:"name"`

	// Count is the number of records in the category. Always >= 1.
	Count int `json:"count"`

	// Description is a synthesized human-readable summary.
	Description string `json:"description"`
}

// Aggregate groups records into one summary per distinct category, in
// first-seen order across the input sequence.
func Aggregate(records []extract.Record) []CategorySummary {
	counts := make(map[string]int)
	var order []string

	for _, r := range records {
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	summaries := make([]CategorySummary, 0, len(order))
	for _, category := range order {
		summaries = append(summaries, CategorySummary{
			Name:        category,
			Count:       counts[category],
			Description: describeCategory(category, counts[category]),
		})
	}
	return summaries
}

func describeCategory(category string, count int) string {
	noun := "components"
	if count == 1 {
		noun = "component"
	}
	return fmt.Sprintf("%d %s %s", count, strings.ToLower(category), noun)
}
