package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/componentd/internal/extract"
)

func rec(name, category, description string, tags ...string) extract.Record {
	return extract.Record{
		Name:        name,
		Category:    category,
		Description: description,
		Tags:        tags,
	}
}

func TestSearchExactNameOutranksContains(t *testing.T) {
	records := []extract.Record{
		rec("ButtonGroup", "Buttons", "a group of buttons"),
		rec("Button", "Buttons", "the primary button"),
	}

	results := Search(records, "button", 10)
	require.Len(t, results, 2)

	// Exact name match earns the +30 bonus on top of name-contains.
	assert.Equal(t, "Button", results[0].Record.Name)
	assert.GreaterOrEqual(t, results[0].Score, 80)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchExactNameScoresAtLeast80(t *testing.T) {
	results := Search([]extract.Record{rec("Button", "Overlays", "x")}, "button", 10)
	require.Len(t, results, 1)
	assert.GreaterOrEqual(t, results[0].Score, 80)
	assert.Contains(t, results[0].MatchedFields, "name")
}

func TestSearchNameBeatsDescriptionOnly(t *testing.T) {
	records := []extract.Record{
		rec("Card", "Cards", "a button-shaped card"),
		rec("Button", "Buttons", "plain"),
	}

	results := Search(records, "button", 10)
	require.Len(t, results, 2)
	assert.Equal(t, "Button", results[0].Record.Name)
	assert.Equal(t, []string{"description"}, results[1].MatchedFields)
	assert.Equal(t, 10, results[1].Score)
}

func TestSearchAccumulatesIndependentFields(t *testing.T) {
	records := []extract.Record{
		rec("GradientButton", "Buttons", "a gradient button", "gradient", "animated"),
	}

	results := Search(records, "gradient", 10)
	require.Len(t, results, 1)

	// name(50) + tags(20, once) + description(10)
	assert.Equal(t, 80, results[0].Score)
	assert.Equal(t, []string{"name", "tags", "description"}, results[0].MatchedFields)
}

func TestSearchTagWeightAppliedOnce(t *testing.T) {
	records := []extract.Record{
		rec("Spinner", "Feedback", "plain", "animated", "animation"),
	}

	results := Search(records, "anima", 10)
	require.Len(t, results, 1)
	assert.Equal(t, 20, results[0].Score)
}

func TestSearchExcludesZeroScores(t *testing.T) {
	records := []extract.Record{
		rec("Button", "Buttons", "plain"),
		rec("Card", "Cards", "plain"),
	}

	results := Search(records, "button", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Button", results[0].Record.Name)
}

func TestSearchTiesKeepCrawlOrder(t *testing.T) {
	records := []extract.Record{
		rec("AlphaButton", "Buttons", "plain"),
		rec("BetaButton", "Buttons", "plain"),
		rec("GammaButton", "Buttons", "plain"),
	}

	results := Search(records, "button", 10)
	require.Len(t, results, 3)
	assert.Equal(t, "AlphaButton", results[0].Record.Name)
	assert.Equal(t, "BetaButton", results[1].Record.Name)
	assert.Equal(t, "GammaButton", results[2].Record.Name)
}

func TestSearchLimit(t *testing.T) {
	var records []extract.Record
	for _, name := range []string{"A", "B", "C"} {
		records = append(records, rec(name+"Button", "Buttons", "plain"))
	}

	assert.Len(t, Search(records, "button", 2), 2)
	assert.Len(t, Search(records, "button", 0), 3) // default limit 10
}

func TestSearchNormalizesQuery(t *testing.T) {
	records := []extract.Record{rec("Button", "Buttons", "plain")}

	results := Search(records, "  BUTTON  ", 10)
	require.Len(t, results, 1)
	assert.GreaterOrEqual(t, results[0].Score, 80)

	assert.Empty(t, Search(records, "   ", 10))
}

func TestSearchScorePositiveImpliesMatchedFields(t *testing.T) {
	records := []extract.Record{
		rec("Button", "Buttons", "the primary button", "interactive"),
		rec("Card", "Cards", "plain"),
		rec("NavBar", "Navigation", "site navigation"),
	}

	for _, query := range []string{"button", "nav", "card", "interactive", "primary"} {
		for _, result := range Search(records, query, 10) {
			assert.Positive(t, result.Score, "query %q", query)
			assert.NotEmpty(t, result.MatchedFields, "query %q", query)
		}
	}
}
