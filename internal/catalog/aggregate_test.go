package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/componentd/internal/extract"
)

func TestAggregate(t *testing.T) {
	records := []extract.Record{
		rec("Button", "Buttons", "x"),
		rec("GradientCard", "Cards", "x"),
		rec("IconButton", "Buttons", "x"),
		rec("BarChart", "Data Visualization", "x"),
	}

	summaries := Aggregate(records)
	require.Len(t, summaries, 3)

	// First-seen category order across the input sequence.
	assert.Equal(t, "Buttons", summaries[0].Name)
	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, "2 buttons components", summaries[0].Description)

	assert.Equal(t, "Cards", summaries[1].Name)
	assert.Equal(t, 1, summaries[1].Count)
	assert.Equal(t, "1 cards component", summaries[1].Description)

	assert.Equal(t, "Data Visualization", summaries[2].Name)
	assert.Equal(t, "1 data visualization component", summaries[2].Description)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}
