package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/componentd/internal/extract"
)

func newTestService(records ...extract.Record) *Service {
	return NewService(&mockCrawler{records: records}, Config{})
}

func fixtureRecords() []extract.Record {
	return []extract.Record{
		{
			Name:        "AnimatedButton",
			Category:    "Buttons",
			Description: "An animated call to action",
			Tags:        []string{"animated", "interactive"},
			Code:        "export const AnimatedButton = 1;",
			Path:        "components/AnimatedButton.tsx",
			Size:        2048,
			SourceURL:   "https://github.com/acme/ui-kit/blob/main/components/AnimatedButton.tsx",
		},
		{
			Name:         "GradientCard",
			Category:     "Cards",
			Description:  "A card with a gradient border",
			Tags:         []string{"gradient", "tailwind"},
			Dependencies: []string{"clsx"},
			Code:         "export const GradientCard = 1;",
			Path:         "components/GradientCard.tsx",
			Size:         512,
		},
		{
			Name:        "NavBar",
			Category:    "Navigation",
			Description: "Top navigation bar",
			Code:        "export const NavBar = 1;",
			Path:        "components/NavBar.tsx",
			Size:        100,
		},
	}
}

func TestList(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	result, err := svc.List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Components, 3)
	assert.Equal(t, "AnimatedButton", result.Components[0].Name)
	assert.Equal(t, "Buttons", result.Components[0].Category)
}

func TestListCategoryFilterAndLimit(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	result, err := svc.List(context.Background(), "cards", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "GradientCard", result.Components[0].Name)

	result, err = svc.List(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Components, 2)
}

func TestSearchComponentsRequiresQuery(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	_, err := svc.SearchComponents(context.Background(), "  ", 0)
	assert.Error(t, err)
}

func TestGetCode(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	result, err := svc.GetCode(context.Background(), "animatedbutton", false)
	require.NoError(t, err)
	assert.Equal(t, "AnimatedButton", result.Name)
	assert.Equal(t, "export const AnimatedButton = 1;", result.Code)
	assert.Nil(t, result.Metadata)

	result, err = svc.GetCode(context.Background(), "GradientCard", true)
	require.NoError(t, err)
	require.NotNil(t, result.Metadata)
	assert.Equal(t, []string{"clsx"}, result.Metadata.Dependencies)
}

func TestGetCodePartialNameSuggests(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	_, err := svc.GetCode(context.Background(), "Butt", false)
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "component", nf.Kind)
	assert.Contains(t, nf.Suggestions, "AnimatedButton")
	assert.True(t, IsNotFound(err))
}

func TestGetCodeNoSuggestions(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	_, err := svc.GetCode(context.Background(), "Carousel3D", false)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Empty(t, nf.Suggestions)
}

func TestGetInfo(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	result, err := svc.GetInfo(context.Background(), "AnimatedButton")
	require.NoError(t, err)
	assert.Equal(t, "Buttons", result.Category)
	assert.Equal(t, int64(2048), result.Size)
	assert.Equal(t, "2.0 KB", result.SizeFormatted)
}

func TestGetByCategory(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	records, err := svc.GetByCategory(context.Background(), "Buttons")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "AnimatedButton", records[0].Name)
}

func TestGetByCategoryUnknownListsKnown(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	_, err := svc.GetByCategory(context.Background(), "Widgets")
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "category", nf.Kind)
	assert.Equal(t, []string{"Buttons", "Cards", "Navigation"}, nf.Suggestions)
}

func TestCategories(t *testing.T) {
	svc := newTestService(fixtureRecords()...)

	summaries, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "Buttons", summaries[0].Name)
	assert.Equal(t, 1, summaries[0].Count)
}

func TestRefreshReportsCounts(t *testing.T) {
	mc := &mockCrawler{records: fixtureRecords()}
	svc := NewService(mc, Config{})

	result, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Previous)
	assert.Equal(t, 3, result.Components)

	result, err = svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Previous)
	assert.Equal(t, 2, mc.callCount())
}

func TestReadOpsServeStaleAfterFailedRefresh(t *testing.T) {
	mc := &mockCrawler{records: fixtureRecords()}
	svc, now := newClockedService(mc)

	_, err := svc.List(context.Background(), "", 0)
	require.NoError(t, err)

	mc.setError(assert.AnError)
	*now = now.Add(DefaultTTL + time.Minute)

	// TTL expired, refresh fails, but the stale snapshot still serves.
	result, err := svc.List(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)

	// A forced refresh surfaces the failure.
	_, err = svc.Refresh(context.Background())
	require.Error(t, err)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "2.0 KB", formatSize(2048))
	assert.Equal(t, "1.5 MB", formatSize(3*1024*1024/2))
}
