package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentFixture() []ContentRecord {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}
	return []ContentRecord{
		{ID: "v1", Title: "The Last Train Home", URL: "https://example.com/v1", Views: 1200, Likes: 40, Type: ContentTypeVideo, PostedDate: day(1)},
		{ID: "v2", Title: "Night Shift Stories", URL: "https://example.com/v2", Views: 5000, Likes: 300, Type: ContentTypeShort, PostedDate: day(3)},
		{ID: "v3", Title: "Train Spotting Guide", URL: "https://example.com/v3", Views: 1200, Likes: 90, Type: ContentTypeVideo, PostedDate: day(2)},
	}
}

func TestEngagementRate(t *testing.T) {
	c := ContentRecord{Views: 1000, Likes: 40, Comments: 10}
	assert.InDelta(t, 5.0, c.EngagementRate(), 1e-9)
}

func TestEngagementRate_ZeroViews(t *testing.T) {
	c := ContentRecord{Views: 0, Likes: 40}
	assert.Equal(t, float64(0), c.EngagementRate())
}

func TestFilterContentByType(t *testing.T) {
	records := contentFixture()

	videos := FilterContentByType(records, ContentTypeVideo)
	require.Len(t, videos, 2)
	assert.Equal(t, "v1", videos[0].ID)
	assert.Equal(t, "v3", videos[1].ID)

	all := FilterContentByType(records, ContentTypeAll)
	assert.Len(t, all, 3)

	empty := FilterContentByType(records, "")
	assert.Len(t, empty, 3)
}

func TestSearchContent_TitleCaseInsensitive(t *testing.T) {
	records := contentFixture()

	out := SearchContent(records, "TRAIN")
	require.Len(t, out, 2)
	assert.Equal(t, "v1", out[0].ID)
	assert.Equal(t, "v3", out[1].ID)
}

func TestSearchContent_MatchesURL(t *testing.T) {
	records := contentFixture()

	out := SearchContent(records, "example.com/v2")
	require.Len(t, out, 1)
	assert.Equal(t, "v2", out[0].ID)
}

func TestSearchContent_EmptyKeepsAll(t *testing.T) {
	records := contentFixture()
	assert.Len(t, SearchContent(records, ""), 3)
}

func TestSortContent_ViewsDescStable(t *testing.T) {
	records := contentFixture()

	SortContent(records, SortFieldViews, SortOrderDesc)

	// v2 has the most views; v1 and v3 tie at 1200 and keep input order.
	assert.Equal(t, "v2", records[0].ID)
	assert.Equal(t, "v1", records[1].ID)
	assert.Equal(t, "v3", records[2].ID)
}

func TestSortContent_DateAsc(t *testing.T) {
	records := contentFixture()

	SortContent(records, SortFieldDate, SortOrderAsc)

	assert.Equal(t, "v1", records[0].ID)
	assert.Equal(t, "v3", records[1].ID)
	assert.Equal(t, "v2", records[2].ID)
}

func TestSortContent_TitleIgnoresCase(t *testing.T) {
	records := []ContentRecord{
		{ID: "a", Title: "zebra"},
		{ID: "b", Title: "Apple"},
	}

	SortContent(records, SortFieldTitle, SortOrderAsc)

	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, "a", records[1].ID)
}

func TestSortContent_UnknownFieldNoop(t *testing.T) {
	records := contentFixture()
	SortContent(records, "bogus", SortOrderDesc)

	assert.Equal(t, "v1", records[0].ID)
	assert.Equal(t, "v2", records[1].ID)
	assert.Equal(t, "v3", records[2].ID)
}

func TestLatestContent(t *testing.T) {
	records := contentFixture()

	latest := LatestContent(records)
	require.NotNil(t, latest)
	assert.Equal(t, "v2", latest.ID)
}

func TestLatestContent_Empty(t *testing.T) {
	assert.Nil(t, LatestContent(nil))
}
