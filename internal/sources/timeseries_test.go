package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wsd/internal/models"
	"wsd/internal/structures"
)

func timeseriesConf(url string) *structures.Config {
	return &structures.Config{
		Analytics: structures.AnalyticsConfig{
			Timeseries: structures.BackendConfig{URL: url, Timeout: 2 * time.Second},
		},
	}
}

func testRange(t *testing.T) models.DateRange {
	t.Helper()
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	rng, err := models.ResolveRange(models.RangeLast7Days, now, time.Time{}, time.Time{})
	require.NoError(t, err)
	return rng
}

func TestTimeseriesSource_FetchSeries(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"points": [
				{"date": "2025-06-10", "views": 100},
				{"date": "2025-06-11", "views": 200}
			],
			"totals": {"views": 300, "likes": 12, "comments": 3}
		}`))
	}))
	defer srv.Close()

	src := NewTimeseriesSource(timeseriesConf(srv.URL))
	series, err := src.FetchSeries(context.Background(), Scope{WriterID: "w1", VideoID: "v9"}, testRange(t))

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/query/daily", gotPath)
	assert.Equal(t, []string{"w1"}, gotQuery["writer_id"])
	assert.Equal(t, []string{"v9"}, gotQuery["video_id"])
	assert.Contains(t, gotQuery, "start")
	assert.Contains(t, gotQuery, "end")

	require.Len(t, series.Points, 2)
	assert.Equal(t, int64(300), series.TotalViews)
	assert.Equal(t, int64(12), series.TotalLikes)
	assert.Equal(t, int64(3), series.TotalComments)
}

func TestTimeseriesSource_UnboundedRangeOmitsStart(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"points": []}`))
	}))
	defer srv.Close()

	src := NewTimeseriesSource(timeseriesConf(srv.URL))
	lifetime := models.DateRange{Selector: models.RangeLifetime, End: time.Now(), Unbounded: true}
	series, err := src.FetchSeries(context.Background(), Scope{WriterID: "w1"}, lifetime)

	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "start")
	assert.NotNil(t, series.Points)
	assert.Empty(t, series.Points)
}

func TestTimeseriesSource_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := NewTimeseriesSource(timeseriesConf(srv.URL))
	_, err := src.FetchSeries(context.Background(), Scope{WriterID: "w1"}, testRange(t))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestTimeseriesSource_MalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"points": [{`))
	}))
	defer srv.Close()

	src := NewTimeseriesSource(timeseriesConf(srv.URL))
	_, err := src.FetchSeries(context.Background(), Scope{WriterID: "w1"}, testRange(t))

	assert.Error(t, err)
}

func TestTimeseriesSource_NotConfigured(t *testing.T) {
	src := NewTimeseriesSource(timeseriesConf(""))
	_, err := src.FetchSeries(context.Background(), Scope{WriterID: "w1"}, testRange(t))

	assert.Error(t, err)
}
