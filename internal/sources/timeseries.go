package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"wsd/internal/models"
	"wsd/internal/structures"
)

// TimeseriesSource queries the time-series service that holds recent
// high-resolution view data. It is the preferred series backend.
type TimeseriesSource struct {
	baseURL string
	client  *http.Client
}

func NewTimeseriesSource(conf *structures.Config) *TimeseriesSource {
	timeout := conf.Analytics.Timeseries.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TimeseriesSource{
		baseURL: conf.Analytics.Timeseries.URL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *TimeseriesSource) Name() string { return "timeseries" }

type timeseriesResponse struct {
	Points []models.DailyViewPoint `json:"points"`
	Totals struct {
		Views    int64 `json:"views"`
		Likes    int64 `json:"likes"`
		Comments int64 `json:"comments"`
	} `json:"totals"`
}

// FetchSeries queries GET /api/v1/query/daily. Any non-200 status or decode
// failure is an error so the chain can fall through.
func (s *TimeseriesSource) FetchSeries(ctx context.Context, scope Scope, rng models.DateRange) (*Series, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("timeseries backend not configured")
	}

	params := url.Values{}
	params.Set("writer_id", scope.WriterID)
	if scope.VideoID != "" {
		params.Set("video_id", scope.VideoID)
	}
	if !rng.Unbounded {
		params.Set("start", rng.Start.Format(time.RFC3339))
	}
	params.Set("end", rng.End.Format(time.RFC3339))

	var resp timeseriesResponse
	if err := s.getJSON(ctx, "/api/v1/query/daily?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	points := resp.Points
	if points == nil {
		points = []models.DailyViewPoint{}
	}
	return &Series{
		Points:        points,
		TotalViews:    resp.Totals.Views,
		TotalLikes:    resp.Totals.Likes,
		TotalComments: resp.Totals.Comments,
	}, nil
}

func (s *TimeseriesSource) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("timeseries backend returned %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("timeseries response malformed: %w", err)
	}
	return nil
}
