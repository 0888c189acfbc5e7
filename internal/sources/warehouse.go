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

// WarehouseSource queries the warehouse rollup service holding historical
// daily aggregates and the published content catalog. Second preference for
// series, first preference for content.
type WarehouseSource struct {
	baseURL string
	client  *http.Client
}

func NewWarehouseSource(conf *structures.Config) *WarehouseSource {
	timeout := conf.Analytics.Warehouse.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &WarehouseSource{
		baseURL: conf.Analytics.Warehouse.URL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *WarehouseSource) Name() string { return "warehouse" }

// Warehouse rows use their own column naming; normalization to the common
// point shape happens here, at the adapter boundary.
type warehouseRollupResponse struct {
	Rows []struct {
		Day       string `json:"day"`
		ViewCount int64  `json:"view_count"`
	} `json:"rows"`
	TotalViews    int64 `json:"total_views"`
	TotalLikes    int64 `json:"total_likes"`
	TotalComments int64 `json:"total_comments"`
}

type warehouseContentResponse struct {
	Data []models.ContentRecord `json:"data"`
}

func (s *WarehouseSource) FetchSeries(ctx context.Context, scope Scope, rng models.DateRange) (*Series, error) {
	params := s.rangeParams(rng)
	params.Set("writer_id", scope.WriterID)
	if scope.VideoID != "" {
		params.Set("video_id", scope.VideoID)
	}

	var resp warehouseRollupResponse
	if err := s.getJSON(ctx, "/api/v1/rollups/daily?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	points := make([]models.DailyViewPoint, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		points = append(points, models.DailyViewPoint{Date: row.Day, Views: row.ViewCount})
	}
	return &Series{
		Points:        points,
		TotalViews:    resp.TotalViews,
		TotalLikes:    resp.TotalLikes,
		TotalComments: resp.TotalComments,
	}, nil
}

func (s *WarehouseSource) FetchContent(ctx context.Context, writerID string, rng models.DateRange) ([]models.ContentRecord, error) {
	params := s.rangeParams(rng)
	params.Set("writer_id", writerID)

	var resp warehouseContentResponse
	if err := s.getJSON(ctx, "/api/v1/content?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []models.ContentRecord{}, nil
	}
	return resp.Data, nil
}

func (s *WarehouseSource) rangeParams(rng models.DateRange) url.Values {
	params := url.Values{}
	if !rng.Unbounded {
		params.Set("start", rng.Start.Format(time.RFC3339))
	}
	params.Set("end", rng.End.Format(time.RFC3339))
	return params
}

func (s *WarehouseSource) getJSON(ctx context.Context, path string, out any) error {
	if s.baseURL == "" {
		return fmt.Errorf("warehouse backend not configured")
	}
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
		return fmt.Errorf("warehouse backend returned %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("warehouse response malformed: %w", err)
	}
	return nil
}
