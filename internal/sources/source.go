// Package sources implements the metrics source adapter: several physical
// backends behind one contract, tried in a fixed preference order.
package sources

import (
	"context"

	"wsd/internal/models"
)

// Origin tags where a resolved result came from, so telemetry and callers
// can tell live data from degraded or synthetic data.
type Origin string

const (
	// OriginLive means the preferred backend answered.
	OriginLive Origin = "live"
	// OriginFallback means a lower-preference backend answered.
	OriginFallback Origin = "fallback"
	// OriginMock means every backend failed and fixed demo records were
	// substituted.
	OriginMock Origin = "mock"
	// OriginNone means every backend failed and there is nothing to show.
	OriginNone Origin = "none"
)

// Scope selects whose series to fetch: a whole writer, or one video when
// VideoID is set.
type Scope struct {
	WriterID string
	VideoID  string
}

// Series is the normalized point/aggregate shape every backend resolves to.
type Series struct {
	Points        []models.DailyViewPoint `json:"points"`
	TotalViews    int64                   `json:"totalViews"`
	TotalLikes    int64                   `json:"totalLikes"`
	TotalComments int64                   `json:"totalComments"`
	Origin        Origin                  `json:"source"`
}

// ContentResult is the normalized envelope for content lookups.
type ContentResult struct {
	Items  []models.ContentRecord `json:"items"`
	Origin Origin                 `json:"source"`
}

// SeriesSource fetches a view series for a scope. A nil error means the
// response was structurally valid, even if empty.
type SeriesSource interface {
	Name() string
	FetchSeries(ctx context.Context, scope Scope, rng models.DateRange) (*Series, error)
}

// ContentSource fetches a writer's content records.
type ContentSource interface {
	Name() string
	FetchContent(ctx context.Context, writerID string, rng models.DateRange) ([]models.ContentRecord, error)
}
