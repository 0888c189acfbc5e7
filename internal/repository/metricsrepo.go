package repository

import (
	"context"

	"wsd/internal/models"
)

// MetricsRepository is the relational fallback for view series and content
// records when neither remote metrics backend is reachable.
type MetricsRepository interface {
	// DailyViews returns per-day view points for a writer or a single video
	// within the range. VideoID narrows to one video when non-empty.
	DailyViews(ctx context.Context, writerID, videoID string, rng models.DateRange) ([]models.DailyViewPoint, error)
	// Totals returns lifetime-or-range view/like/comment sums for the scope.
	Totals(ctx context.Context, writerID, videoID string, rng models.DateRange) (views, likes, comments int64, err error)
	// Content returns the writer's content records within the range.
	Content(ctx context.Context, writerID string, rng models.DateRange) ([]models.ContentRecord, error)
}
