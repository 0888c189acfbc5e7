package sources

import (
	"context"

	"wsd/internal/models"
	"wsd/internal/repository"
)

// RelationalSource serves series and content out of Postgres. Last
// preference: it only answers when neither remote backend could.
type RelationalSource struct {
	repo repository.MetricsRepository
}

func NewRelationalSource(repo repository.MetricsRepository) *RelationalSource {
	return &RelationalSource{repo: repo}
}

func (s *RelationalSource) Name() string { return "relational" }

func (s *RelationalSource) FetchSeries(ctx context.Context, scope Scope, rng models.DateRange) (*Series, error) {
	points, err := s.repo.DailyViews(ctx, scope.WriterID, scope.VideoID, rng)
	if err != nil {
		return nil, err
	}
	views, likes, comments, err := s.repo.Totals(ctx, scope.WriterID, scope.VideoID, rng)
	if err != nil {
		return nil, err
	}
	return &Series{
		Points:        points,
		TotalViews:    views,
		TotalLikes:    likes,
		TotalComments: comments,
	}, nil
}

func (s *RelationalSource) FetchContent(ctx context.Context, writerID string, rng models.DateRange) ([]models.ContentRecord, error) {
	return s.repo.Content(ctx, writerID, rng)
}
