package services

import (
	"context"
	"time"

	"wsd/internal/models"
	"wsd/internal/sources"
	"wsd/internal/structures"
)

const defaultTopContentLimit = 10

// ContentListResult is the normalized envelope for paginated content.
type ContentListResult struct {
	Items      []models.ContentRecord `json:"videos"`
	Pagination models.Pagination      `json:"pagination"`
	Origin     sources.Origin         `json:"source"`
}

// ContentServiceInterface ranks, filters, searches, and paginates the
// writer's published content.
type ContentServiceInterface interface {
	TopContent(ctx context.Context, writerID string, rng models.DateRange, limit int, contentType string) *sources.ContentResult
	LatestContent(ctx context.Context, writerID string) (*models.ContentRecord, sources.Origin)
	ListContent(ctx context.Context, writerID string, rng models.DateRange, page, pageSize int, contentType, sortField, sortOrder, search string) *ContentListResult
	FindContent(ctx context.Context, writerID, videoID string, rng models.DateRange) (*models.ContentRecord, sources.Origin)
}

type ContentService struct {
	chain           *sources.ContentChain
	topContentLimit int
	defaultPageSize int
}

func NewContentService(conf *structures.Config, chain *sources.ContentChain) ContentServiceInterface {
	limit := conf.Analytics.TopContentLimit
	if limit <= 0 {
		limit = defaultTopContentLimit
	}
	pageSize := conf.Analytics.DefaultPageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ContentService{chain: chain, topContentLimit: limit, defaultPageSize: pageSize}
}

// TopContent returns the writer's highest-viewed records in range, filtered
// by content type, limited to limit (default 10).
func (s *ContentService) TopContent(ctx context.Context, writerID string, rng models.DateRange, limit int, contentType string) *sources.ContentResult {
	if limit <= 0 {
		limit = s.topContentLimit
	}

	res := s.chain.Fetch(ctx, writerID, rng)
	items := models.FilterContentByType(res.Items, contentType)
	models.SortContent(items, models.SortFieldViews, models.SortOrderDesc)
	if len(items) > limit {
		items = items[:limit]
	}
	return &sources.ContentResult{Items: items, Origin: res.Origin}
}

// LatestContent returns the single most recently posted record, nil when the
// writer has nothing.
func (s *ContentService) LatestContent(ctx context.Context, writerID string) (*models.ContentRecord, sources.Origin) {
	rng := models.DateRange{Selector: models.RangeLifetime, End: time.Now(), Unbounded: true}
	res := s.chain.Fetch(ctx, writerID, rng)
	return models.LatestContent(res.Items), res.Origin
}

// ListContent applies type filter, search, stable sort, and 1-based
// pagination. Out-of-range pages come back empty without clamping.
func (s *ContentService) ListContent(ctx context.Context, writerID string, rng models.DateRange, page, pageSize int, contentType, sortField, sortOrder, search string) *ContentListResult {
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if sortField == "" {
		sortField = models.SortFieldDate
	}
	if sortOrder == "" {
		sortOrder = models.SortOrderDesc
	}

	res := s.chain.Fetch(ctx, writerID, rng)
	items := models.FilterContentByType(res.Items, contentType)
	items = models.SearchContent(items, search)
	models.SortContent(items, sortField, sortOrder)

	pageItems, pagination := models.PaginateContent(items, page, pageSize)
	return &ContentListResult{Items: pageItems, Pagination: pagination, Origin: res.Origin}
}

// FindContent looks a single record up by id within the writer's content.
func (s *ContentService) FindContent(ctx context.Context, writerID, videoID string, rng models.DateRange) (*models.ContentRecord, sources.Origin) {
	res := s.chain.Fetch(ctx, writerID, rng)
	for i := range res.Items {
		if res.Items[i].ID == videoID {
			return &res.Items[i], res.Origin
		}
	}
	return nil, res.Origin
}
