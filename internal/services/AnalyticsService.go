package services

import (
	"context"
	"sync"
	"time"

	"wsd/internal/errs"
	"wsd/internal/models"
	"wsd/internal/providers"
	"wsd/internal/sources"
)

// OverviewPayload is the composite the dashboard needs in one round trip.
type OverviewPayload struct {
	Range         string                  `json:"range"`
	Source        sources.Origin          `json:"source"`
	Stats         models.SeriesStats      `json:"stats"`
	ProgressBar   float64                 `json:"progressBarValue"`
	TotalLikes    int64                   `json:"totalLikes"`
	TotalComments int64                   `json:"totalComments"`
	DailyViews    []models.DailyViewPoint `json:"dailyViews"`
	TopVideos     []models.ContentRecord  `json:"topVideos"`
	LatestVideo   *models.ContentRecord   `json:"latestVideo"`
}

// VideoDetailPayload is a single record with its chart and retention data.
type VideoDetailPayload struct {
	Video          *models.ContentRecord   `json:"video"`
	DailyViews     []models.DailyViewPoint `json:"dailyViews"`
	Stats          models.SeriesStats      `json:"stats"`
	EngagementRate float64                 `json:"engagementRate"`
	RetentionRate  float64                 `json:"retentionRate"`
	Source         sources.Origin          `json:"source"`
}

// AnalyticsServiceInterface is the aggregation and fallback resolver.
type AnalyticsServiceInterface interface {
	Overview(ctx context.Context, writerID, rangeSelector string, customStart, customEnd time.Time) (*OverviewPayload, error)
	VideoDetail(ctx context.Context, writerID, videoID, rangeSelector string) (*VideoDetailPayload, error)
}

type AnalyticsService struct {
	series  *sources.SeriesChain
	content ContentServiceInterface
	logger  providers.Logger
}

func NewAnalyticsService(logger providers.Logger, series *sources.SeriesChain, content ContentServiceInterface) AnalyticsServiceInterface {
	return &AnalyticsService{series: series, content: content, logger: logger}
}

// Overview resolves the range, fetches the canonical series, and joins it
// with top and latest content. The three fetches run concurrently; top and
// latest degrade independently to empty/nil without failing the composite.
// "No data" is never an error here.
func (s *AnalyticsService) Overview(ctx context.Context, writerID, rangeSelector string, customStart, customEnd time.Time) (*OverviewPayload, error) {
	rng, err := models.ResolveRange(rangeSelector, time.Now(), customStart, customEnd)
	if err != nil {
		return nil, err
	}

	var (
		wg     sync.WaitGroup
		series *sources.Series
		top    []models.ContentRecord
		latest *models.ContentRecord
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		series = s.series.Fetch(ctx, sources.Scope{WriterID: writerID}, rng)
	}()
	go func() {
		defer wg.Done()
		res := s.content.TopContent(ctx, writerID, rng, 0, models.ContentTypeAll)
		if res.Origin != sources.OriginMock {
			top = res.Items
		} else {
			// mock top content would misrepresent the dashboard ranking;
			// degrade to empty instead
			top = []models.ContentRecord{}
		}
	}()
	go func() {
		defer wg.Done()
		record, origin := s.content.LatestContent(ctx, writerID)
		if origin != sources.OriginMock {
			latest = record
		}
	}()
	wg.Wait()

	canonical := models.CollapseDailyPoints(series.Points)
	stats := models.ComputeSeriesStats(canonical)

	return &OverviewPayload{
		Range:         rng.Selector,
		Source:        series.Origin,
		Stats:         stats,
		ProgressBar:   models.ClampProgress(stats.ProgressToTarget),
		TotalLikes:    series.TotalLikes,
		TotalComments: series.TotalComments,
		DailyViews:    canonical,
		TopVideos:     top,
		LatestVideo:   latest,
	}, nil
}

// VideoDetail resolves one video's record, canonical series, and derived
// rates. Missing video is ErrNotFound; missing series data degrades to the
// empty state.
func (s *AnalyticsService) VideoDetail(ctx context.Context, writerID, videoID, rangeSelector string) (*VideoDetailPayload, error) {
	rng, err := models.ResolveRange(rangeSelector, time.Now(), time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	video, origin := s.content.FindContent(ctx, writerID, videoID, rng)
	if video == nil {
		return nil, errs.ErrNotFound
	}

	series := s.series.Fetch(ctx, sources.Scope{WriterID: writerID, VideoID: videoID}, rng)
	canonical := models.CollapseDailyPoints(series.Points)
	stats := models.ComputeSeriesStats(canonical)

	retention := 0.0
	if stats.HighestDay > 0 {
		retention = float64(stats.AvgDailyViews) / float64(stats.HighestDay) * 100
	}

	return &VideoDetailPayload{
		Video:          video,
		DailyViews:     canonical,
		Stats:          stats,
		EngagementRate: video.EngagementRate(),
		RetentionRate:  retention,
		Source:         origin,
	}, nil
}
