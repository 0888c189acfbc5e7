package sources

import (
	"context"
	"time"

	"wsd/internal/models"
	"wsd/internal/providers"
)

// SeriesChain tries series backends in preference order and returns the
// first structurally valid response. Exhausting every backend is not an
// error: the caller gets an empty series tagged OriginNone and renders its
// "no data yet" state.
type SeriesChain struct {
	sources []SeriesSource
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewSeriesChain(logger providers.Logger, metrics providers.MetricsProviderInterface, sources ...SeriesSource) *SeriesChain {
	return &SeriesChain{sources: sources, logger: logger, metrics: metrics}
}

func (c *SeriesChain) Fetch(ctx context.Context, scope Scope, rng models.DateRange) *Series {
	for i, src := range c.sources {
		start := time.Now()
		series, err := src.FetchSeries(ctx, scope, rng)
		c.metrics.ObserveUpstreamDuration(src.Name(), time.Since(start))
		if err != nil {
			c.logger.Warnf(providers.TypeApp, "series backend %s failed, falling through: %s", src.Name(), err)
			c.metrics.IncBackendFallback(src.Name())
			continue
		}

		if i == 0 {
			series.Origin = OriginLive
		} else {
			series.Origin = OriginFallback
		}
		return series
	}

	c.logger.Warnf(providers.TypeApp, "all series backends exhausted for writer %s", scope.WriterID)
	return &Series{Points: []models.DailyViewPoint{}, Origin: OriginNone}
}

// ContentChain tries content backends in preference order. Exhausting every
// backend substitutes the fixed mock set so the caller stays populated; the
// substitution is logged and counted so telemetry can tell it apart from
// real data.
type ContentChain struct {
	sources []ContentSource
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewContentChain(logger providers.Logger, metrics providers.MetricsProviderInterface, sources ...ContentSource) *ContentChain {
	return &ContentChain{sources: sources, logger: logger, metrics: metrics}
}

func (c *ContentChain) Fetch(ctx context.Context, writerID string, rng models.DateRange) *ContentResult {
	for i, src := range c.sources {
		start := time.Now()
		items, err := src.FetchContent(ctx, writerID, rng)
		c.metrics.ObserveUpstreamDuration(src.Name(), time.Since(start))
		if err != nil {
			c.logger.Warnf(providers.TypeApp, "content backend %s failed, falling through: %s", src.Name(), err)
			c.metrics.IncBackendFallback(src.Name())
			continue
		}

		origin := OriginLive
		if i > 0 {
			origin = OriginFallback
		}
		return &ContentResult{Items: items, Origin: origin}
	}

	c.logger.Warnf(providers.TypeApp, "all content backends exhausted for writer %s, serving mock records", writerID)
	c.metrics.IncMockServed()
	return &ContentResult{Items: MockContent(writerID), Origin: OriginMock}
}
