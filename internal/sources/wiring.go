package sources

import "wsd/internal/providers"

// Backend preference order is fixed: the recent high-resolution store first,
// the warehouse rollups second, the relational copy last.

func NewDefaultSeriesChain(logger providers.Logger, metrics providers.MetricsProviderInterface, ts *TimeseriesSource, wh *WarehouseSource, rel *RelationalSource) *SeriesChain {
	return NewSeriesChain(logger, metrics, ts, wh, rel)
}

func NewDefaultContentChain(logger providers.Logger, metrics providers.MetricsProviderInterface, wh *WarehouseSource, rel *RelationalSource) *ContentChain {
	return NewContentChain(logger, metrics, wh, rel)
}
