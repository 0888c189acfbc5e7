package models

import (
	"math"
	"sort"
)

// ViewsTarget is the lifetime view goal the progress bar tracks.
const ViewsTarget = 100_000_000

// DailyViewPoint is one day of a resolved view series. Date is an ISO day
// ("2006-01-02") and is unique within a canonical series.
type DailyViewPoint struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

// CollapseDailyPoints produces the canonical series: duplicate dates within
// one backend response are summed (not overwritten), then the result is
// sorted ascending by date. Collapsing an already-canonical series is a
// no-op.
func CollapseDailyPoints(points []DailyViewPoint) []DailyViewPoint {
	if len(points) == 0 {
		return []DailyViewPoint{}
	}

	byDate := make(map[string]int64, len(points))
	for _, p := range points {
		byDate[p.Date] += p.Views
	}

	out := make([]DailyViewPoint, 0, len(byDate))
	for date, views := range byDate {
		out = append(out, DailyViewPoint{Date: date, Views: views})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SeriesStats holds the scalars derived from a canonical series.
type SeriesStats struct {
	TotalViews       int64   `json:"totalViews"`
	AvgDailyViews    int64   `json:"avgDailyViews"`
	HighestDay       int64   `json:"highestDay"`
	LowestDay        int64   `json:"lowestDay"`
	ProgressToTarget float64 `json:"progressToTarget"`
}

// ComputeSeriesStats derives totals, daily average, peak/trough days and
// progress toward ViewsTarget from a canonical series. ProgressToTarget is a
// percentage and is deliberately unclamped; clamping to 100 is a display
// concern.
func ComputeSeriesStats(points []DailyViewPoint) SeriesStats {
	var stats SeriesStats
	if len(points) == 0 {
		return stats
	}

	stats.LowestDay = points[0].Views
	for _, p := range points {
		stats.TotalViews += p.Views
		if p.Views > stats.HighestDay {
			stats.HighestDay = p.Views
		}
		if p.Views < stats.LowestDay {
			stats.LowestDay = p.Views
		}
	}
	stats.AvgDailyViews = int64(math.Round(float64(stats.TotalViews) / float64(len(points))))
	stats.ProgressToTarget = float64(stats.TotalViews) / float64(ViewsTarget) * 100
	return stats
}

// ClampProgress is the render-time clamp for progress-bar display.
func ClampProgress(progress float64) float64 {
	return math.Min(progress, 100)
}
