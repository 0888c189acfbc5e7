package models

import (
	"fmt"
	"regexp"
	"time"

	"wsd/internal/errs"
)

// Range selectors accepted by the analytics endpoints.
const (
	RangeLast7Days   = "last7days"
	RangeLast30Days  = "last30days"
	RangeLast90Days  = "last90days"
	RangeLast365Days = "last365days"
	RangeLifetime    = "lifetime"
	RangeCustom      = "custom"
)

var (
	yearSelector  = regexp.MustCompile(`^\d{4}$`)
	monthSelector = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// DateRange is a concrete query window resolved from a selector. Unbounded
// means no lower bound (lifetime); Start is zero in that case.
type DateRange struct {
	Selector  string
	Start     time.Time
	End       time.Time
	Unbounded bool
}

// ResolveRange maps a user-facing selector to a concrete [start,end] window.
// Lookback selectors count back from now; "lifetime" has no lower bound; a
// bare year or year-month selects that calendar period; "custom" takes the
// explicit window. Unknown selectors fail with ErrValidation. An empty
// selector defaults to last30days.
func ResolveRange(selector string, now time.Time, customStart, customEnd time.Time) (DateRange, error) {
	if selector == "" {
		selector = RangeLast30Days
	}
	end := now

	switch selector {
	case RangeLast7Days:
		return DateRange{Selector: selector, Start: now.AddDate(0, 0, -7), End: end}, nil
	case RangeLast30Days:
		return DateRange{Selector: selector, Start: now.AddDate(0, 0, -30), End: end}, nil
	case RangeLast90Days:
		return DateRange{Selector: selector, Start: now.AddDate(0, 0, -90), End: end}, nil
	case RangeLast365Days:
		return DateRange{Selector: selector, Start: now.AddDate(0, 0, -365), End: end}, nil
	case RangeLifetime:
		return DateRange{Selector: selector, End: end, Unbounded: true}, nil
	case RangeCustom:
		if customStart.IsZero() || customEnd.IsZero() || customEnd.Before(customStart) {
			return DateRange{}, fmt.Errorf("%w: custom range requires valid start and end", errs.ErrValidation)
		}
		return DateRange{Selector: selector, Start: customStart, End: customEnd}, nil
	}

	if yearSelector.MatchString(selector) {
		start, err := time.Parse("2006", selector)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: bad year selector %q", errs.ErrValidation, selector)
		}
		return DateRange{Selector: selector, Start: start, End: start.AddDate(1, 0, 0).Add(-time.Nanosecond)}, nil
	}
	if monthSelector.MatchString(selector) {
		start, err := time.Parse("2006-01", selector)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: bad month selector %q", errs.ErrValidation, selector)
		}
		return DateRange{Selector: selector, Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}, nil
	}

	return DateRange{}, fmt.Errorf("%w: unknown range selector %q", errs.ErrValidation, selector)
}

// LookbackToken renders the range as a backend lookback token ("7d", "30d",
// empty for unbounded) for backends that speak durations rather than windows.
func (r DateRange) LookbackToken() string {
	if r.Unbounded {
		return ""
	}
	days := int(r.End.Sub(r.Start).Hours() / 24)
	if days <= 0 {
		days = 1
	}
	return fmt.Sprintf("%dd", days)
}

// Contains reports whether t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Unbounded && t.Before(r.Start) {
		return false
	}
	return !t.After(r.End)
}
