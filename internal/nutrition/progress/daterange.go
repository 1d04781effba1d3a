package progress

import (
	"fmt"
	"time"
)

// DateRange is a half-open [Start, End) time window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// StartOfISOWeek returns the Monday of t's week, at midnight.
// Uses AddDate to safely handle month and year boundaries.
func StartOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday()) // 0=Sun
	if weekday == 0 {
		weekday = 7 // treat Sunday as day 7 so Mon=1..Sun=7
	}
	return t.AddDate(0, 0, -(weekday - 1)).Truncate(24 * time.Hour)
}

func StartOfMonth(t time.Time) time.Time {
	day := t.Truncate(24 * time.Hour)
	return day.AddDate(0, 0, -(day.Day() - 1))
}

func RangeToday(now time.Time) DateRange {
	start := now.Truncate(24 * time.Hour)
	return DateRange{Start: start, End: start.Add(24 * time.Hour)}
}

func RangeThisWeek(now time.Time) DateRange {
	start := StartOfISOWeek(now)
	return DateRange{Start: start, End: start.AddDate(0, 0, 7)}
}

func RangeThisMonth(now time.Time) DateRange {
	start := StartOfMonth(now)
	return DateRange{Start: start, End: start.AddDate(0, 1, 0)}
}

func RangeLast30Days(now time.Time) DateRange {
	return DateRange{Start: now.AddDate(0, 0, -30), End: now}
}

// ResolvePreset resolves a named range preset relative to now.
func ResolvePreset(name string, now time.Time) (DateRange, error) {
	switch name {
	case "today":
		return RangeToday(now), nil
	case "this-week":
		return RangeThisWeek(now), nil
	case "this-month":
		return RangeThisMonth(now), nil
	case "last-30-days", "":
		return RangeLast30Days(now), nil
	default:
		return DateRange{}, fmt.Errorf("unknown range preset: %s", name)
	}
}
