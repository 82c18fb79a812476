package analytics

import (
	"time"

	"fintrack/internal/models"
)

// Named relative time ranges offered by the analytics views
const (
	RangeLast7Days  = "7days"
	RangeLast30Days = "30days"
	RangeLast90Days = "90days"
	RangeThisMonth  = "thisMonth"
	RangeLastMonth  = "lastMonth"
	RangeThisYear   = "thisYear"
	RangeCustom     = "custom"
)

// ResolveRange translates a named relative range into a concrete DateRange
// anchored at now. The custom name returns the caller-supplied range
// untouched; an unknown name falls back to the last 30 days.
func ResolveRange(name string, custom models.DateRange, now time.Time) models.DateRange {
	to := now

	switch name {
	case RangeLast7Days:
		from := now.AddDate(0, 0, -7)
		return models.DateRange{From: &from, To: &to}
	case RangeLast90Days:
		from := now.AddDate(0, 0, -90)
		return models.DateRange{From: &from, To: &to}
	case RangeThisMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return models.DateRange{From: &from, To: &to}
	case RangeLastMonth:
		from := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, now.Location())
		return models.DateRange{From: &from, To: &end}
	case RangeThisYear:
		from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return models.DateRange{From: &from, To: &to}
	case RangeCustom:
		return custom
	case RangeLast30Days:
		fallthrough
	default:
		from := now.AddDate(0, 0, -30)
		return models.DateRange{From: &from, To: &to}
	}
}
