package analytics

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRange_Last7Days(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	r := ResolveRange(RangeLast7Days, models.DateRange{}, now)

	require.NotNil(t, r.From)
	require.NotNil(t, r.To)
	assert.Equal(t, time.Date(2024, time.March, 8, 12, 0, 0, 0, time.Local), *r.From)
	assert.Equal(t, now, *r.To)
}

func TestResolveRange_ThisMonthStartsAtFirstDay(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	r := ResolveRange(RangeThisMonth, models.DateRange{}, now)

	require.NotNil(t, r.From)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), *r.From)
}

func TestResolveRange_LastMonthCoversPreviousCalendarMonth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	r := ResolveRange(RangeLastMonth, models.DateRange{}, now)

	require.NotNil(t, r.From)
	require.NotNil(t, r.To)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local), *r.From)
	// day zero of March is the last day of February, leap year included
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local), *r.To)
}

func TestResolveRange_ThisYearStartsAtJanuaryFirst(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	r := ResolveRange(RangeThisYear, models.DateRange{}, now)

	require.NotNil(t, r.From)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), *r.From)
}

func TestResolveRange_CustomReturnsCallerRange(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)
	custom := models.DateRange{From: &from, To: &to}

	r := ResolveRange(RangeCustom, custom, time.Now())

	assert.Equal(t, custom, r)
}

func TestResolveRange_UnknownNameFallsBackToLast30Days(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	r := ResolveRange("bogus", models.DateRange{}, now)

	require.NotNil(t, r.From)
	assert.Equal(t, now.AddDate(0, 0, -30), *r.From)
}
