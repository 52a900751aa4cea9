package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 3, 1, 14, 30, 45, 0, time.Local)

	lo, hi := dayBounds(at)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), lo)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.Local), hi)
}

func TestDayBoundsSplitAdjacentInstants(t *testing.T) {
	// 23:59 and 00:01 the next day are two minutes apart but belong to
	// different calendar days
	lateNight := time.Date(2025, 3, 1, 23, 59, 0, 0, time.Local)
	earlyMorning := time.Date(2025, 3, 2, 0, 1, 0, 0, time.Local)

	lo, hi := dayBounds(lateNight)
	assert.True(t, !lateNight.Before(lo) && lateNight.Before(hi))
	assert.False(t, !earlyMorning.Before(lo) && earlyMorning.Before(hi))

	lo, hi = dayBounds(earlyMorning)
	assert.True(t, !earlyMorning.Before(lo) && earlyMorning.Before(hi))
	assert.False(t, lateNight.Before(hi) && !lateNight.Before(lo))
}

func TestRangeBoundsInclusive(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local)
	end := time.Date(2025, 3, 3, 8, 0, 0, 0, time.Local)

	lo, hi := rangeBounds(start, end)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), lo)
	// end day is inclusive, so the upper bound is the start of March 4th
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.Local), hi)
}

func TestRangeBoundsSingleDay(t *testing.T) {
	day := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	lo, hi := rangeBounds(day, day)
	dlo, dhi := dayBounds(day)

	assert.Equal(t, dlo, lo)
	assert.Equal(t, dhi, hi)
}

func TestLocalDay(t *testing.T) {
	at := time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2025-12-31", localDay(at))
}
