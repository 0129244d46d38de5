package timelog

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekBoundsCrossMonth(t *testing.T) {
	dates := []time.Time{
		date(2025, 8, 1),
		date(2025, 7, 28),
		date(2025, 8, 3),
	}
	start, end := WeekBounds(dates)
	assert.Equal(t, date(2025, 7, 28), start, "Monday even across a month boundary")
	assert.Equal(t, date(2025, 8, 3), end)
}

func TestWeekBoundsMidWeekDate(t *testing.T) {
	start, end := WeekBounds([]time.Time{date(2025, 8, 6)}) // a Wednesday
	assert.Equal(t, date(2025, 8, 4), start)
	assert.Equal(t, date(2025, 8, 10), end)
}

func TestWeekBoundsSunday(t *testing.T) {
	start, end := WeekBounds([]time.Time{date(2025, 8, 10)})
	assert.Equal(t, date(2025, 8, 4), start, "Sunday belongs to the preceding Monday's week")
	assert.Equal(t, date(2025, 8, 10), end)
}

func TestWeekBoundsEmptyFallsBackToCurrentWeek(t *testing.T) {
	start, end := WeekBounds(nil)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, end, start.AddDate(0, 0, 6))
}

func TestMapToWeek(t *testing.T) {
	weekStart := date(2025, 7, 28)
	entries := []DayEntry{
		{Date: date(2025, 7, 28), Hours: 8, Raw: "mon"},
		{Date: date(2025, 8, 3), Hours: 4, Raw: "sun"},
		{Date: date(2025, 8, 4), Hours: 6, Raw: "next week"},
	}
	w := MapToWeek(entries, weekStart)

	require.NotNil(t, w.Days[0])
	assert.Equal(t, "mon", w.Days[0].Raw)
	require.NotNil(t, w.Days[6], "entry six days after week start lands on Sunday")
	assert.Equal(t, "sun", w.Days[6].Raw)
	for i := 1; i < 6; i++ {
		assert.Nil(t, w.Days[i])
	}
	assert.Equal(t, weekStart, w.Start)
	assert.Equal(t, date(2025, 8, 3), w.End)
}

func TestMapToWeekDropsOutsideWindow(t *testing.T) {
	weekStart := date(2025, 7, 28)
	entries := []DayEntry{
		{Date: date(2025, 8, 4), Raw: "seven days after"},
		{Date: date(2025, 7, 27), Raw: "day before"},
	}
	w := MapToWeek(entries, weekStart)
	for i := range w.Days {
		assert.Nil(t, w.Days[i])
	}
}

func TestMapToWeekCollisionLastWriteWins(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	weekStart := date(2025, 7, 28)
	entries := []DayEntry{
		{Date: date(2025, 7, 29), Raw: "first"},
		{Date: date(2025, 7, 29), Raw: "second"},
	}
	w := MapToWeek(entries, weekStart)

	require.NotNil(t, w.Days[1])
	assert.Equal(t, "second", w.Days[1].Raw)
	require.Len(t, hook.AllEntries(), 1)
	assert.Contains(t, hook.LastEntry().Message, "Tue")
}
