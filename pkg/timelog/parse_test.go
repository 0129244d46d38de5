package timelog

import (
	"slices"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParseLinesAgreeingHandwrittenTotal(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	entries := slices.Collect(ParseLines("8/4 - 9 to 3pm - 6", 8, 2025))
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, date(2025, 8, 4), e.Date)
	assert.Equal(t, Clock{Hour: 9}, e.Start)
	assert.Equal(t, Clock{Hour: 15}, e.End)
	assert.Equal(t, 6.0, e.Hours)
	assert.Equal(t, "8/4 - 9 to 3pm - 6", e.Raw)
	assert.Empty(t, hook.AllEntries(), "agreement within tolerance must not warn")
}

func TestParseLinesDisagreeingHandwrittenTotal(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	entries := slices.Collect(ParseLines("8/5 - 9 to 5 - 10", 8, 2025))
	require.Len(t, entries, 1)

	// Computed 8h wins over the handwritten 10.
	assert.Equal(t, 8.0, entries[0].Hours)
	require.Len(t, hook.AllEntries(), 1)
	assert.Contains(t, hook.LastEntry().Message, "8/5/2025")
	assert.Contains(t, hook.LastEntry().Message, "using computed")
}

func TestParseLinesUnmarkedEndBumpsToAfternoon(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	entries := slices.Collect(ParseLines("8/4 - 9 to 3", 8, 2025))
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, Clock{Hour: 9}, e.Start)
	assert.Equal(t, Clock{Hour: 15}, e.End, "end at or before start means the afternoon")
	// The trailing "3" also reads as a handwritten total; it disagrees with
	// the computed 6h, so the computed value wins with a warning.
	assert.Equal(t, 6.0, e.Hours)
	require.Len(t, hook.AllEntries(), 1)
}

func TestParseLinesBareStartHourHonored(t *testing.T) {
	entries := slices.Collect(ParseLines("8/4 - 8 to 3pm - 7", 8, 2025))
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, Clock{Hour: 8}, e.Start, "a written start hour must not fall back to 9")
	assert.Equal(t, Clock{Hour: 15}, e.End)
	assert.Equal(t, 7.0, e.Hours)
}

func TestParseLinesBareDayNumber(t *testing.T) {
	entries := slices.Collect(ParseLines("4 - 9 to 3pm - 6", 8, 2025))
	require.Len(t, entries, 1)
	assert.Equal(t, date(2025, 8, 4), entries[0].Date)
}

func TestParseLinesExplicitYear(t *testing.T) {
	entries := slices.Collect(ParseLines("12/29/2024 - 9 to 5pm", 1, 2025))
	require.Len(t, entries, 1)
	assert.Equal(t, date(2024, 12, 29), entries[0].Date)
}

func TestParseLinesSkipsMalformed(t *testing.T) {
	text := "lorem ipsum\n\n8/4 - 9 to 3pm - 6\nno date here either\n"
	entries := slices.Collect(ParseLines(text, 8, 2025))
	require.Len(t, entries, 1)
	assert.Equal(t, date(2025, 8, 4), entries[0].Date)
}

func TestParseLinesSkipsInvalidCalendarDate(t *testing.T) {
	entries := slices.Collect(ParseLines("2/30 - 9 to 5pm", 2, 2025))
	assert.Empty(t, entries)
}

func TestParseLinesRequiresSeparator(t *testing.T) {
	entries := slices.Collect(ParseLines("8/4 9 5pm", 8, 2025))
	assert.Empty(t, entries)
}

func TestParseLinesDefaultEnd(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	entries := slices.Collect(ParseLines("8/6 - 9", 8, 2025))
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, Clock{Hour: 9}, e.Start)
	assert.Equal(t, Clock{Hour: 17}, e.End, "missing end defaults to 5 PM")
	// The trailing "9" reads as a handwritten total and disagrees with the
	// computed 8h, so the computed value wins.
	assert.Equal(t, 8.0, e.Hours)
	require.Len(t, hook.AllEntries(), 1)
}

func TestParseLinesOrderPreserved(t *testing.T) {
	text := "7/28 - 9 to 5pm\n7/29 - 9 to 3pm\n7/30 - 9 to 1pm\n"
	entries := slices.Collect(ParseLines(text, 7, 2025))
	require.Len(t, entries, 3)
	assert.Equal(t, date(2025, 7, 28), entries[0].Date)
	assert.Equal(t, date(2025, 7, 29), entries[1].Date)
	assert.Equal(t, date(2025, 7, 30), entries[2].Date)
}

func TestParseLinesLazy(t *testing.T) {
	text := "7/28 - 9 to 5pm\n7/29 - 9 to 3pm\n"
	var got []DayEntry
	for e := range ParseLines(text, 7, 2025) {
		got = append(got, e)
		break
	}
	require.Len(t, got, 1)
	assert.Equal(t, date(2025, 7, 28), got[0].Date)
}

func TestTotalHours(t *testing.T) {
	entries := []DayEntry{{Hours: 6}, {Hours: 8}, {Hours: 7.33}}
	assert.Equal(t, 21.33, TotalHours(entries))
	assert.Equal(t, 0.0, TotalHours(nil))
}
