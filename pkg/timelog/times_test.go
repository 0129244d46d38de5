package timelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Clock
	}{
		{"midnight", "12am", Clock{Hour: 0}},
		{"noon", "12pm", Clock{Hour: 12}},
		{"afternoon", "1pm", Clock{Hour: 13}},
		{"morning with minutes", "11:30am", Clock{Hour: 11, Minute: 30}},
		{"dotted marker", "3 p.m.", Clock{Hour: 15}},
		{"bare hour kept as written", "7", Clock{Hour: 7}},
		{"uppercase marker", "9PM", Clock{Hour: 21}},
		{"embedded in text", "around 4:15 pm or so", Clock{Hour: 16, Minute: 15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.text, "")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeNoHour(t *testing.T) {
	_, ok := ParseTime("lorem ipsum", "")
	assert.False(t, ok)
	_, ok = ParseTime("", "")
	assert.False(t, ok)
}

func TestParseTimeDefaultMeridiem(t *testing.T) {
	got, ok := ParseTime("7", "p")
	require.True(t, ok)
	assert.Equal(t, Clock{Hour: 19}, got)

	got, ok = ParseTime("12", "a")
	require.True(t, ok)
	assert.Equal(t, Clock{Hour: 0}, got)

	// An explicit marker beats the default.
	got, ok = ParseTime("7am", "p")
	require.True(t, ok)
	assert.Equal(t, Clock{Hour: 7}, got)
}

func TestInferTimes(t *testing.T) {
	tests := []struct {
		name      string
		startText string
		endText   string
		wantStart Clock
		wantEnd   Clock
	}{
		{"both explicit", "9am", "3pm", Clock{Hour: 9}, Clock{Hour: 15}},
		{"end before start bumps twelve hours", "9", "3", Clock{Hour: 9}, Clock{Hour: 15}},
		{"missing start defaults to nine", "", "3pm", Clock{Hour: 9}, Clock{Hour: 15}},
		{"missing end defaults to five", "9", "", Clock{Hour: 9}, Clock{Hour: 17}},
		{"both missing", "", "", Clock{Hour: 9}, Clock{Hour: 17}},
		{"equal times treated as day shift", "9", "9", Clock{Hour: 9}, Clock{Hour: 21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := InferTimes(tt.startText, tt.endText, true)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestInferTimesNoAssumedStart(t *testing.T) {
	// Even without the 9 AM assumption the final fallback still applies.
	start, end := InferTimes("", "3pm", false)
	assert.Equal(t, Clock{Hour: 9}, start)
	assert.Equal(t, Clock{Hour: 15}, end)
}

func TestHoursBetween(t *testing.T) {
	assert.Equal(t, 8.0, HoursBetween(Clock{Hour: 9}, Clock{Hour: 17}))
	assert.Equal(t, 8.0, HoursBetween(Clock{Hour: 22}, Clock{Hour: 6}), "overnight wraparound")
	assert.Equal(t, 6.5, HoursBetween(Clock{Hour: 9}, Clock{Hour: 15, Minute: 30}))
	assert.Equal(t, 24.0, HoursBetween(Clock{Hour: 9}, Clock{Hour: 9}), "equal times cross midnight")
	assert.Equal(t, 0.25, HoursBetween(Clock{Hour: 9}, Clock{Hour: 9, Minute: 15}))
}
