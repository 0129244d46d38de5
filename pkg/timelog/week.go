package timelog

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Week maps the seven weekday slots of one Monday-start week to at most one
// entry each. Slots without an entry stay nil.
type Week struct {
	Start time.Time // Monday
	End   time.Time // following Sunday, inclusive
	Days  [7]*DayEntry
}

// WeekBounds returns the Monday on or before the earliest date and the
// Sunday six days after it. With no dates it falls back to the current
// real-world week.
func WeekBounds(dates []time.Time) (time.Time, time.Time) {
	var earliest time.Time
	if len(dates) == 0 {
		now := time.Now()
		earliest = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		earliest = dates[0]
		for _, d := range dates[1:] {
			if d.Before(earliest) {
				earliest = d
			}
		}
	}
	start := earliest.AddDate(0, 0, -mondayOffset(earliest))
	return start, start.AddDate(0, 0, 6)
}

// mondayOffset is the number of days since the most recent Monday
// (Monday = 0, Sunday = 6).
func mondayOffset(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// MapToWeek places entries into their weekday slots relative to weekStart.
// Entries outside the seven-day window belong to a different week and are
// dropped. Two entries landing on the same weekday usually mean a parsing
// error upstream; the later one wins and a warning is emitted.
func MapToWeek(entries []DayEntry, weekStart time.Time) Week {
	w := Week{Start: weekStart, End: weekStart.AddDate(0, 0, 6)}
	for i := range entries {
		e := &entries[i]
		offset := int(e.Date.Sub(weekStart).Hours() / 24)
		if offset < 0 || offset > 6 {
			continue
		}
		if prev := w.Days[offset]; prev != nil {
			log.Warnf("%s already filled by %q; overwriting with %q", Weekdays[offset], prev.Raw, e.Raw)
		}
		w.Days[offset] = e
	}
	return w
}
