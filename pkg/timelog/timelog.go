// Package timelog turns OCR text of a handwritten weekly time log into
// structured per-day work entries and maps them onto a Monday-start week.
//
// The input is loosely formatted: dates come without years, times without
// AM/PM markers, start times may be omitted entirely, and a handwritten
// total at the end of a line may disagree with the hours computed from the
// start and end times. The package resolves these ambiguities with a fixed
// set of inference rules:
//
// - A missing or unparseable start time defaults to 9:00 AM
// - A missing end time defaults to 5:00 PM
// - An end time at or before the start time is treated as a day shift and
//   bumped forward by twelve hours ("9 to 3" means 9 AM to 3 PM)
// - A handwritten total within 0.25 hours of the computed duration is kept;
//   a larger disagreement is reported and the computed value wins
//
// Main Functions:
//
// - ParseLines: parses free-text lines into a sequence of DayEntry values
// - LoadEntries: loads pre-extracted entries from a JSON file, bypassing OCR
// - WeekBounds: determines the Monday-Sunday week covering the entries
// - MapToWeek: places entries into their weekday slots
//
// Lines that yield no recognizable date, no time segments, or an invalid
// calendar date are dropped silently; parsing is per-line and never fails
// the whole input.
package timelog

import (
	"fmt"
	"time"
)

// Weekdays holds the fixed row labels of the timesheet table, Monday first.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thur", "Fri", "Sat", "Sun"}

// Clock is a time of day with 24-hour semantics.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the clock value as minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DayEntry is one parsed work record. Entries are created once by the line
// parser and never modified afterwards; the week mapper and the renderer
// consume them read-only.
type DayEntry struct {
	Date  time.Time // calendar date, midnight UTC
	Start Clock
	End   Clock
	Hours float64 // authoritative elapsed duration for this entry
	Raw   string  // original source line, kept for diagnostics
}
