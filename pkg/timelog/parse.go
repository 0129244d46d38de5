package timelog

import (
	"iter"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// hoursTolerance is how far a handwritten total may stray from the computed
// duration before the computed value wins.
const hoursTolerance = 0.25

var (
	// month/day with optional 2-4 digit year, slash or hyphen separated
	dateRe = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?`)
	// bare day number at the start of a line, e.g. "4 - 9 to 3pm"
	leadingDayRe = regexp.MustCompile(`^(\d{1,2})\b`)
	// segment separators: dash-like runes or the word "to"
	segmentRe = regexp.MustCompile(`(?i)[-\x{2013}\x{2014}]|to`)
	// trailing explicit hours figure, integer or decimal
	trailingHoursRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*$`)
)

// ParseLines parses free-text lines like "8/4 - 9 to 3pm - 6" into DayEntry
// values. A date with an explicit month ("8/4") is honored; a leading bare
// day number is combined with the configured month and year. The returned
// sequence is lazy and preserves input order; blank and unparseable lines
// are skipped.
func ParseLines(text string, month, year int) iter.Seq[DayEntry] {
	return func(yield func(DayEntry) bool) {
		for raw := range strings.Lines(text) {
			raw = strings.TrimRight(raw, "\r\n")
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			entry, ok := parseLine(raw, line, month, year)
			if !ok {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// parseLine turns one non-blank line into a DayEntry. ok=false means the
// line carried no recognizable date, no time segments, or an invalid
// calendar date; such lines are dropped without failing the run.
func parseLine(raw, line string, month, year int) (DayEntry, bool) {
	var m, d, y int
	if dm := dateRe.FindStringSubmatch(line); dm != nil {
		m = atoi(dm[1])
		d = atoi(dm[2])
		y = year
		if dm[3] != "" {
			y = atoi(dm[3])
		}
	} else if dm := leadingDayRe.FindStringSubmatch(line); dm != nil {
		d = atoi(dm[1])
		m = month
		y = year
	} else {
		return DayEntry{}, false
	}

	// Split into time segments: "9 to 3pm" or "9-3pm". At least one
	// separator must be present; segment 0 is the date portion.
	parts := segmentRe.Split(line, -1)
	if len(parts) < 2 {
		return DayEntry{}, false
	}
	startText := parts[1]
	endText := "5pm"
	if len(parts) >= 3 {
		endText = parts[2]
	}

	start, end := InferTimes(startText, endText, true)
	computed := HoursBetween(start, end)

	hours := computed
	if hm := trailingHoursRe.FindStringSubmatch(line); hm != nil {
		handwritten, _ := strconv.ParseFloat(hm[1], 64)
		if math.Abs(handwritten-computed) > hoursTolerance {
			log.Warnf("%d/%d/%d: handwritten %gh vs computed %gh; using computed", m, d, y, handwritten, computed)
		} else {
			// Keep the handwritten figure; it preserves intentional
			// rounding like "6" against a computed 6.0.
			hours = handwritten
		}
	}

	date, ok := makeDate(y, m, d)
	if !ok {
		return DayEntry{}, false
	}

	return DayEntry{Date: date, Start: start, End: end, Hours: hours, Raw: raw}, true
}

// makeDate builds a UTC midnight date and rejects combinations the
// Gregorian calendar does not have (time.Date would silently normalize
// day 31 of a 30-day month into the next month).
func makeDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// TotalHours sums the authoritative hours of all entries, rounded to two
// decimal places. Entries that later fall outside the rendered week still
// count; the footer total reflects everything that was parsed.
func TotalHours(entries []DayEntry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	return round2(sum)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
