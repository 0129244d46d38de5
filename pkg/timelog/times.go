package timelog

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

var timeRe = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(?:([ap])\.?m?\.?)?`)

// ParseTime extracts a time of day from free text: an hour, an optional
// minute and an optional AM/PM marker ("am", "a.m.", "a" and the PM
// equivalents, any case). A present marker converts the hour to 24-hour
// form (12 PM stays 12, 12 AM becomes 0, PM adds twelve otherwise). When
// the text carries no marker, defaultMeridiem ("a" or "p", empty for none)
// is applied instead; with neither, the hour is kept as written for later
// inference. Returns ok=false when no numeric hour is found.
func ParseTime(text, defaultMeridiem string) (Clock, bool) {
	m := timeRe.FindStringSubmatch(text)
	if m == nil {
		return Clock{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	meridiem := strings.ToLower(m[3])
	if meridiem == "" {
		meridiem = strings.ToLower(defaultMeridiem)
	}
	switch meridiem {
	case "p":
		if hour != 12 {
			hour += 12
		}
	case "a":
		if hour == 12 {
			hour = 0
		}
	}
	return Clock{Hour: hour % 24, Minute: minute}, true
}

// InferTimes resolves the start and end times of a shift from their raw
// text segments. A start that fails to parse defaults to 9:00 when
// assumeStart9 is set (and again as a final fallback); a missing end
// defaults to 17:00. When both sides parse, the pair goes through
// resolveDayShift to fix ends that landed at or before the start.
func InferTimes(startText, endText string, assumeStart9 bool) (Clock, Clock) {
	start, startOK := ParseTime(startText, "")
	end, endOK := ParseTime(endText, "")

	if assumeStart9 && !startOK {
		start, startOK = Clock{Hour: 9}, true
	}

	if startOK && endOK {
		return start, resolveDayShift(start, end)
	}

	if !startOK {
		start = Clock{Hour: 9}
	}
	if !endOK {
		end = Clock{Hour: 17}
	}
	return start, end
}

// resolveDayShift is the disambiguation policy for shifts whose AM/PM
// markers were stripped or ambiguous: an end at or before the start is
// assumed to mean the same-day afternoon and bumped forward twelve hours
// ("9 to 3" becomes 9:00-15:00). This is a heuristic, not a proof; it can
// produce implausibly short shifts ("11 to 1" becomes two hours), so every
// firing is logged for audit.
func resolveDayShift(start, end Clock) Clock {
	if end.Minutes() > start.Minutes() {
		return end
	}
	bumped := Clock{Hour: (end.Hour + 12) % 24, Minute: end.Minute}
	log.Debugf("ambiguous shift %s-%s: assuming day shift, end becomes %s", start, end, bumped)
	return bumped
}

// HoursBetween returns the elapsed time from start to end in hours, rounded
// to two decimal places. An end not strictly after the start is taken to
// cross midnight, so the result is never negative.
func HoursBetween(start, end Clock) float64 {
	s, e := start.Minutes(), end.Minutes()
	if e <= s {
		e += 24 * 60
	}
	return round2(float64(e-s) / 60.0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
