package sheet

import (
	"fmt"
	"strconv"
	"time"

	"github.com/svregala/fathers-timesheet-autofill-pdf/pkg/timelog"
)

// FormatClock renders a time of day the way the sheet shows it, with no
// leading zero on the hour: "9:00 AM", "3:30 PM".
func FormatClock(c timelog.Clock) string {
	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if c.Hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, meridiem)
}

// FormatHours renders hours in their shortest form: "6" when whole,
// "38.5" otherwise, never trailing zeros.
func FormatHours(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatDate(d time.Time) string {
	return d.Format("01/02/2006")
}
