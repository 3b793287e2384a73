package timecalc

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/Tiliavir/schedule-monitor/internal/model"
)

// dateParseLayout accepts one- or two-digit month and day with a four-digit year.
const dateParseLayout = "1/2/2006"

// clockPattern reads a 24h HHMM prefix the way strptime's %H%M does: each
// field prefers two digits and falls back to one ("130" is 13:00, "12" is
// 01:02). Any unconsumed input is rejected by ParseClock.
var clockPattern = regexp.MustCompile(`^(2[0-3]|[01][0-9]|[0-9])([0-5][0-9]|[0-9])`)

// ParseDate parses an MM/DD/YYYY string into a naive calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateParseLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Date(t), nil
}

// ParseClock parses a 24h HHMM string.
func ParseClock(s string) (model.Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil || len(m[0]) != len(s) {
		return model.Clock{}, fmt.Errorf("cannot parse %q as HHMM", s)
	}
	h, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return model.Clock{Hour: h, Minute: minute}, nil
}

// Date returns the calendar date of t as midnight UTC. Dates carry no zone;
// pinning them to UTC keeps day arithmetic free of DST shifts.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// FormatHours formats an hour total with one decimal, e.g. "10.0".
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}
