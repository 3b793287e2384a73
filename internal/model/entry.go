package model

import (
	"fmt"
	"time"
)

// DateLayout is the user-facing date format for entries and date ranges.
const DateLayout = "01/02/2006"

// Clock is a naive time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is strictly earlier in the day than o.
func (c Clock) Before(o Clock) bool {
	return c.Minutes() < o.Minutes()
}

// String formats the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalText encodes the clock as HH:MM in JSON output.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes an HH:MM clock.
func (c *Clock) UnmarshalText(b []byte) error {
	var h, m int
	if n, err := fmt.Sscanf(string(b), "%d:%d", &h, &m); err != nil || n != 2 {
		return fmt.Errorf("invalid clock %q, want HH:MM", b)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return fmt.Errorf("clock %q out of range", b)
	}
	c.Hour, c.Minute = h, m
	return nil
}

// Entry represents one monitored check-in: a calendar date and an optional
// time of day. A nil Time means a date-only entry.
type Entry struct {
	Date time.Time `json:"date"`
	Time *Clock    `json:"time"`
}

// String renders the entry as "MM/DD/YYYY" or "MM/DD/YYYY HH:MM".
func (e Entry) String() string {
	if e.Time == nil {
		return e.Date.Format(DateLayout)
	}
	return e.Date.Format(DateLayout) + " " + e.Time.String()
}

// Classified is an entry counted by a schedule, with its window
// classification and base hour weight.
type Classified struct {
	Entry
	Normal bool    `json:"normal"`
	Hours  float64 `json:"hours"`
}

// Tag returns the display label for the classification.
func (c Classified) Tag() string {
	if c.Normal {
		return "Normal"
	}
	return "After"
}

// Summary is the result of one calculation request.
type Summary struct {
	Start                time.Time    `json:"start"`
	End                  time.Time    `json:"end"`
	DryTime              int          `json:"dry_time"`
	MonitoringHours      float64      `json:"monitoring_hours"`
	AfterHours           float64      `json:"after_hours"`
	TotalMonitoringHours float64      `json:"total_monitoring_hours"`
	Entries              []Classified `json:"entries"`
	Ignored              []Entry      `json:"ignored"`
}
