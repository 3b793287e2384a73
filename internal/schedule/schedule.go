// Package schedule classifies monitored entries over a date range and
// totals their normal and after-hours weights.
package schedule

import (
	"errors"
	"sort"
	"time"

	"github.com/Tiliavir/schedule-monitor/internal/model"
	"github.com/Tiliavir/schedule-monitor/internal/timecalc"
)

var (
	// ErrInvalidRange is returned when the end date precedes the start date.
	ErrInvalidRange = errors.New("end date must be >= start date")
	// ErrNoEntriesInRange is returned by Calculate when every entry lies
	// outside the date range.
	ErrNoEntriesInRange = errors.New("no valid monitored dates within the date range")
)

// Option customizes a Schedule.
type Option func(*Schedule)

// WithRules overrides the default classification window and weights.
func WithRules(r Rules) Option {
	return func(s *Schedule) {
		s.rules = r
	}
}

// Schedule is an immutable, date-deduplicated set of entries within
// [start, end], sorted ascending by date.
type Schedule struct {
	start   time.Time
	end     time.Time
	entries []model.Entry
	rules   Rules
}

// New builds a Schedule. Entries outside [start, end] are dropped and, for a
// date seen more than once, the first supplied entry wins.
func New(start, end time.Time, entries []model.Entry, opts ...Option) (*Schedule, error) {
	start, end = timecalc.Date(start), timecalc.Date(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	s := &Schedule{start: start, end: end, rules: DefaultRules()}
	for _, opt := range opts {
		opt(s)
	}

	seen := make(map[time.Time]bool, len(entries))
	kept := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		d := timecalc.Date(e.Date)
		if !s.inRange(d) || seen[d] {
			continue
		}
		seen[d] = true
		kept = append(kept, model.Entry{Date: d, Time: copyClock(e.Time)})
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})
	s.entries = kept
	return s, nil
}

func (s *Schedule) inRange(d time.Time) bool {
	return !d.Before(s.start) && !d.After(s.end)
}

// DryTime returns the number of whole days between start and end.
func (s *Schedule) DryTime() int {
	return max(timecalc.DaysBetween(s.start, s.end), 0)
}

// Entries returns the counted entries in date order with their
// classification and weight.
func (s *Schedule) Entries() []model.Classified {
	out := make([]model.Classified, len(s.entries))
	last := len(s.entries) - 1
	for i, e := range s.entries {
		out[i] = model.Classified{
			Entry:  model.Entry{Date: e.Date, Time: copyClock(e.Time)},
			Normal: s.rules.IsNormal(e.Date, e.Time),
			Hours:  s.rules.BaseHours(i == 0, i == last),
		}
	}
	return out
}

// splitHours returns the normal and after-hours totals.
func (s *Schedule) splitHours() (normal, after float64) {
	for _, c := range s.Entries() {
		if c.Normal {
			normal += c.Hours
		} else {
			after += c.Hours
		}
	}
	return normal, after
}

// MonitoringHours returns the weighted hours of entries in the normal window.
func (s *Schedule) MonitoringHours() float64 {
	n, _ := s.splitHours()
	return n
}

// AfterHours returns the weighted hours of entries outside the normal window.
func (s *Schedule) AfterHours() float64 {
	_, a := s.splitHours()
	return a
}

// TotalMonitoringHours returns the sum of normal and after-hours weights.
func (s *Schedule) TotalMonitoringHours() float64 {
	n, a := s.splitHours()
	return n + a
}

// Summary collects the derived metrics. ignored lists entries the caller
// left out of the schedule, typically the out-of-range ones from Partition.
func (s *Schedule) Summary(ignored []model.Entry) model.Summary {
	n, a := s.splitHours()
	if ignored == nil {
		ignored = []model.Entry{}
	}
	return model.Summary{
		Start:                s.start,
		End:                  s.end,
		DryTime:              s.DryTime(),
		MonitoringHours:      n,
		AfterHours:           a,
		TotalMonitoringHours: n + a,
		Entries:              s.Entries(),
		Ignored:              ignored,
	}
}

func copyClock(c *model.Clock) *model.Clock {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
