package schedule

import (
	"sort"
	"time"

	"github.com/Tiliavir/schedule-monitor/internal/model"
	"github.com/Tiliavir/schedule-monitor/internal/timecalc"
)

// Partition splits entries into those within [start, end] and those outside
// it. In-range entries keep their input order; out-of-range entries are
// sorted by date, date-only before timed, then by time.
func Partition(start, end time.Time, entries []model.Entry) (in, out []model.Entry) {
	start, end = timecalc.Date(start), timecalc.Date(end)
	in = []model.Entry{}
	out = []model.Entry{}
	for _, e := range entries {
		d := timecalc.Date(e.Date)
		if d.Before(start) || d.After(end) {
			out = append(out, e)
			continue
		}
		in = append(in, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return entryLess(out[i], out[j])
	})
	return in, out
}

func entryLess(a, b model.Entry) bool {
	da, db := timecalc.Date(a.Date), timecalc.Date(b.Date)
	if !da.Equal(db) {
		return da.Before(db)
	}
	switch {
	case a.Time == nil:
		return b.Time != nil
	case b.Time == nil:
		return false
	default:
		return a.Time.Before(*b.Time)
	}
}

// Calculate runs one request: it validates the range, separates
// out-of-range entries and builds the summary of the rest. It fails with
// ErrNoEntriesInRange when nothing is left to count.
func Calculate(start, end time.Time, entries []model.Entry, rules Rules) (model.Summary, error) {
	if timecalc.Date(end).Before(timecalc.Date(start)) {
		return model.Summary{}, ErrInvalidRange
	}
	in, out := Partition(start, end, entries)
	if len(in) == 0 {
		return model.Summary{Ignored: out}, ErrNoEntriesInRange
	}
	s, err := New(start, end, in, WithRules(rules))
	if err != nil {
		return model.Summary{}, err
	}
	return s.Summary(out), nil
}
