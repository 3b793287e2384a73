// Package calc runs one calculation request end to end: raw tokens in,
// summary out.
package calc

import (
	"errors"
	"time"

	"github.com/Tiliavir/schedule-monitor/internal/entry"
	"github.com/Tiliavir/schedule-monitor/internal/model"
	"github.com/Tiliavir/schedule-monitor/internal/schedule"
	"github.com/Tiliavir/schedule-monitor/internal/timecalc"
)

var (
	// ErrNoEntries is returned when no tokens were supplied at all.
	ErrNoEntries = errors.New("please provide at least one monitored date")
	// ErrInvalidEntries is returned when one or more tokens failed to parse.
	// Outcome.Invalid lists every failure.
	ErrInvalidEntries = errors.New("some entries were invalid")
)

// Request is the input of one calculation.
type Request struct {
	Start  time.Time
	End    time.Time
	Tokens []string
}

// Outcome carries the summary, or what is known about a failed request.
type Outcome struct {
	Summary model.Summary
	// Invalid holds one "<token>: <reason>" line per unparsable token.
	Invalid []string
}

// Run validates the range, parses every token and aggregates the in-range
// entries. Checks run in order: range, empty input, parse errors, and
// finally whether any entry is left inside the range.
func Run(req Request, rules schedule.Rules) (Outcome, error) {
	if timecalc.Date(req.End).Before(timecalc.Date(req.Start)) {
		return Outcome{}, schedule.ErrInvalidRange
	}
	if len(req.Tokens) == 0 {
		return Outcome{}, ErrNoEntries
	}

	parsed := entry.ParseAll(req.Tokens)
	if !parsed.OK() {
		return Outcome{Invalid: parsed.Messages()}, ErrInvalidEntries
	}

	sum, err := schedule.Calculate(req.Start, req.End, parsed.Entries, rules)
	return Outcome{Summary: sum}, err
}
