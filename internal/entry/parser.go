// Package entry parses raw "MM/DD/YYYY [HHMM]" tokens into schedule entries.
package entry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Tiliavir/schedule-monitor/internal/model"
	"github.com/Tiliavir/schedule-monitor/internal/timecalc"
)

// Error kinds reported for a single token. Match them with errors.Is.
var (
	ErrEmpty       = errors.New("empty entry")
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
	ErrBadEntry    = errors.New("bad entry")
)

// TokenError describes why one raw token could not be parsed.
type TokenError struct {
	// Token is the raw token as supplied.
	Token string
	// Value is the offending substring: the date or time segment, or the
	// whole trimmed token for ErrBadEntry.
	Value string
	Kind  error
}

func (e *TokenError) Error() string {
	switch e.Kind {
	case ErrEmpty:
		return "Empty entry"
	case ErrInvalidDate:
		return fmt.Sprintf("Invalid date '%s'. Use MM/DD/YYYY.", e.Value)
	case ErrInvalidTime:
		return fmt.Sprintf("Invalid time '%s'. Use HHMM (24h).", e.Value)
	default:
		return fmt.Sprintf("Bad entry '%s'. Use 'MM/DD/YYYY [HHMM]'.", e.Value)
	}
}

func (e *TokenError) Unwrap() error { return e.Kind }

// Parse converts a single raw token into an Entry. Exactly one of the
// results is meaningful: the entry on success, a *TokenError otherwise.
func Parse(token string) (model.Entry, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return model.Entry{}, &TokenError{Token: token, Kind: ErrEmpty}
	}

	parts := strings.Fields(s)
	d, err := timecalc.ParseDate(parts[0])
	if err != nil {
		return model.Entry{}, &TokenError{Token: token, Value: parts[0], Kind: ErrInvalidDate}
	}

	e := model.Entry{Date: d}
	switch len(parts) {
	case 1:
	case 2:
		c, err := timecalc.ParseClock(parts[1])
		if err != nil {
			return model.Entry{}, &TokenError{Token: token, Value: parts[1], Kind: ErrInvalidTime}
		}
		e.Time = &c
	default:
		return model.Entry{}, &TokenError{Token: token, Value: s, Kind: ErrBadEntry}
	}
	return e, nil
}

// Result holds the outcome of parsing a batch of tokens.
type Result struct {
	Entries []model.Entry
	Errors  []*TokenError
}

// OK reports whether every token parsed.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Messages returns one "<token>: <reason>" line per failed token, in input order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, fmt.Sprintf("%s: %s", e.Token, e.Error()))
	}
	return out
}

// ParseAll parses every token independently and collects all failures so a
// caller can report each invalid entry in one pass.
func ParseAll(tokens []string) Result {
	res := Result{Entries: []model.Entry{}}
	for _, tok := range tokens {
		e, err := Parse(tok)
		if err != nil {
			var te *TokenError
			if errors.As(err, &te) {
				res.Errors = append(res.Errors, te)
			}
			continue
		}
		res.Entries = append(res.Entries, e)
	}
	return res
}
