package schedule

import (
	"fmt"
	"time"

	"github.com/Tiliavir/schedule-monitor/internal/model"
	"github.com/Tiliavir/schedule-monitor/internal/timecalc"
)

const (
	// DefaultEdgeHours is the weight of the first and last counted entry.
	DefaultEdgeHours = 4.0
	// DefaultMiddleHours is the weight of every other counted entry.
	DefaultMiddleHours = 2.0
)

// Window is the weekday time-of-day range [Start, End) treated as normal hours.
type Window struct {
	Start model.Clock
	End   model.Clock
}

// Contains reports whether c lies in [Start, End).
func (w Window) Contains(c model.Clock) bool {
	return !c.Before(w.Start) && c.Before(w.End)
}

// Rules holds the classification window and the base hour weights.
type Rules struct {
	Window      Window
	EdgeHours   float64
	MiddleHours float64
}

// DefaultRules returns the standard 08:00–17:00 window with 4h/2h weights.
func DefaultRules() Rules {
	return Rules{
		Window: Window{
			Start: model.Clock{Hour: 8},
			End:   model.Clock{Hour: 17},
		},
		EdgeHours:   DefaultEdgeHours,
		MiddleHours: DefaultMiddleHours,
	}
}

// Validate checks that the window is non-empty and the weights non-negative.
func (r Rules) Validate() error {
	if !r.Window.Start.Before(r.Window.End) {
		return fmt.Errorf("window start %s must be before end %s", r.Window.Start, r.Window.End)
	}
	if r.EdgeHours < 0 || r.MiddleHours < 0 {
		return fmt.Errorf("hour weights must not be negative (edge %v, middle %v)", r.EdgeHours, r.MiddleHours)
	}
	return nil
}

// IsNormal reports whether an entry on date d with optional time t falls in
// the normal window. Weekends are always after-hours; a weekday entry with
// no time counts as a regular workday.
func (r Rules) IsNormal(d time.Time, t *model.Clock) bool {
	if !timecalc.IsWeekday(d) {
		return false
	}
	if t == nil {
		return true
	}
	return r.Window.Contains(*t)
}

// BaseHours returns the weight for an entry. An entry that is both first
// and last still counts once.
func (r Rules) BaseHours(isFirst, isLast bool) float64 {
	if isFirst || isLast {
		return r.EdgeHours
	}
	return r.MiddleHours
}
