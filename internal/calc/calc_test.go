package calc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/schedule-monitor/internal/calc"
	"github.com/Tiliavir/schedule-monitor/internal/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRun(t *testing.T) {
	out, err := calc.Run(calc.Request{
		Start:  date(2025, 9, 17),
		End:    date(2025, 9, 19),
		Tokens: []string{"09/17/2025 0700", "09/18/2025 1800", "09/19/2025", "09/21/2025"},
	}, schedule.DefaultRules())
	require.NoError(t, err)

	assert.Empty(t, out.Invalid)
	assert.Equal(t, 2, out.Summary.DryTime)
	assert.Equal(t, 4.0, out.Summary.MonitoringHours)
	assert.Equal(t, 6.0, out.Summary.AfterHours)
	assert.Equal(t, 10.0, out.Summary.TotalMonitoringHours)
	assert.Len(t, out.Summary.Ignored, 1)
}

func TestRunErrors(t *testing.T) {
	rules := schedule.DefaultRules()
	tests := []struct {
		name    string
		req     calc.Request
		wantErr error
	}{
		{
			name:    "inverted range beats everything",
			req:     calc.Request{Start: date(2025, 9, 20), End: date(2025, 9, 18), Tokens: []string{"bogus"}},
			wantErr: schedule.ErrInvalidRange,
		},
		{
			name:    "no tokens",
			req:     calc.Request{Start: date(2025, 9, 18), End: date(2025, 9, 20)},
			wantErr: calc.ErrNoEntries,
		},
		{
			name:    "parse errors",
			req:     calc.Request{Start: date(2025, 9, 18), End: date(2025, 9, 20), Tokens: []string{"13/40/2025", "09/18/2025 2500"}},
			wantErr: calc.ErrInvalidEntries,
		},
		{
			name:    "nothing in range",
			req:     calc.Request{Start: date(2025, 9, 18), End: date(2025, 9, 20), Tokens: []string{"09/21/2025"}},
			wantErr: schedule.ErrNoEntriesInRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Run(tt.req, rules)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunReportsAllInvalidTokens(t *testing.T) {
	out, err := calc.Run(calc.Request{
		Start:  date(2025, 9, 18),
		End:    date(2025, 9, 20),
		Tokens: []string{"13/40/2025", "09/18/2025", "09/18/2025 2500"},
	}, schedule.DefaultRules())

	require.ErrorIs(t, err, calc.ErrInvalidEntries)
	assert.Equal(t, []string{
		"13/40/2025: Invalid date '13/40/2025'. Use MM/DD/YYYY.",
		"09/18/2025 2500: Invalid time '2500'. Use HHMM (24h).",
	}, out.Invalid)
}

func TestRunComparesCalendarDates(t *testing.T) {
	// Same day, end earlier in the day than start.
	out, err := calc.Run(calc.Request{
		Start:  time.Date(2025, 9, 18, 15, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 9, 18, 9, 0, 0, 0, time.UTC),
		Tokens: []string{"09/18/2025 1000"},
	}, schedule.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, 0, out.Summary.DryTime)
	assert.Equal(t, 4.0, out.Summary.MonitoringHours)
	assert.Len(t, out.Summary.Entries, 1)
}
