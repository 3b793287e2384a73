package entry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/schedule-monitor/internal/entry"
	"github.com/Tiliavir/schedule-monitor/internal/model"
)

func TestParse(t *testing.T) {
	sept18 := time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    string
		wantDate time.Time
		wantTime *model.Clock
	}{
		{"date only", "09/18/2025", sept18, nil},
		{"date and time", "09/18/2025 0700", sept18, &model.Clock{Hour: 7}},
		{"surrounding whitespace", "  09/18/2025   1730 ", sept18, &model.Clock{Hour: 17, Minute: 30}},
		{"tab separator", "09/18/2025\t0000", sept18, &model.Clock{}},
		{"unpadded date", "9/18/2025", sept18, nil},
		{"three-digit time takes a two-digit hour", "09/18/2025 130", sept18, &model.Clock{Hour: 13}},
		{"two-digit time", "09/18/2025 12", sept18, &model.Clock{Hour: 1, Minute: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entry.Parse(tt.token)
			require.NoError(t, err)
			assert.True(t, got.Date.Equal(tt.wantDate), "date = %v, want %v", got.Date, tt.wantDate)
			assert.Equal(t, tt.wantTime, got.Time)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		kind    error
		message string
	}{
		{"empty", "", entry.ErrEmpty, "Empty entry"},
		{"whitespace only", "   \t", entry.ErrEmpty, "Empty entry"},
		{"invalid date", "13/40/2025", entry.ErrInvalidDate, "Invalid date '13/40/2025'. Use MM/DD/YYYY."},
		{"iso date", "2025-09-18 0700", entry.ErrInvalidDate, "Invalid date '2025-09-18'. Use MM/DD/YYYY."},
		{"invalid time", "09/18/2025 2500", entry.ErrInvalidTime, "Invalid time '2500'. Use HHMM (24h)."},
		{"colon time", "09/18/2025 07:00", entry.ErrInvalidTime, "Invalid time '07:00'. Use HHMM (24h)."},
		{"too many parts", " 09/18/2025 0700 extra ", entry.ErrBadEntry, "Bad entry '09/18/2025 0700 extra'. Use 'MM/DD/YYYY [HHMM]'."},
		{"bad date wins over extra parts", "13/40/2025 0700 extra", entry.ErrInvalidDate, "Invalid date '13/40/2025'. Use MM/DD/YYYY."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entry.Parse(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "error kind = %v, want %v", err, tt.kind)
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, model.Entry{}, got)

			var te *entry.TokenError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tt.token, te.Token)
		})
	}
}

func TestParseAllCollectsEveryError(t *testing.T) {
	res := entry.ParseAll([]string{
		"09/18/2025 0700",
		"13/40/2025",
		"09/19/2025 1800",
		"09/20/2025 9999",
		"",
		"09/20/2025",
	})

	assert.False(t, res.OK())
	assert.Len(t, res.Entries, 3)
	require.Len(t, res.Errors, 3)
	assert.ErrorIs(t, res.Errors[0], entry.ErrInvalidDate)
	assert.ErrorIs(t, res.Errors[1], entry.ErrInvalidTime)
	assert.ErrorIs(t, res.Errors[2], entry.ErrEmpty)
	assert.Equal(t, []string{
		"13/40/2025: Invalid date '13/40/2025'. Use MM/DD/YYYY.",
		"09/20/2025 9999: Invalid time '9999'. Use HHMM (24h).",
		": Empty entry",
	}, res.Messages())
}

func TestParseAllEmptyBatch(t *testing.T) {
	res := entry.ParseAll(nil)
	assert.True(t, res.OK())
	assert.Empty(t, res.Entries)
	assert.Empty(t, res.Messages())
}
