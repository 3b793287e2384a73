package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Tiliavir/schedule-monitor/internal/model"
)

func TestEntryString(t *testing.T) {
	d := time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		e    model.Entry
		want string
	}{
		{model.Entry{Date: d}, "09/18/2025"},
		{model.Entry{Date: d, Time: &model.Clock{Hour: 7, Minute: 5}}, "09/18/2025 07:05"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("Entry.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestClockBefore(t *testing.T) {
	a := model.Clock{Hour: 7, Minute: 59}
	b := model.Clock{Hour: 8}
	if !a.Before(b) {
		t.Error("07:59 should be before 08:00")
	}
	if b.Before(b) {
		t.Error("08:00 should not be before itself")
	}
}

func TestClassifiedJSON(t *testing.T) {
	c := model.Classified{
		Entry:  model.Entry{Date: time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC), Time: &model.Clock{Hour: 18}},
		Normal: false,
		Hours:  2,
	}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"date":"2025-09-18T00:00:00Z","time":"18:00","normal":false,"hours":2}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back model.Classified
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Time == nil || *back.Time != *c.Time {
		t.Errorf("Unmarshal time = %v, want %v", back.Time, c.Time)
	}
}

func TestClockUnmarshalTextRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "7", "24:00", "12:60", "noon"} {
		var c model.Clock
		if err := c.UnmarshalText([]byte(in)); err == nil {
			t.Errorf("UnmarshalText(%q) = %v, want error", in, c)
		}
	}
}
