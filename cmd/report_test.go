package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Tiliavir/schedule-monitor/internal/model"
)

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{"with\rreturn", "\"with\rreturn\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func sampleSummary() model.Summary {
	d := func(day int) time.Time { return time.Date(2025, 9, day, 0, 0, 0, 0, time.UTC) }
	return model.Summary{
		Start:                d(17),
		End:                  d(19),
		DryTime:              2,
		MonitoringHours:      4,
		AfterHours:           6,
		TotalMonitoringHours: 10,
		Entries: []model.Classified{
			{Entry: model.Entry{Date: d(17), Time: &model.Clock{Hour: 7}}, Normal: false, Hours: 4},
			{Entry: model.Entry{Date: d(18), Time: &model.Clock{Hour: 18}}, Normal: false, Hours: 2},
			{Entry: model.Entry{Date: d(19)}, Normal: true, Hours: 4},
		},
		Ignored: []model.Entry{{Date: d(21)}},
	}
}

func TestWriteReportMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, sampleSummary(), "md"); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Schedule 09/17/2025 – 09/19/2025",
		"Dry Time (days)     2",
		"Normal (hr)         4.0",
		"After-Hours (hr)    6.0",
		"Total (hr)          10.0",
		"09/17/2025 07:00     After  4.0h",
		"09/19/2025 (no time) Normal 4.0h",
		"  - 09/21/2025",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, sampleSummary(), "csv"); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	want := "date,time,classification,hours\n" +
		"09/17/2025,07:00,after,4.0\n" +
		"09/18/2025,18:00,after,2.0\n" +
		"09/19/2025,,normal,4.0\n" +
		"\n" +
		"metric,value\n" +
		"start,09/17/2025\n" +
		"end,09/19/2025\n" +
		"dry_time,2\n" +
		"monitoring_hours,4.0\n" +
		"after_hours,6.0\n" +
		"total_monitoring_hours,10.0\n" +
		"\n" +
		"ignored_date,ignored_time\n" +
		"09/21/2025,\n"
	if buf.String() != want {
		t.Errorf("csv report = %q, want %q", buf.String(), want)
	}
}

func TestWriteReportCSVWithoutIgnored(t *testing.T) {
	sum := sampleSummary()
	sum.Ignored = nil
	var buf bytes.Buffer
	if err := writeReport(&buf, sum, "csv"); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "total_monitoring_hours,10.0\n") {
		t.Errorf("csv report should end with the totals block:\n%s", out)
	}
	if strings.Contains(out, "ignored_date") {
		t.Errorf("csv report has an ignored block with nothing ignored:\n%s", out)
	}
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, sampleSummary(), "json"); err != nil {
		t.Fatalf("writeReport: %v", err)
	}
	var out struct {
		DryTime int     `json:"dry_time"`
		Total   float64 `json:"total_monitoring_hours"`
		Entries []struct {
			Time   *string `json:"time"`
			Normal bool    `json:"normal"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.DryTime != 2 || out.Total != 10 || len(out.Entries) != 3 {
		t.Errorf("unexpected JSON report: %+v", out)
	}
	if out.Entries[2].Time != nil || !out.Entries[2].Normal {
		t.Errorf("date-only entry = %+v, want null time and normal", out.Entries[2])
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	if err := writeReport(&bytes.Buffer{}, sampleSummary(), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
