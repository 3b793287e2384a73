package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Tiliavir/schedule-monitor/internal/model"
	"github.com/Tiliavir/schedule-monitor/internal/timecalc"
)

// writeReport renders a summary in the requested format.
func writeReport(w io.Writer, sum model.Summary, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(sum, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "csv":
		writeCSV(w, sum)
	case "md", "":
		writeText(w, sum)
	default:
		return fmt.Errorf("unknown format %q: use md, csv or json", format)
	}
	return nil
}

func writeText(w io.Writer, sum model.Summary) {
	fmt.Fprintf(w, "Schedule %s – %s\n", sum.Start.Format(model.DateLayout), sum.End.Format(model.DateLayout))
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "%-20s%d\n", "Dry Time (days)", sum.DryTime)
	fmt.Fprintf(w, "%-20s%s\n", "Normal (hr)", timecalc.FormatHours(sum.MonitoringHours))
	fmt.Fprintf(w, "%-20s%s\n", "After-Hours (hr)", timecalc.FormatHours(sum.AfterHours))
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "%-20s%s\n", "Total (hr)", timecalc.FormatHours(sum.TotalMonitoringHours))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Counted entries")
	for _, e := range sum.Entries {
		fmt.Fprintf(w, "  %s %-9s %-6s %sh\n",
			e.Date.Format(model.DateLayout), clockLabel(e.Time), e.Tag(), timecalc.FormatHours(e.Hours))
	}
	if len(sum.Ignored) > 0 {
		fmt.Fprintln(w)
		printIgnored(w, sum.Ignored)
	}
}

// writeCSV emits the counted entries, then the totals, then any ignored
// entries, each as its own header-led block separated by a blank line.
func writeCSV(w io.Writer, sum model.Summary) {
	fmt.Fprintln(w, "date,time,classification,hours")
	for _, e := range sum.Entries {
		fmt.Fprintf(w, "%s,%s,%s,%s\n",
			csvEscape(e.Date.Format(model.DateLayout)),
			csvEscape(csvClock(e.Time)),
			csvEscape(strings.ToLower(e.Tag())),
			timecalc.FormatHours(e.Hours),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "metric,value")
	fmt.Fprintf(w, "start,%s\n", sum.Start.Format(model.DateLayout))
	fmt.Fprintf(w, "end,%s\n", sum.End.Format(model.DateLayout))
	fmt.Fprintf(w, "dry_time,%d\n", sum.DryTime)
	fmt.Fprintf(w, "monitoring_hours,%s\n", timecalc.FormatHours(sum.MonitoringHours))
	fmt.Fprintf(w, "after_hours,%s\n", timecalc.FormatHours(sum.AfterHours))
	fmt.Fprintf(w, "total_monitoring_hours,%s\n", timecalc.FormatHours(sum.TotalMonitoringHours))

	if len(sum.Ignored) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ignored_date,ignored_time")
	for _, e := range sum.Ignored {
		fmt.Fprintf(w, "%s,%s\n", csvEscape(e.Date.Format(model.DateLayout)), csvEscape(csvClock(e.Time)))
	}
}

func csvClock(c *model.Clock) string {
	if c == nil {
		return ""
	}
	return c.String()
}

// printIgnored lists entries that fell outside the date range.
func printIgnored(w io.Writer, ignored []model.Entry) {
	fmt.Fprintln(w, "Ignored (out of range)")
	for _, e := range ignored {
		fmt.Fprintf(w, "  - %s\n", e)
	}
}

func clockLabel(c *model.Clock) string {
	if c == nil {
		return "(no time)"
	}
	return c.String()
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n  ")
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
