package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/schedule-monitor/internal/calc"
	"github.com/Tiliavir/schedule-monitor/internal/source"
	"github.com/Tiliavir/schedule-monitor/internal/timecalc"
)

var (
	calcStart   string
	calcEnd     string
	calcEntries string
	calcFile    string
	calcFormat  string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate monitoring hours for a date range",
	Example: `  smc calc --start 09/17/2025 --end 09/19/2025 --entries "09/17/2025 0700, 09/18/2025 1800, 09/19/2025"
  smc calc --start 09/17/2025 --end 09/19/2025 --file entries.txt --format json
  cat entries.txt | smc calc --start 09/17/2025 --end 09/19/2025 --file -`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&calcStart, "start", "", "Start date (MM/DD/YYYY); defaults to today")
	calcCmd.Flags().StringVar(&calcEnd, "end", "", "End date (MM/DD/YYYY); defaults to the start date")
	calcCmd.Flags().StringVar(&calcEntries, "entries", "", "Comma-separated entries: MM/DD/YYYY [HHMM]")
	calcCmd.Flags().StringVar(&calcFile, "file", "", "File with one entry per line, or - for stdin; takes precedence over --entries")
	calcCmd.Flags().StringVar(&calcFormat, "format", "md", "Output format: md, csv, json")
}

func runCalc(cmd *cobra.Command, args []string) error {
	rules, err := cfg.Rules()
	if err != nil {
		return err
	}

	start, end, err := parseRange(calcStart, calcEnd, time.Now())
	if err != nil {
		return err
	}

	var fileTokens []string
	hasFile := calcFile != ""
	if hasFile {
		fileTokens, err = source.LoadFile(calcFile)
		if err != nil {
			return err
		}
	}
	tokens := source.Select(fileTokens, hasFile, calcEntries)
	log.Debugw("entries read", "count", len(tokens), "from_file", hasFile)

	out, err := calc.Run(calc.Request{Start: start, End: end, Tokens: tokens}, rules)
	switch {
	case errors.Is(err, calc.ErrInvalidEntries):
		for _, msg := range out.Invalid {
			log.Warnw("invalid entry", "detail", msg)
		}
		return fmt.Errorf("some entries were invalid:\n  %s", joinLines(out.Invalid))
	case err != nil:
		if len(out.Summary.Ignored) > 0 {
			printIgnored(cmd.ErrOrStderr(), out.Summary.Ignored)
		}
		return err
	}

	log.Debugw("calculated", "entries", len(out.Summary.Entries), "ignored", len(out.Summary.Ignored))
	return writeReport(cmd.OutOrStdout(), out.Summary, calcFormat)
}

// parseRange parses --start/--end. A missing start means today; a missing
// end means the start date.
func parseRange(startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	start := timecalc.Date(now)
	if startStr != "" {
		d, err := timecalc.ParseDate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start value %q: use MM/DD/YYYY", startStr)
		}
		start = d
	}
	end := start
	if endStr != "" {
		d, err := timecalc.ParseDate(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end value %q: use MM/DD/YYYY", endStr)
		}
		end = d
	}
	return start, end, nil
}
