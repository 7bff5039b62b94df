package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/username/cyclecal/pkg/dateutil"
)

// Format is an output format for reports
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

const dateLayout = "2006-01-02"

// ErrUnknownFormat is returned for output formats other than table, json and yaml
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates an output format name. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// WeekdayRow is one line of the weekday listing
type WeekdayRow struct {
	Ordinal int              `json:"ordinal" yaml:"ordinal"`
	Day     dateutil.Weekday `json:"day" yaml:"day"`
	Weekday bool             `json:"weekday" yaml:"weekday"`
	Weekend bool             `json:"weekend" yaml:"weekend"`
}

// MonthRow is one line of the month listing
type MonthRow struct {
	Ordinal        int            `json:"ordinal" yaml:"ordinal"`
	Month          dateutil.Month `json:"month" yaml:"month"`
	MinLength      int            `json:"min_length" yaml:"min_length"`
	MaxLength      int            `json:"max_length" yaml:"max_length"`
	Length         int            `json:"length" yaml:"length"`
	FirstDayOfYear int            `json:"first_day_of_year" yaml:"first_day_of_year"`
	LastDayOfYear  int            `json:"last_day_of_year" yaml:"last_day_of_year"`
}

// ElapsedReport describes one timed command
type ElapsedReport struct {
	Command  string        `json:"command" yaml:"command"`
	Started  time.Time     `json:"started" yaml:"started"`
	Elapsed  time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
	ExitCode int           `json:"exit_code" yaml:"exit_code"`
}

// ShiftResult is a cyclic shift of a weekday or month
type ShiftResult struct {
	Kind string `json:"kind" yaml:"kind"`
	From string `json:"from" yaml:"from"`
	By   int    `json:"by" yaml:"by"`
	To   string `json:"to" yaml:"to"`
}

// TodayReport summarizes the cycle position of a date
type TodayReport struct {
	Date      string           `json:"date" yaml:"date"`
	IsToday   bool             `json:"is_today" yaml:"is_today"`
	Weekday   dateutil.Weekday `json:"weekday" yaml:"weekday"`
	Workday   bool             `json:"workday" yaml:"workday"`
	Weekend   bool             `json:"weekend" yaml:"weekend"`
	WeekStart string           `json:"week_start" yaml:"week_start"`
	WeekEnd   string           `json:"week_end" yaml:"week_end"`
	ISOYear   int              `json:"iso_year" yaml:"iso_year"`
	ISOWeek   int              `json:"iso_week" yaml:"iso_week"`
	Month     dateutil.Month   `json:"month" yaml:"month"`
	DayOfYear int              `json:"day_of_year" yaml:"day_of_year"`
	LeapYear  bool             `json:"leap_year" yaml:"leap_year"`
}

// Today builds a TodayReport for t. now marks whether t is the current day,
// firstDay is the day weeks start on.
func Today(t, now time.Time, firstDay dateutil.Weekday) TodayReport {
	isoYear, isoWeek := dateutil.GetWeekNumber(t)

	return TodayReport{
		Date:      t.Format(dateLayout),
		IsToday:   dateutil.IsSameDay(t, now),
		Weekday:   dateutil.FromTime(t),
		Workday:   dateutil.IsWeekday(t),
		Weekend:   dateutil.IsWeekend(t),
		WeekStart: dateutil.StartOfWeek(t, firstDay).Format(dateLayout),
		WeekEnd:   dateutil.EndOfWeek(t, firstDay).Format(dateLayout),
		ISOYear:   isoYear,
		ISOWeek:   isoWeek,
		Month:     dateutil.MonthFromTime(t),
		DayOfYear: t.YearDay(),
		LeapYear:  dateutil.IsLeapYear(t.Year()),
	}
}

// Weekdays lists the week starting at first
func Weekdays(first dateutil.Weekday) []WeekdayRow {
	return WeekdayRows(dateutil.AllWeekdays(first))
}

// WeekdayRows turns days into listing rows, keeping their order
func WeekdayRows(days []dateutil.Weekday) []WeekdayRow {
	rows := make([]WeekdayRow, len(days))
	for i, d := range days {
		rows[i] = WeekdayRow{
			Ordinal: d.Ordinal(),
			Day:     d,
			Weekday: d.IsWeekday(),
			Weekend: d.IsWeekend(),
		}
	}
	return rows
}

// Months lists the year starting at first, with lengths for the given leap flag
func Months(first dateutil.Month, leapYear bool) []MonthRow {
	months := dateutil.AllMonths(first)
	rows := make([]MonthRow, len(months))
	for i, m := range months {
		rows[i] = MonthRow{
			Ordinal:        m.Ordinal(),
			Month:          m,
			MinLength:      m.MinLength(),
			MaxLength:      m.MaxLength(),
			Length:         m.Length(leapYear),
			FirstDayOfYear: m.FirstDayOfYear(leapYear),
			LastDayOfYear:  m.LastDayOfYear(leapYear),
		}
	}
	return rows
}

// Render writes v to w in the given format.
// Table output knows the row types of this package.
func Render(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case FormatTable, "":
		return renderTable(w, v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func renderTable(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	switch rows := v.(type) {
	case []WeekdayRow:
		fmt.Fprintln(tw, "#\tDAY\tTYPE")
		for _, r := range rows {
			kind := "weekday"
			if r.Weekend {
				kind = "weekend"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Ordinal, r.Day, kind)
		}

	case []MonthRow:
		fmt.Fprintln(tw, "#\tMONTH\tMIN\tMAX\tDAYS\tFIRST\tLAST")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\n",
				r.Ordinal, r.Month, r.MinLength, r.MaxLength, r.Length, r.FirstDayOfYear, r.LastDayOfYear)
		}

	case ShiftResult:
		fmt.Fprintf(tw, "%s %+d\t=\t%s\n", rows.From, rows.By, rows.To)

	case TodayReport:
		fmt.Fprintf(tw, "date:\t%s\n", rows.Date)
		fmt.Fprintf(tw, "today:\t%t\n", rows.IsToday)
		fmt.Fprintf(tw, "weekday:\t%s\n", rows.Weekday)
		fmt.Fprintf(tw, "weekend:\t%t\n", rows.Weekend)
		fmt.Fprintf(tw, "week:\t%s .. %s\n", rows.WeekStart, rows.WeekEnd)
		fmt.Fprintf(tw, "iso week:\t%d-W%02d\n", rows.ISOYear, rows.ISOWeek)
		fmt.Fprintf(tw, "month:\t%s\n", rows.Month)
		fmt.Fprintf(tw, "day of year:\t%d\n", rows.DayOfYear)
		fmt.Fprintf(tw, "leap year:\t%t\n", rows.LeapYear)

	case ElapsedReport:
		fmt.Fprintf(tw, "command:\t%s\n", rows.Command)
		fmt.Fprintf(tw, "started:\t%s\n", dateutil.FormatISO8601(rows.Started))
		fmt.Fprintf(tw, "elapsed:\t%s\n", rows.Elapsed.Round(time.Millisecond))
		fmt.Fprintf(tw, "exit code:\t%d\n", rows.ExitCode)

	default:
		// Anything else prints one value per line
		fmt.Fprintln(tw, v)
	}

	return tw.Flush()
}
