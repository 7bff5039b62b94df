package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/username/cyclecal/pkg/dateutil"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdays(t *testing.T) {
	rows := Weekdays(dateutil.Saturday)
	require.Len(t, rows, 7)

	assert.Equal(t, WeekdayRow{Ordinal: 6, Day: dateutil.Saturday, Weekend: true}, rows[0])
	assert.Equal(t, WeekdayRow{Ordinal: 1, Day: dateutil.Monday, Weekday: true}, rows[2])
}

func TestMonths(t *testing.T) {
	rows := Months(dateutil.January, true)
	require.Len(t, rows, 12)

	feb := rows[1]
	assert.Equal(t, dateutil.February, feb.Month)
	assert.Equal(t, 28, feb.MinLength)
	assert.Equal(t, 29, feb.MaxLength)
	assert.Equal(t, 29, feb.Length)
	assert.Equal(t, 32, feb.FirstDayOfYear)
	assert.Equal(t, 60, feb.LastDayOfYear)

	assert.Equal(t, 61, rows[2].FirstDayOfYear)

	common := Months(dateutil.March, false)
	assert.Equal(t, dateutil.March, common[0].Month)
	assert.Equal(t, 60, common[0].FirstDayOfYear)
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, Weekdays(dateutil.Monday)[:1]))

	assert.JSONEq(t, `[{"ordinal":1,"day":"Monday","weekday":true,"weekend":false}]`, buf.String())
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, Months(dateutil.February, false)[:1]))

	var decoded []MonthRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, dateutil.February, decoded[0].Month)
	assert.Equal(t, 28, decoded[0].Length)
	assert.Contains(t, buf.String(), "month: February")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, Weekdays(dateutil.Monday)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "DAY")
	assert.Contains(t, lines[6], "Saturday")
	assert.Contains(t, lines[6], "weekend")
	assert.Contains(t, lines[1], "weekday")
}

func TestRenderElapsedTable(t *testing.T) {
	var buf bytes.Buffer
	r := ElapsedReport{
		Command:  "sleep 1",
		Started:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Elapsed:  1500 * time.Millisecond,
		ExitCode: 0,
	}
	require.NoError(t, Render(&buf, FormatTable, r))

	out := buf.String()
	assert.Contains(t, out, "sleep 1")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "2025-01-15T10:00:00.000+0000")
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, Format("xml"), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestToday(t *testing.T) {
	date := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)
	r := Today(date, date.Add(3*time.Hour), dateutil.Monday)

	assert.Equal(t, "2024-03-02", r.Date)
	assert.True(t, r.IsToday)
	assert.Equal(t, dateutil.Saturday, r.Weekday)
	assert.False(t, r.Workday)
	assert.True(t, r.Weekend)
	assert.Equal(t, "2024-02-26", r.WeekStart)
	assert.Equal(t, "2024-03-03", r.WeekEnd)
	assert.Equal(t, 2024, r.ISOYear)
	assert.Equal(t, 9, r.ISOWeek)
	assert.Equal(t, dateutil.March, r.Month)
	assert.Equal(t, 62, r.DayOfYear)
	assert.True(t, r.LeapYear)
}

func TestTodaySundayFirstWeek(t *testing.T) {
	date := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) // Wednesday
	r := Today(date, date.AddDate(0, 0, 1), dateutil.Sunday)

	assert.False(t, r.IsToday)
	assert.True(t, r.Workday)
	assert.Equal(t, "2025-01-12", r.WeekStart)
	assert.Equal(t, "2025-01-18", r.WeekEnd)
	assert.Equal(t, 3, r.ISOWeek)
}

func TestRenderTodayTable(t *testing.T) {
	date := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, Today(date, date, dateutil.Monday)))
	assert.Contains(t, buf.String(), "2025-01-13 .. 2025-01-19")
	assert.Contains(t, buf.String(), "2025-W03")
}

func TestWeekdayRows(t *testing.T) {
	rows := WeekdayRows([]dateutil.Weekday{dateutil.Sunday, dateutil.Tuesday})

	require.Len(t, rows, 2)
	assert.Equal(t, WeekdayRow{Ordinal: 7, Day: dateutil.Sunday, Weekend: true}, rows[0])
	assert.Equal(t, WeekdayRow{Ordinal: 2, Day: dateutil.Tuesday, Weekday: true}, rows[1])
	assert.Empty(t, WeekdayRows(nil))
}

func TestRenderShiftTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, ShiftResult{Kind: "weekday", From: "Monday", By: -1, To: "Sunday"}))
	assert.Contains(t, buf.String(), "Monday -1")
	assert.Contains(t, buf.String(), "Sunday")
}
