package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// Month is a month-of-year (January = 1, December = 12).
// It carries no year; leap-year sensitive queries take the flag as an argument.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

const monthsPerYear = 12

var monthNames = [monthsPerYear]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// firstDayOfYear holds the non-leap day-of-year of each month's first day
var firstDayOfYear = [monthsPerYear]int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}

// MonthOf returns the month with the given ordinal (1-12)
func MonthOf(n int) (Month, error) {
	if n < int(January) || n > int(December) {
		return 0, &InvalidOrdinalError{Kind: "month", Value: n}
	}
	return Month(n), nil
}

// ParseMonth accepts an English month name (any case) or an ordinal
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	for i, name := range monthNames {
		if strings.EqualFold(s, name) {
			return Month(i + 1), nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidOrdinalError{Kind: "month", Input: s}
	}
	return MonthOf(n)
}

// MonthFromTime returns the month of t
func MonthFromTime(t time.Time) Month {
	return Month(t.Month())
}

// AllMonths returns the twelve months starting at first.
// An invalid first starts the year on January.
func AllMonths(first Month) []Month {
	if !first.IsValid() {
		first = January
	}

	months := make([]Month, 0, monthsPerYear)
	current := first
	for {
		months = append(months, current)
		current = current.Plus(1)
		if current == first {
			break
		}
	}
	return months
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (m Month) Ordinal() int {
	return int(m)
}

func (m Month) IsValid() bool {
	return m >= January && m <= December
}

func (m Month) isShort() bool {
	return m == April || m == June || m == September || m == November
}

// MinLength returns the fewest days the month can have
func (m Month) MinLength() int {
	switch {
	case m == February:
		return 28
	case m.isShort():
		return 30
	}
	return 31
}

// MaxLength returns the most days the month can have
func (m Month) MaxLength() int {
	switch {
	case m == February:
		return 29
	case m.isShort():
		return 30
	}
	return 31
}

// Length returns the number of days in the month.
// February has 29 days when leapYear is set, 28 otherwise.
func (m Month) Length(leapYear bool) int {
	if m == February {
		if leapYear {
			return 29
		}
		return 28
	}
	return m.MinLength()
}

// FirstDayOfYear returns the 1-based day-of-year the month starts on
func (m Month) FirstDayOfYear(leapYear bool) int {
	if !m.IsValid() {
		return 0
	}
	day := firstDayOfYear[m-1]
	if leapYear && m > February {
		day++
	}
	return day
}

// LastDayOfYear returns the 1-based day-of-year of the month's last day
func (m Month) LastDayOfYear(leapYear bool) int {
	if !m.IsValid() {
		return 0
	}
	return m.FirstDayOfYear(leapYear) + m.Length(leapYear) - 1
}

// Plus returns the month n months after m, rolling over the year in both directions
func (m Month) Plus(n int) Month {
	return Month(wrap(int(m), n, monthsPerYear))
}

// Minus returns the month n months before m
func (m Month) Minus(n int) Month {
	return m.Plus(-(n % monthsPerYear))
}

// Std converts m to the standard library month
func (m Month) Std() time.Month {
	return time.Month(m)
}

// String returns the capitalized English name of the month
func (m Month) String() string {
	if m.IsValid() {
		return monthNames[m-1]
	}
	return "Month(" + strconv.Itoa(int(m)) + ")"
}

func (m Month) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, &InvalidOrdinalError{Kind: "month", Value: int(m)}
	}
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Month) MarshalJSON() ([]byte, error) {
	return marshalQuoted(m)
}

func (m *Month) UnmarshalJSON(data []byte) error {
	return unmarshalQuoted(data, m)
}
