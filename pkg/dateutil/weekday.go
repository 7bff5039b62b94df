package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// Weekday is a day-of-week numbered ISO 8601 style (Monday = 1, Sunday = 7)
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysPerWeek = 7

var weekdayNames = [daysPerWeek]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WeekdayOf returns the weekday with the given ordinal (1-7)
func WeekdayOf(n int) (Weekday, error) {
	if n < int(Monday) || n > int(Sunday) {
		return 0, &InvalidOrdinalError{Kind: "weekday", Value: n}
	}
	return Weekday(n), nil
}

// ParseWeekday accepts an English weekday name (any case) or an ordinal
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for i, name := range weekdayNames {
		if strings.EqualFold(s, name) {
			return Weekday(i + 1), nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidOrdinalError{Kind: "weekday", Input: s}
	}
	return WeekdayOf(n)
}

// FromTime returns the weekday of t in t's location
func FromTime(t time.Time) Weekday {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday = 7
	}
	return Weekday(wd)
}

// AllWeekdays returns the seven days of the week starting at first.
// An invalid first starts the week on Monday.
func AllWeekdays(first Weekday) []Weekday {
	if !first.IsValid() {
		first = Monday
	}

	days := make([]Weekday, 0, daysPerWeek)
	current := first
	for {
		days = append(days, current)
		current = current.Plus(1)
		if current == first {
			break
		}
	}
	return days
}

// Ordinal returns the 1-based position of the day (Monday = 1)
func (d Weekday) Ordinal() int {
	return int(d)
}

// IsValid reports whether d is one of Monday..Sunday
func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// IsWeekday returns true for Monday to Friday
func (d Weekday) IsWeekday() bool {
	return d.IsValid() && d <= Friday
}

// IsWeekend returns true for Saturday and Sunday
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// Plus returns the day n days after d, wrapping around the week in both directions
func (d Weekday) Plus(n int) Weekday {
	return Weekday(wrap(int(d), n, daysPerWeek))
}

// Minus returns the day n days before d
func (d Weekday) Minus(n int) Weekday {
	return d.Plus(-(n % daysPerWeek))
}

// Std converts d to the standard library weekday
func (d Weekday) Std() time.Weekday {
	return time.Weekday(int(d) % daysPerWeek)
}

// String returns the capitalized English name of the day
func (d Weekday) String() string {
	if d.IsValid() {
		return weekdayNames[d-1]
	}
	return "Weekday(" + strconv.Itoa(int(d)) + ")"
}

// MarshalText encodes d as its English name
func (d Weekday) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, &InvalidOrdinalError{Kind: "weekday", Value: int(d)}
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a name or an ordinal
func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Weekday) MarshalJSON() ([]byte, error) {
	return marshalQuoted(d)
}

func (d *Weekday) UnmarshalJSON(data []byte) error {
	return unmarshalQuoted(data, d)
}
