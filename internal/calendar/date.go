// Package calendar holds the date arithmetic, month grid and range highlighting
// behind the two linked calendars of the range picker.
//
// Weeks always start on Monday. Every value here is a plain calendar day with no
// time component; nothing in this package performs I/O or formats for display.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateInput is returned when a date or month cannot be constructed
// from the given input.
var ErrInvalidDateInput = errors.New("invalid date input")

// isoLayout is the identity/lookup form of a Date.
const isoLayout = "2006-01-02"

// Date is a calendar day. The zero Date is not a valid day and is rejected by
// every operation that accepts a Date from a caller.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate validates year, month and day and returns the Date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDateInput, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDateInput, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidDateInput, day, year, month)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustDate is like NewDate but panics on invalid input. Intended for tests and
// package-level constants.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses the YYYY-MM-DD form.
func ParseDate(val string) (Date, error) {
	t, err := time.Parse(isoLayout, val)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDateInput, val)
	}
	return NewDate(t.Date())
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current local calendar day as reported by now. A nil now
// uses time.Now.
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	return DateOf(now().In(time.Local))
}

func (d Date) Year() int             { return d.year }
func (d Date) Month() time.Month     { return d.month }
func (d Date) Day() int              { return d.day }
func (d Date) IsZero() bool          { return d == Date{} }
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Format formats the day using a time layout. Only the UI boundary should need
// this.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// AddDays returns the date n days away; n may be negative.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC))
}

// AddMonths moves n months, clamping the day to the last day of the target
// month (Jan 31 + 1 month is Feb 28 or 29).
func (d Date) AddMonths(n int) Date {
	ym := MonthOf(d).AddMonths(n)
	day := min(d.day, DaysIn(ym.Year, ym.Month))
	return Date{year: ym.Year, month: ym.Month, day: day}
}

func (d Date) Before(other Date) bool { return Compare(d, other) < 0 }
func (d Date) After(other Date) bool  { return Compare(d, other) > 0 }

// Compare orders two dates by calendar day, returning -1, 0 or 1.
func Compare(a, b Date) int {
	switch {
	case a.year != b.year:
		return sign(a.year - b.year)
	case a.month != b.month:
		return sign(int(a.month - b.month))
	default:
		return sign(a.day - b.day)
	}
}

// IsSameDay reports whether a and b are the same calendar day.
func IsSameDay(a, b Date) bool {
	return a == b
}

// StartOfWeek returns the Monday on or before d.
func StartOfWeek(d Date) Date {
	return d.AddDays(-mondayOffset(d.Weekday()))
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	if month == time.February && IsLeap(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
