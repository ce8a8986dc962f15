package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestNewDateRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"month zero", 2024, 0, 1},
		{"month thirteen", 2024, 13, 1},
		{"day zero", 2024, time.March, 0},
		{"april 31", 2024, time.April, 31},
		{"feb 29 non-leap", 2023, time.February, 29},
		{"feb 29 century", 1900, time.February, 29},
		{"year zero", 0, time.January, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			if !errors.Is(err, ErrInvalidDateInput) {
				t.Fatalf("NewDate(%d, %d, %d) err = %v, want ErrInvalidDateInput", tt.year, tt.month, tt.day, err)
			}
		})
	}

	if _, err := NewDate(2000, time.February, 29); err != nil {
		t.Fatalf("2000-02-29 should be valid: %v", err)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != MustDate(2024, time.February, 29) {
		t.Fatalf("got %v", d)
	}
	for _, bad := range []string{"", "2024-2-3", "29/02/2024", "2023-02-29", "2024-13-01"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDateInput) {
			t.Errorf("ParseDate(%q) err = %v, want ErrInvalidDateInput", bad, err)
		}
	}
}

func TestAddDaysCrossesBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from Date
		n    int
		want Date
	}{
		{MustDate(2024, time.February, 28), 1, MustDate(2024, time.February, 29)},
		{MustDate(2023, time.February, 28), 1, MustDate(2023, time.March, 1)},
		{MustDate(2023, time.December, 31), 1, MustDate(2024, time.January, 1)},
		{MustDate(2024, time.January, 1), -1, MustDate(2023, time.December, 31)},
		{MustDate(2024, time.March, 1), -1, MustDate(2024, time.February, 29)},
		{MustDate(2024, time.January, 29), 42, MustDate(2024, time.March, 11)},
	}
	for _, tt := range tests {
		if got := tt.from.AddDays(tt.n); got != tt.want {
			t.Errorf("%v.AddDays(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from Date
		n    int
		want Date
	}{
		{MustDate(2024, time.January, 31), 1, MustDate(2024, time.February, 29)},
		{MustDate(2023, time.January, 31), 1, MustDate(2023, time.February, 28)},
		{MustDate(2024, time.March, 31), -1, MustDate(2024, time.February, 29)},
		{MustDate(2024, time.December, 15), 1, MustDate(2025, time.January, 15)},
		{MustDate(2024, time.January, 15), -13, MustDate(2022, time.December, 15)},
	}
	for _, tt := range tests {
		if got := tt.from.AddMonths(tt.n); got != tt.want {
			t.Errorf("%v.AddMonths(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestCompareAndSameDay(t *testing.T) {
	t.Parallel()

	a := MustDate(2025, time.December, 31)
	b := MustDate(2026, time.January, 1)
	if Compare(a, b) != -1 || Compare(b, a) != 1 || Compare(a, a) != 0 {
		t.Fatalf("unexpected ordering of %v and %v", a, b)
	}
	if !a.Before(b) || a.After(b) {
		t.Fatalf("Before/After disagree with Compare")
	}
	if !IsSameDay(a, MustDate(2025, time.December, 31)) || IsSameDay(a, b) {
		t.Fatalf("IsSameDay mismatch")
	}
}

func TestStartOfWeekIsMonday(t *testing.T) {
	t.Parallel()

	sunday := MustDate(2024, time.March, 10)
	if got := StartOfWeek(sunday); got != MustDate(2024, time.March, 4) {
		t.Fatalf("StartOfWeek(%v) = %v", sunday, got)
	}
	monday := MustDate(2024, time.March, 4)
	if got := StartOfWeek(monday); got != monday {
		t.Fatalf("StartOfWeek(%v) = %v, want unchanged", monday, got)
	}
}

func TestYearMonthAddMonthsRollsYear(t *testing.T) {
	t.Parallel()

	ym := YearMonth{Year: 2024, Month: time.December}
	if got := ym.Next(); got != (YearMonth{Year: 2025, Month: time.January}) {
		t.Fatalf("Next = %v", got)
	}
	if got := (YearMonth{Year: 2024, Month: time.January}).Previous(); got != (YearMonth{Year: 2023, Month: time.December}) {
		t.Fatalf("Previous = %v", got)
	}
	if got := ym.AddMonths(-24); got != (YearMonth{Year: 2022, Month: time.December}) {
		t.Fatalf("AddMonths(-24) = %v", got)
	}
}

func TestDateTextRoundTrip(t *testing.T) {
	t.Parallel()

	d := MustDate(2024, time.March, 5)
	text, err := d.MarshalText()
	if err != nil || string(text) != "2024-03-05" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	var got Date
	if err := got.UnmarshalText([]byte("not a date")); !errors.Is(err, ErrInvalidDateInput) {
		t.Fatalf("UnmarshalText err = %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("failed UnmarshalText must not modify the date")
	}
}
