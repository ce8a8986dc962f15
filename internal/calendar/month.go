package calendar

import (
	"fmt"
	"time"
)

// YearMonth identifies a displayed month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth validates the pair.
func NewYearMonth(year int, month time.Month) (YearMonth, error) {
	if _, err := NewDate(year, month, 1); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{Year: year, Month: month}, nil
}

// MonthOf returns the month containing d.
func MonthOf(d Date) YearMonth {
	return YearMonth{Year: d.year, Month: d.month}
}

// AddMonths returns the month n months away, rolling the year as needed.
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year*12 + int(ym.Month-1) + n
	year, month := idx/12, idx%12
	if month < 0 {
		year, month = year-1, month+12
	}
	return YearMonth{Year: year, Month: time.Month(month + 1)}
}

func (ym YearMonth) Next() YearMonth     { return ym.AddMonths(1) }
func (ym YearMonth) Previous() YearMonth { return ym.AddMonths(-1) }

// FirstDay returns the 1st of the month.
func (ym YearMonth) FirstDay() Date {
	return Date{year: ym.Year, month: ym.Month, day: 1}
}

// LastDay returns the last day of the month.
func (ym YearMonth) LastDay() Date {
	return Date{year: ym.Year, month: ym.Month, day: DaysIn(ym.Year, ym.Month)}
}

// Contains reports whether d falls in the month.
func (ym YearMonth) Contains(d Date) bool {
	return d.year == ym.Year && d.month == ym.Month
}

// Compare orders months, returning -1, 0 or 1.
func (ym YearMonth) Compare(other YearMonth) int {
	if ym.Year != other.Year {
		return sign(ym.Year - other.Year)
	}
	return sign(int(ym.Month - other.Month))
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// StartOfDisplayGrid returns the Monday on or before the 1st of ym. When the
// 1st is a Monday it is returned unchanged.
func StartOfDisplayGrid(ym YearMonth) Date {
	return StartOfWeek(ym.FirstDay())
}

// RowCount returns the number of week rows needed to show ym: 6 when the day
// five weeks after the grid start still belongs to ym, otherwise 5.
func RowCount(ym YearMonth) int {
	if ym.Contains(StartOfDisplayGrid(ym).AddDays(5 * 7)) {
		return 6
	}
	return 5
}
