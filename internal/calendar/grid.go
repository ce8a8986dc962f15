package calendar

import "slices"

// DayCell is one day of a displayed grid.
type DayCell struct {
	Date     Date
	InMonth  bool // false for overshoot days of the neighbouring months
	Selected bool
	InRange  bool
}

// WeekRow is a Monday-first week.
type WeekRow [7]DayCell

// Grid is the 5 or 6 week layout of a displayed month. The cell dates form a
// contiguous run starting at StartOfDisplayGrid(Month).
type Grid struct {
	Month YearMonth
	Rows  []WeekRow
}

// BuildGrid lays out ym starting on the Monday on or before its 1st. Only an
// in-month cell can be selected. BuildGrid is a pure function of its inputs.
func BuildGrid(ym YearMonth, selected Date) Grid {
	start := StartOfDisplayGrid(ym)
	rows := make([]WeekRow, RowCount(ym))
	for w := range rows {
		for d := range rows[w] {
			date := start.AddDays(w*7 + d)
			inMonth := ym.Contains(date)
			rows[w][d] = DayCell{
				Date:     date,
				InMonth:  inMonth,
				Selected: inMonth && IsSameDay(date, selected),
			}
		}
	}
	return Grid{Month: ym, Rows: rows}
}

// Clone returns a copy that shares no cells with g.
func (g Grid) Clone() Grid {
	return Grid{Month: g.Month, Rows: slices.Clone(g.Rows)}
}

// Cells returns every cell in row order.
func (g Grid) Cells() []DayCell {
	out := make([]DayCell, 0, len(g.Rows)*7)
	for _, row := range g.Rows {
		out = append(out, row[:]...)
	}
	return out
}

// Cell returns the cell showing d, if any.
func (g Grid) Cell(d Date) (DayCell, bool) {
	row, col, ok := g.position(d)
	if !ok {
		return DayCell{}, false
	}
	return g.Rows[row][col], true
}

func (g Grid) position(d Date) (int, int, bool) {
	if len(g.Rows) == 0 {
		return 0, 0, false
	}
	offset := int(d.Time().Sub(g.Rows[0][0].Date.Time()).Hours() / 24)
	if offset < 0 || offset >= len(g.Rows)*7 {
		return 0, 0, false
	}
	return offset / 7, offset % 7, true
}

// FirstDay returns the 1st of the displayed month.
func (g Grid) FirstDay() Date { return g.Month.FirstDay() }

// LastDay returns the last day of the displayed month.
func (g Grid) LastDay() Date { return g.Month.LastDay() }

// Selected returns the selected cell's date, if the grid shows one.
func (g Grid) Selected() (Date, bool) {
	for _, c := range g.Cells() {
		if c.Selected {
			return c.Date, true
		}
	}
	return Date{}, false
}

// InRangeDates returns the dates flagged in range, in calendar order.
func (g Grid) InRangeDates() []Date {
	var out []Date
	for _, c := range g.Cells() {
		if c.InRange {
			out = append(out, c.Date)
		}
	}
	return out
}
