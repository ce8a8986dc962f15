package calendar

// ComputeInRange returns the in-month cells of g that r covers. The rules are
// applied in order:
//
//   - a single-day or inverted range highlights nothing;
//   - a month before r's start month or after r's end month highlights nothing;
//   - when neither endpoint is an in-month cell the whole month is covered;
//   - when only the end is shown, the month's first day up to the end;
//   - when only the start is shown, the start up to the month's last day;
//   - when both are shown, both endpoints and everything between them.
//
// Overshoot cells are never returned, even when they lie between the
// endpoints.
func ComputeInRange(g Grid, r Range) DateSet {
	set := DateSet{}
	if r.SingleDay() || r.Inverted() {
		return set
	}
	if g.Month.Compare(MonthOf(r.Start)) < 0 || g.Month.Compare(MonthOf(r.End)) > 0 {
		return set
	}

	from, to := g.FirstDay(), g.LastDay()
	startShown, endShown := g.showsInMonth(r.Start), g.showsInMonth(r.End)
	switch {
	case !startShown && !endShown:
	case !startShown:
		to = r.End
	case !endShown:
		from = r.Start
	default:
		from, to = r.Start, r.End
	}

	for _, row := range g.Rows {
		for _, c := range row {
			if c.InMonth && !c.Date.Before(from) && !c.Date.After(to) {
				set[c.Date] = struct{}{}
			}
		}
	}
	return set
}

func (g Grid) showsInMonth(d Date) bool {
	c, ok := g.Cell(d)
	return ok && c.InMonth
}

// WithRange returns a copy of g whose InRange flags reflect r.
func (g Grid) WithRange(r Range) Grid {
	set := ComputeInRange(g, r)
	out := g.Clone()
	for w := range out.Rows {
		for d := range out.Rows[w] {
			out.Rows[w][d].InRange = set.Has(out.Rows[w][d].Date)
		}
	}
	return out
}
