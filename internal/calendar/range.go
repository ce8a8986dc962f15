package calendar

import (
	"fmt"
	"slices"
)

// Range is an inclusive span of days. Ranges built with NewRange are never
// inverted.
type Range struct {
	Start Date
	End   Date
}

// NewRange returns the range covering a and b in calendar order.
func NewRange(a, b Date) Range {
	if a.After(b) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// SingleDay reports whether the range starts and ends on the same day.
func (r Range) SingleDay() bool {
	return IsSameDay(r.Start, r.End)
}

// Inverted reports whether Start falls after End.
func (r Range) Inverted() bool {
	return r.Start.After(r.End)
}

// Contains reports whether d lies within the range, inclusive.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of days covered, inclusive.
func (r Range) Days() int {
	return int(r.End.Time().Sub(r.Start.Time()).Hours()/24) + 1
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

// DateSet is a set of days.
type DateSet map[Date]struct{}

func (s DateSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

func (s DateSet) Len() int { return len(s) }

// Sorted returns the members in calendar order.
func (s DateSet) Sorted() []Date {
	out := make([]Date, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	slices.SortFunc(out, Compare)
	return out
}
