package repository

import (
	"time"

	"github.com/jask/rangepicker/internal/calendar"
)

// SavedRange represents a saved_ranges row.
type SavedRange struct {
	ID        string
	Label     string
	Start     calendar.Date
	End       calendar.Date
	CreatedAt time.Time
}

// Range returns the stored pair.
func (s SavedRange) Range() calendar.Range {
	return calendar.Range{Start: s.Start, End: s.End}
}
