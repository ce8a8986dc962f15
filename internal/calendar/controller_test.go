package calendar

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

func (r *recorder) DateSelected(d Date)         { r.events = append(r.events, "date:"+d.String()) }
func (r *recorder) MonthDisplayed(ym YearMonth) { r.events = append(r.events, "month:"+ym.String()) }

func newTestController(t *testing.T, d Date) (*Controller, *recorder) {
	t.Helper()
	c, err := NewController(d)
	require.NoError(t, err)
	rec := &recorder{}
	c.Subscribe(rec)
	return c, rec
}

func TestNewControllerShowsSelectedMonth(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t, day(2024, time.February, 15))
	require.Equal(t, YearMonth{2024, time.February}, c.DisplayedMonth())
	require.Equal(t, BuildGrid(YearMonth{2024, time.February}, day(2024, time.February, 15)), c.Grid())

	_, err := NewController(Date{})
	require.ErrorIs(t, err, ErrInvalidDateInput)
}

func TestSelectDateBringsMonthIntoView(t *testing.T) {
	t.Parallel()

	c, rec := newTestController(t, day(2024, time.February, 15))
	require.NoError(t, c.SelectDate(day(2024, time.April, 2)))

	require.Equal(t, day(2024, time.April, 2), c.SelectedDate())
	require.Equal(t, YearMonth{2024, time.April}, c.DisplayedMonth())
	sel, ok := c.Grid().Selected()
	require.True(t, ok)
	require.Equal(t, day(2024, time.April, 2), sel)
	require.Equal(t, []string{"date:2024-04-02"}, rec.events)
}

func TestSelectDateRejectsZeroWithoutMutation(t *testing.T) {
	t.Parallel()

	c, rec := newTestController(t, day(2024, time.February, 15))
	before := c.Grid()
	err := c.SelectDate(Date{})
	require.ErrorIs(t, err, ErrInvalidDateInput)
	require.Equal(t, day(2024, time.February, 15), c.SelectedDate())
	require.Equal(t, before, c.Grid())
	require.Empty(t, rec.events)
}

func TestShowMonthKeepsSelection(t *testing.T) {
	t.Parallel()

	c, rec := newTestController(t, day(2024, time.February, 15))
	require.NoError(t, c.ShowMonth(2024, time.May))
	require.Equal(t, day(2024, time.February, 15), c.SelectedDate())
	require.Equal(t, YearMonth{2024, time.May}, c.DisplayedMonth())
	_, ok := c.Grid().Selected()
	require.False(t, ok)
	require.Equal(t, []string{"month:2024-05"}, rec.events)

	first := c.Grid()
	require.NoError(t, c.ShowMonth(2024, time.May))
	require.Equal(t, first, c.Grid())
}

func TestShowMonthRejectsInvalidMonth(t *testing.T) {
	t.Parallel()

	c, rec := newTestController(t, day(2024, time.February, 15))
	err := c.ShowMonth(2024, 13)
	require.True(t, errors.Is(err, ErrInvalidDateInput))
	require.Equal(t, YearMonth{2024, time.February}, c.DisplayedMonth())
	require.Empty(t, rec.events)
}

func TestNextAndPreviousMonthAcrossYears(t *testing.T) {
	t.Parallel()

	c, rec := newTestController(t, day(2024, time.December, 24))
	c.NextMonth()
	require.Equal(t, YearMonth{2025, time.January}, c.DisplayedMonth())
	c.PreviousMonth()
	c.PreviousMonth()
	require.Equal(t, YearMonth{2024, time.November}, c.DisplayedMonth())
	require.Equal(t, []string{"month:2025-01", "month:2024-12", "month:2024-11"}, rec.events)
}

func TestMonthNavigationStopsAtCalendarBounds(t *testing.T) {
	t.Parallel()

	c, rec := newTestController(t, day(9999, time.December, 20))
	c.NextMonth()
	require.Equal(t, YearMonth{9999, time.December}, c.DisplayedMonth())
	require.Len(t, c.Grid().Rows, RowCount(YearMonth{9999, time.December}))

	first, rec2 := newTestController(t, day(1, time.January, 3))
	first.PreviousMonth()
	require.Equal(t, YearMonth{1, time.January}, first.DisplayedMonth())

	require.Empty(t, rec.events)
	require.Empty(t, rec2.events)

	c.PreviousMonth()
	require.Equal(t, YearMonth{9999, time.November}, c.DisplayedMonth())
}

func TestHoldQueuesEventsUntilRelease(t *testing.T) {
	t.Parallel()

	c, rec := newTestController(t, day(2024, time.March, 5))
	var inRange []int
	c.Subscribe(ControllerFuncs{OnDateSelected: func(Date) {
		inRange = append(inRange, len(c.Grid().InRangeDates()))
	}})

	c.Hold()
	c.Hold()
	require.NoError(t, c.SelectDate(day(2024, time.April, 2)))
	c.NextMonth()
	c.HighlightRange(NewRange(day(2024, time.April, 2), day(2024, time.May, 10)))
	require.Empty(t, rec.events)

	c.Release()
	require.Empty(t, rec.events, "inner release keeps the hold")
	c.Release()
	require.Equal(t, []string{"date:2024-04-02", "month:2024-05"}, rec.events)
	require.Equal(t, []int{10}, inRange, "listeners see the grid as it is after the held changes")

	c.Release()
	require.NoError(t, c.SelectDate(day(2024, time.May, 3)))
	require.Equal(t, "date:2024-05-03", rec.events[len(rec.events)-1])
}

func TestHighlightRangeResetOnRebuild(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t, day(2024, time.March, 5))
	c.HighlightRange(NewRange(day(2024, time.March, 5), day(2024, time.March, 9)))
	require.Len(t, c.Grid().InRangeDates(), 5)

	c.NextMonth()
	require.Empty(t, c.Grid().InRangeDates(), "a rebuilt grid starts without range flags")
}

func TestGridSnapshotIsolation(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t, day(2024, time.March, 5))
	g := c.Grid()
	g.Rows[1][1].Selected = false
	sel, ok := c.Grid().Selected()
	require.True(t, ok)
	require.Equal(t, day(2024, time.March, 5), sel)
}

func TestListenersRunInOrderAndUnsubscribe(t *testing.T) {
	t.Parallel()

	c, err := NewController(day(2024, time.March, 5))
	require.NoError(t, err)

	var calls []string
	for i := range 3 {
		c.Subscribe(ControllerFuncs{OnDateSelected: func(d Date) {
			calls = append(calls, fmt.Sprintf("%d:%s", i, d))
		}})
	}
	remove := c.Subscribe(ControllerFuncs{OnDateSelected: func(Date) { calls = append(calls, "removed") }})
	remove()
	remove()

	require.NoError(t, c.SelectDate(day(2024, time.March, 6)))
	require.Equal(t, []string{"0:2024-03-06", "1:2024-03-06", "2:2024-03-06"}, calls)

	c.UnsubscribeAll()
	require.NoError(t, c.SelectDate(day(2024, time.March, 7)))
	require.Len(t, calls, 3)
}

func TestListenerReentrySelectsSynchronously(t *testing.T) {
	t.Parallel()

	c, err := NewController(day(2024, time.March, 5))
	require.NoError(t, err)

	var seen []Date
	c.Subscribe(ControllerFuncs{OnDateSelected: func(d Date) {
		seen = append(seen, d)
		if d.Day() < 8 {
			require.NoError(t, c.SelectDate(d.AddDays(1)))
		}
	}})
	require.NoError(t, c.SelectDate(day(2024, time.March, 6)))
	require.Equal(t, []Date{day(2024, time.March, 6), day(2024, time.March, 7), day(2024, time.March, 8)}, seen)
	require.Equal(t, day(2024, time.March, 8), c.SelectedDate())
}
