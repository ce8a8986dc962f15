package calendar

import (
	"fmt"
	"time"

	"github.com/jask/rangepicker/internal/notify"
)

// ControllerListener receives a controller's events.
type ControllerListener interface {
	DateSelected(d Date)
	MonthDisplayed(ym YearMonth)
}

// ControllerFuncs adapts plain functions to ControllerListener. Nil fields are
// skipped.
type ControllerFuncs struct {
	OnDateSelected   func(Date)
	OnMonthDisplayed func(YearMonth)
}

func (f ControllerFuncs) DateSelected(d Date) {
	if f.OnDateSelected != nil {
		f.OnDateSelected(d)
	}
}

func (f ControllerFuncs) MonthDisplayed(ym YearMonth) {
	if f.OnMonthDisplayed != nil {
		f.OnMonthDisplayed(ym)
	}
}

// Controller owns one calendar: the displayed month, the selected date and the
// grid derived from both. The grid is rebuilt, never patched, on every change.
//
// Events are delivered synchronously, in registration order, before the
// triggering call returns. A listener that calls back into the controller
// recurses. A Controller is not safe for concurrent use.
type Controller struct {
	month     YearMonth
	selected  Date
	grid      Grid
	listeners notify.List[ControllerListener]
	held      int
	pending   []func(ControllerListener)
}

// NewController returns a controller showing the month of selected.
func NewController(selected Date) (*Controller, error) {
	if selected.IsZero() {
		return nil, fmt.Errorf("new calendar: %w", ErrInvalidDateInput)
	}
	c := &Controller{month: MonthOf(selected), selected: selected}
	c.rebuild()
	return c, nil
}

// Subscribe registers l and returns the function that removes it.
func (c *Controller) Subscribe(l ControllerListener) func() {
	return c.listeners.Add(l)
}

// UnsubscribeAll removes every listener.
func (c *Controller) UnsubscribeAll() {
	c.listeners.Clear()
}

func (c *Controller) SelectedDate() Date        { return c.selected }
func (c *Controller) DisplayedMonth() YearMonth { return c.month }

// Grid returns a snapshot of the current grid.
func (c *Controller) Grid() Grid { return c.grid.Clone() }

// SelectDate selects d and brings its month into view.
func (c *Controller) SelectDate(d Date) error {
	if d.IsZero() {
		return fmt.Errorf("select date: %w", ErrInvalidDateInput)
	}
	c.selected = d
	c.month = MonthOf(d)
	c.rebuild()
	c.emit(func(l ControllerListener) { l.DateSelected(d) })
	return nil
}

// ShowMonth displays month of year without changing the selection.
func (c *Controller) ShowMonth(year int, month time.Month) error {
	ym, err := NewYearMonth(year, month)
	if err != nil {
		return fmt.Errorf("show month: %w", err)
	}
	c.show(ym)
	return nil
}

// NextMonth shows the following month. At 9999-12 it does nothing.
func (c *Controller) NextMonth() { c.step(1) }

// PreviousMonth shows the preceding month. At 0001-01 it does nothing.
func (c *Controller) PreviousMonth() { c.step(-1) }

func (c *Controller) step(n int) {
	next := c.month.AddMonths(n)
	if _, err := NewYearMonth(next.Year, next.Month); err != nil {
		return
	}
	c.show(next)
}

func (c *Controller) show(ym YearMonth) {
	c.month = ym
	c.rebuild()
	c.emit(func(l ControllerListener) { l.MonthDisplayed(ym) })
}

// Hold queues events instead of delivering them until the matching Release.
// Holds nest.
func (c *Controller) Hold() { c.held++ }

// Release ends one Hold. Ending the outermost one delivers the queued events
// in order.
func (c *Controller) Release() {
	if c.held == 0 {
		return
	}
	c.held--
	if c.held > 0 {
		return
	}
	queued := c.pending
	c.pending = nil
	for _, ev := range queued {
		c.listeners.Each(ev)
	}
}

func (c *Controller) emit(ev func(ControllerListener)) {
	if c.held > 0 {
		c.pending = append(c.pending, ev)
		return
	}
	c.listeners.Each(ev)
}

// HighlightRange recomputes the InRange flags of the current grid for r.
func (c *Controller) HighlightRange(r Range) {
	c.grid = c.grid.WithRange(r)
}

func (c *Controller) rebuild() {
	c.grid = BuildGrid(c.month, c.selected)
}
