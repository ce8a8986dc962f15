// Package picker links a start calendar and an end calendar into a range
// picker that keeps start <= end.
package picker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/notify"
)

// ErrClosed is returned by operations on a closed Coordinator.
var ErrClosed = errors.New("picker closed")

// Side names one of the two calendars.
type Side int

const (
	StartCalendar Side = iota
	EndCalendar
)

func (s Side) String() string {
	if s == EndCalendar {
		return "end"
	}
	return "start"
}

// RangeListener receives the coordinator's events. Every payload is the range
// after correction.
type RangeListener interface {
	StartDateSelected(r calendar.Range)
	EndDateSelected(r calendar.Range)
	RangeSelected(r calendar.Range)
}

// RangeFuncs adapts plain functions to RangeListener. Nil fields are skipped.
type RangeFuncs struct {
	OnStartDateSelected func(calendar.Range)
	OnEndDateSelected   func(calendar.Range)
	OnRangeSelected     func(calendar.Range)
}

func (f RangeFuncs) StartDateSelected(r calendar.Range) {
	if f.OnStartDateSelected != nil {
		f.OnStartDateSelected(r)
	}
}

func (f RangeFuncs) EndDateSelected(r calendar.Range) {
	if f.OnEndDateSelected != nil {
		f.OnEndDateSelected(r)
	}
}

func (f RangeFuncs) RangeSelected(r calendar.Range) {
	if f.OnRangeSelected != nil {
		f.OnRangeSelected(r)
	}
}

// CalendarView is read-only access to one of the coordinator's calendars.
type CalendarView interface {
	Grid() calendar.Grid
	SelectedDate() calendar.Date
	DisplayedMonth() calendar.YearMonth
	// Subscribe registers l for this calendar's events. DateSelected arrives
	// after the coordinator has updated both calendars and their InRange flags.
	Subscribe(l calendar.ControllerListener) func()
}

type view struct{ c *calendar.Controller }

func (v view) Grid() calendar.Grid                { return v.c.Grid() }
func (v view) SelectedDate() calendar.Date        { return v.c.SelectedDate() }
func (v view) DisplayedMonth() calendar.YearMonth { return v.c.DisplayedMonth() }
func (v view) Subscribe(l calendar.ControllerListener) func() {
	return v.c.Subscribe(l)
}

// Options configure a Coordinator.
type Options struct {
	// Start and End are the initial selection; a zero value means today.
	Start, End calendar.Date
	Presets    []Preset
	// Now reports the current time, time.Now when nil.
	Now    func() time.Time
	Logger *slog.Logger
}

// Coordinator owns the start and end calendars exclusively and performs every
// write that crosses between them. After each operation the start calendar's
// selection is on or before the end calendar's.
//
// Listeners run synchronously in registration order with no reentrancy guard:
// a listener that selects again recurses before the outer call returns. A
// Coordinator is not safe for concurrent use.
type Coordinator struct {
	start, end  *calendar.Controller
	presets     []Preset
	index       map[string]int
	listeners   notify.List[RangeListener]
	unsubscribe []func()
	logger      *slog.Logger
	closed      bool
}

// New creates both calendars from opts. An initial start after the initial end
// pulls the end forward.
func New(opts Options) (*Coordinator, error) {
	index, err := indexPresets(opts.Presets)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	today := calendar.Today(opts.Now)
	startDate, endDate := opts.Start, opts.End
	if startDate.IsZero() {
		startDate = today
	}
	if endDate.IsZero() {
		endDate = today
	}
	if startDate.After(endDate) {
		logger.Debug("initial range inverted, end follows start", "start", startDate, "end", endDate)
		endDate = startDate
	}

	start, err := calendar.NewController(startDate)
	if err != nil {
		return nil, err
	}
	end, err := calendar.NewController(endDate)
	if err != nil {
		return nil, err
	}

	c := &Coordinator{
		start:   start,
		end:     end,
		presets: slices.Clone(opts.Presets),
		index:   index,
		logger:  logger,
	}
	c.unsubscribe = []func(){
		start.Subscribe(calendar.ControllerFuncs{OnMonthDisplayed: func(calendar.YearMonth) {
			c.start.HighlightRange(c.CurrentRange())
		}}),
		end.Subscribe(calendar.ControllerFuncs{OnMonthDisplayed: func(calendar.YearMonth) {
			c.end.HighlightRange(c.CurrentRange())
		}}),
	}
	c.highlight()
	return c, nil
}

// Subscribe registers l and returns the function that removes it.
func (c *Coordinator) Subscribe(l RangeListener) func() {
	return c.listeners.Add(l)
}

// CurrentRange returns the selected pair.
func (c *Coordinator) CurrentRange() calendar.Range {
	return calendar.Range{Start: c.start.SelectedDate(), End: c.end.SelectedDate()}
}

// Presets returns the presets in construction order.
func (c *Coordinator) Presets() []Preset {
	return slices.Clone(c.presets)
}

func (c *Coordinator) Start() CalendarView { return view{c.start} }
func (c *Coordinator) End() CalendarView   { return view{c.end} }

// View returns the calendar for side.
func (c *Coordinator) View(side Side) CalendarView {
	return view{c.controller(side)}
}

// SelectStart moves the start to d, pulling the end forward when d is after
// it.
func (c *Coordinator) SelectStart(d calendar.Date) error {
	if err := c.check(d); err != nil {
		return fmt.Errorf("select start: %w", err)
	}
	if err := c.update(func() error { return c.selectStart(d) }); err != nil {
		return err
	}
	r := c.CurrentRange()
	c.listeners.Each(func(l RangeListener) { l.StartDateSelected(r) })
	return nil
}

// SelectEnd moves the end to d, pulling the start back when d is before it.
func (c *Coordinator) SelectEnd(d calendar.Date) error {
	if err := c.check(d); err != nil {
		return fmt.Errorf("select end: %w", err)
	}
	if err := c.update(func() error { return c.selectEnd(d) }); err != nil {
		return err
	}
	r := c.CurrentRange()
	c.listeners.Each(func(l RangeListener) { l.EndDateSelected(r) })
	return nil
}

// ApplyPreset selects the preset's start and then its end, correcting after
// each step, and emits a single RangeSelected.
func (c *Coordinator) ApplyPreset(label string) error {
	if c.closed {
		return fmt.Errorf("apply preset: %w", ErrClosed)
	}
	i, ok := c.index[label]
	if !ok {
		return &UnknownPresetError{Label: label, Suggestion: suggestPreset(label, c.presets)}
	}
	p := c.presets[i]
	if p.Range.Inverted() {
		c.logger.Debug("preset range inverted", "preset", p.Label, "range", p.Range)
	}
	err := c.update(func() error {
		if err := c.selectStart(p.Range.Start); err != nil {
			return err
		}
		return c.selectEnd(p.Range.End)
	})
	if err != nil {
		return err
	}
	r := c.CurrentRange()
	c.logger.Debug("preset applied", "preset", p.Label, "range", r)
	c.listeners.Each(func(l RangeListener) { l.RangeSelected(r) })
	return nil
}

// ShowMonth displays month of year on side's calendar.
func (c *Coordinator) ShowMonth(side Side, year int, month time.Month) error {
	if c.closed {
		return fmt.Errorf("show month: %w", ErrClosed)
	}
	return c.controller(side).ShowMonth(year, month)
}

// NextMonth advances side's calendar by one month.
func (c *Coordinator) NextMonth(side Side) {
	if !c.closed {
		c.controller(side).NextMonth()
	}
}

// PreviousMonth moves side's calendar back by one month.
func (c *Coordinator) PreviousMonth(side Side) {
	if !c.closed {
		c.controller(side).PreviousMonth()
	}
}

// Close releases both calendars by dropping every subscription. Later
// operations fail with ErrClosed.
func (c *Coordinator) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, unsubscribe := range c.unsubscribe {
		unsubscribe()
	}
	c.start.UnsubscribeAll()
	c.end.UnsubscribeAll()
	c.listeners.Clear()
}

func (c *Coordinator) check(d calendar.Date) error {
	if c.closed {
		return ErrClosed
	}
	if d.IsZero() {
		return calendar.ErrInvalidDateInput
	}
	return nil
}

func (c *Coordinator) selectStart(d calendar.Date) error {
	if err := c.start.SelectDate(d); err != nil {
		return err
	}
	if end := c.end.SelectedDate(); d.After(end) {
		c.logger.Debug("start after end, end follows start", "start", d, "end", end)
		return c.end.SelectDate(d)
	}
	return nil
}

func (c *Coordinator) selectEnd(d calendar.Date) error {
	if err := c.end.SelectDate(d); err != nil {
		return err
	}
	if start := c.start.SelectedDate(); d.Before(start) {
		c.logger.Debug("end before start, start follows end", "start", start, "end", d)
		return c.start.SelectDate(d)
	}
	return nil
}

// update runs fn with both calendars' events held, then highlights the
// resulting range. Calendar listeners therefore see both selections and the
// final InRange flags.
func (c *Coordinator) update(fn func() error) error {
	c.start.Hold()
	c.end.Hold()
	err := fn()
	if err == nil {
		c.highlight()
	}
	c.start.Release()
	c.end.Release()
	return err
}

func (c *Coordinator) highlight() {
	r := c.CurrentRange()
	c.start.HighlightRange(r)
	c.end.HighlightRange(r)
}

func (c *Coordinator) controller(side Side) *calendar.Controller {
	if side == EndCalendar {
		return c.end
	}
	return c.start
}
