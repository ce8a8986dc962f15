// Package tui is the bubbletea front end of the range picker: two calendars
// side by side, a preset column and a status line.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/database/repository"
	"github.com/jask/rangepicker/internal/picker"
)

// Saver stores a range under a label. SaveRange runs on a tea.Cmd goroutine.
type Saver interface {
	SaveRange(ctx context.Context, label string, r calendar.Range) (repository.SavedRange, error)
}

// Options configure a Model.
type Options struct {
	// DateFormat is a time layout for the range line, "02 Jan 2006" when empty.
	DateFormat  string
	ShowPresets bool
	Saver       Saver
	Now         func() time.Time
}

// Model drives a picker.Coordinator from key presses. Use it through a
// pointer; the coordinator's listeners refer back to it.
type Model struct {
	ctx         context.Context
	picker      *picker.Coordinator
	saver       Saver
	keys        keyMap
	help        help.Model
	input       textinput.Model
	saving      bool
	focus       picker.Side
	cursor      [2]calendar.Date
	status      string
	statusErr   bool
	dateFormat  string
	showPresets bool
	today       calendar.Date
	width       int
	quitting    bool
	unsubscribe func()
}

type savedMsg repository.SavedRange

type errMsg struct{ error }

func New(ctx context.Context, c *picker.Coordinator, opts Options) *Model {
	inp := textinput.New()
	inp.Placeholder = "Label"
	inp.Prompt = "save as> "
	inp.CharLimit = 40

	format := opts.DateFormat
	if format == "" {
		format = "02 Jan 2006"
	}
	m := &Model{
		ctx:         ctx,
		picker:      c,
		saver:       opts.Saver,
		keys:        defaultKeyMap(),
		help:        help.New(),
		input:       inp,
		focus:       picker.StartCalendar,
		dateFormat:  format,
		showPresets: opts.ShowPresets,
		today:       calendar.Today(opts.Now),
	}
	m.cursor[picker.StartCalendar] = c.Start().SelectedDate()
	m.cursor[picker.EndCalendar] = c.End().SelectedDate()
	m.status = m.describe(c.CurrentRange())
	m.unsubscribe = c.Subscribe(picker.RangeFuncs{
		OnStartDateSelected: func(r calendar.Range) { m.setStatus("start " + m.describe(r)) },
		OnEndDateSelected:   func(r calendar.Range) { m.setStatus("end " + m.describe(r)) },
		OnRangeSelected:     func(r calendar.Range) { m.setStatus("preset " + m.describe(r)) },
	})
	return m
}

// Range returns the picker's current selection.
func (m *Model) Range() calendar.Range { return m.picker.CurrentRange() }

// Focus reports which calendar receives cursor keys.
func (m *Model) Focus() picker.Side { return m.focus }

// Cursor returns the highlighted day of a calendar.
func (m *Model) Cursor(side picker.Side) calendar.Date { return m.cursor[side] }

// Status returns the status line text.
func (m *Model) Status() string { return m.status }

// Close detaches the model from the coordinator.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.saving {
			return m.updateSaving(msg)
		}
		return m.updateKeys(msg)
	case savedMsg:
		m.setStatus(fmt.Sprintf("saved %q (%s), offered as a preset next start", msg.Label, m.describe(repository.SavedRange(msg).Range())))
	case errMsg:
		m.setError(msg.error)
	}
	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.SwitchCalendar):
		if m.focus == picker.StartCalendar {
			m.focus = picker.EndCalendar
		} else {
			m.focus = picker.StartCalendar
		}
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.Select):
		m.selectCursor()
	case key.Matches(msg, m.keys.NextMonth):
		m.picker.NextMonth(m.focus)
		m.cursor[m.focus] = m.cursor[m.focus].AddMonths(1)
		m.syncCursors()
	case key.Matches(msg, m.keys.PrevMonth):
		m.picker.PreviousMonth(m.focus)
		m.cursor[m.focus] = m.cursor[m.focus].AddMonths(-1)
		m.syncCursors()
	case key.Matches(msg, m.keys.Preset):
		m.applyPreset(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Save):
		if m.saver == nil {
			m.setError(errors.New("saving is not available"))
			return m, nil
		}
		m.saving = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateSaving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.stopSaving()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		label := strings.TrimSpace(m.input.Value())
		if label == "" {
			m.setError(errors.New("label is empty"))
			return m, nil
		}
		m.stopSaving()
		return m, m.saveCmd(label, m.picker.CurrentRange())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopSaving() {
	m.saving = false
	m.input.Blur()
}

// saveCmd stores r, the range shown when the label was confirmed.
func (m *Model) saveCmd(label string, r calendar.Range) tea.Cmd {
	saver, ctx := m.saver, m.ctx
	return func() tea.Msg {
		saved, err := saver.SaveRange(ctx, label, r)
		if err != nil {
			return errMsg{err}
		}
		return savedMsg(saved)
	}
}

// moveCursor moves the focused cursor by days, following it into another
// month when it leaves the displayed one.
func (m *Model) moveCursor(days int) {
	next := m.cursor[m.focus].AddDays(days)
	if calendar.MonthOf(next) != m.picker.View(m.focus).DisplayedMonth() {
		if err := m.picker.ShowMonth(m.focus, next.Year(), next.Month()); err != nil {
			m.setError(err)
			return
		}
	}
	m.cursor[m.focus] = next
}

func (m *Model) selectCursor() {
	var err error
	if m.focus == picker.StartCalendar {
		err = m.picker.SelectStart(m.cursor[m.focus])
	} else {
		err = m.picker.SelectEnd(m.cursor[m.focus])
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.syncCursors()
}

func (m *Model) applyPreset(i int) {
	presets := m.picker.Presets()
	if i < 0 || i >= len(presets) {
		m.setError(fmt.Errorf("no preset %d", i+1))
		return
	}
	if err := m.picker.ApplyPreset(presets[i].Label); err != nil {
		m.setError(err)
		return
	}
	m.cursor[picker.StartCalendar] = m.picker.Start().SelectedDate()
	m.cursor[picker.EndCalendar] = m.picker.End().SelectedDate()
}

// syncCursors keeps each cursor inside its calendar's displayed month,
// preferring the selected day when the month changed underneath it.
func (m *Model) syncCursors() {
	for _, side := range []picker.Side{picker.StartCalendar, picker.EndCalendar} {
		v := m.picker.View(side)
		shown := v.DisplayedMonth()
		if shown.Contains(m.cursor[side]) {
			continue
		}
		if sel := v.SelectedDate(); shown.Contains(sel) {
			m.cursor[side] = sel
		} else {
			m.cursor[side] = shown.FirstDay()
		}
	}
}

func (m *Model) describe(r calendar.Range) string {
	days := r.Days()
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return fmt.Sprintf("%s to %s (%d %s)", r.Start.Format(m.dateFormat), r.End.Format(m.dateFormat), days, unit)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "error: " + err.Error()
	m.statusErr = true
}
