package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/picker"
)

const weekdayHeader = "Mo Tu We Th Fr Sa Su"

// maxPresetKeys is the number of presets reachable with 1-9.
const maxPresetKeys = 9

var sideTitles = map[picker.Side]string{
	picker.StartCalendar: "Start",
	picker.EndCalendar:   "End",
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	cals := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCalendar(picker.StartCalendar),
		" ",
		m.renderCalendar(picker.EndCalendar),
	)
	if m.showPresets && len(m.picker.Presets()) > 0 {
		cals = lipgloss.JoinHorizontal(lipgloss.Top, cals, " ", m.renderPresets())
	}

	rows := []string{cals, rangeStyle.Render(m.describe(m.picker.CurrentRange())), m.renderStatus()}
	if m.saving {
		rows = append(rows, inputStyle.Render(m.input.View()), m.help.View(savingKeys{m.keys}))
	} else {
		rows = append(rows, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCalendar(side picker.Side) string {
	v := m.picker.View(side)
	g := v.Grid()
	focused := side == m.focus

	var b strings.Builder
	title := fmt.Sprintf("%s · %s %d", sideTitles[side], g.Month.Month, g.Month.Year)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(weekdayStyle.Render(weekdayHeader))
	for _, row := range g.Rows {
		b.WriteString("\n")
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, m.renderCell(cell, focused && cell.Date == m.cursor[side]))
		}
		b.WriteString(strings.Join(cells, " "))
	}

	style := calendarStyle
	if focused {
		style = focusedCalendarStyle
	}
	return style.Render(b.String())
}

func (m *Model) renderCell(cell calendar.DayCell, cursor bool) string {
	var style lipgloss.Style
	switch {
	case cursor:
		style = cursorStyle
	case cell.Selected:
		style = selectedStyle
	case cell.InRange:
		style = inRangeStyle
	case !cell.InMonth:
		style = overshotStyle
	default:
		style = dayStyle
	}
	if cell.InMonth && cell.Date == m.today {
		style = style.Inherit(todayStyle)
	}
	return style.Render(fmt.Sprintf("%2d", cell.Date.Day()))
}

func (m *Model) renderPresets() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Presets"))
	for i, p := range m.picker.Presets() {
		b.WriteString("\n")
		k := "·"
		if i < maxPresetKeys {
			k = fmt.Sprint(i + 1)
		}
		b.WriteString(presetKeyStyle.Render(k) + " " + presetDescStyle.Render(p.Label))
	}
	return presetsStyle.Render(b.String())
}

func (m *Model) renderStatus() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	if m.width <= 0 {
		return style.Render(msg)
	}
	line := ansi.Truncate(strings.ReplaceAll(msg, "\n", " "), m.width, "")
	if w := ansi.StringWidth(line); w < m.width {
		line += strings.Repeat(" ", m.width-w)
	}
	return style.Width(m.width).MaxWidth(m.width).Render(line)
}
