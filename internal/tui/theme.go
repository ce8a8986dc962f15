package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the picker draws with.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorSubtext0
	colorBorder  = colorSurface2
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	weekdayStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	dayStyle      = lipgloss.NewStyle().Foreground(colorText)
	overshotStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
	inRangeStyle  = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1)
	selectedStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorAccent).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorBase).Background(colorBlue)
	todayStyle    = lipgloss.NewStyle().Underline(true)

	calendarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	focusedCalendarStyle = calendarStyle.
				BorderForeground(colorFocus)
	presetsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	presetKeyStyle  = lipgloss.NewStyle().Foreground(colorMauve).Bold(true)
	presetDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	rangeStyle      = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	inputStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Padding(0, 1)
)
