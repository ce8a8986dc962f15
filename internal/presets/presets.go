// Package presets turns configured preset definitions into picker presets.
//
// A definition is either absolute (start and end dates) or relative to today.
// Relative weeks run Monday to Sunday.
package presets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/config"
	"github.com/jask/rangepicker/internal/picker"
)

var ErrUnknownRelative = errors.New("unknown relative preset")

// Relative preset names.
const (
	Today       = "today"
	Yesterday   = "yesterday"
	ThisWeek    = "thisWeek"
	LastWeek    = "lastWeek"
	Last7Days   = "last7Days"
	Last30Days  = "last30Days"
	ThisMonth   = "thisMonth"
	LastMonth   = "lastMonth"
	Last3Months = "last3Months"
	YearToDate  = "yearToDate"
	LastYear    = "lastYear"
)

// Defaults is used when the configuration lists no presets.
func Defaults() []config.PresetConfig {
	return []config.PresetConfig{
		{Label: "Today", Relative: Today},
		{Label: "Yesterday", Relative: Yesterday},
		{Label: "This week", Relative: ThisWeek},
		{Label: "Last week", Relative: LastWeek},
		{Label: "Last 7 days", Relative: Last7Days},
		{Label: "Last 30 days", Relative: Last30Days},
		{Label: "This month", Relative: ThisMonth},
		{Label: "Last month", Relative: LastMonth},
		{Label: "Year to date", Relative: YearToDate},
	}
}

// Relative resolves a relative preset name against today. Names match
// case-insensitively.
func Relative(name string, today calendar.Date) (calendar.Range, error) {
	month := calendar.MonthOf(today)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case strings.ToLower(Today):
		return calendar.NewRange(today, today), nil
	case strings.ToLower(Yesterday):
		y := today.AddDays(-1)
		return calendar.NewRange(y, y), nil
	case strings.ToLower(ThisWeek):
		monday := calendar.StartOfWeek(today)
		return calendar.NewRange(monday, monday.AddDays(6)), nil
	case strings.ToLower(LastWeek):
		monday := calendar.StartOfWeek(today).AddDays(-7)
		return calendar.NewRange(monday, monday.AddDays(6)), nil
	case strings.ToLower(Last7Days):
		return calendar.NewRange(today.AddDays(-6), today), nil
	case strings.ToLower(Last30Days):
		return calendar.NewRange(today.AddDays(-29), today), nil
	case strings.ToLower(ThisMonth):
		return calendar.NewRange(month.FirstDay(), month.LastDay()), nil
	case strings.ToLower(LastMonth):
		prev := month.Previous()
		return calendar.NewRange(prev.FirstDay(), prev.LastDay()), nil
	case strings.ToLower(Last3Months):
		return calendar.NewRange(today.AddMonths(-3), today), nil
	case strings.ToLower(YearToDate):
		jan := calendar.YearMonth{Year: today.Year(), Month: 1}
		return calendar.NewRange(jan.FirstDay(), today), nil
	case strings.ToLower(LastYear):
		jan := calendar.YearMonth{Year: today.Year() - 1, Month: 1}
		dec := calendar.YearMonth{Year: today.Year() - 1, Month: 12}
		return calendar.NewRange(jan.FirstDay(), dec.LastDay()), nil
	default:
		return calendar.Range{}, fmt.Errorf("%w: %q", ErrUnknownRelative, name)
	}
}

// Resolve converts definitions to presets in order. Absolute ranges are kept
// as written, even when inverted; the picker corrects them on use.
func Resolve(today calendar.Date, defs []config.PresetConfig) ([]picker.Preset, error) {
	out := make([]picker.Preset, 0, len(defs))
	for _, def := range defs {
		label := strings.TrimSpace(def.Label)
		if label == "" {
			return nil, fmt.Errorf("preset without label")
		}
		r, err := resolveOne(today, def)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", label, err)
		}
		out = append(out, picker.Preset{Label: label, Range: r})
	}
	return out, nil
}

func resolveOne(today calendar.Date, def config.PresetConfig) (calendar.Range, error) {
	if def.Relative != "" {
		if def.Start != "" || def.End != "" {
			return calendar.Range{}, fmt.Errorf("relative preset also sets start/end")
		}
		return Relative(def.Relative, today)
	}
	start, err := calendar.ParseDate(def.Start)
	if err != nil {
		return calendar.Range{}, fmt.Errorf("start: %w", err)
	}
	end, err := calendar.ParseDate(def.End)
	if err != nil {
		return calendar.Range{}, fmt.Errorf("end: %w", err)
	}
	return calendar.Range{Start: start, End: end}, nil
}
