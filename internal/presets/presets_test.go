package presets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/config"
)

func day(year int, month time.Month, d int) calendar.Date { return calendar.MustDate(year, month, d) }

func TestRelative(t *testing.T) {
	t.Parallel()

	// Thursday.
	today := day(2024, time.March, 7)
	tests := []struct {
		name       string
		start, end calendar.Date
	}{
		{Today, today, today},
		{Yesterday, day(2024, time.March, 6), day(2024, time.March, 6)},
		{ThisWeek, day(2024, time.March, 4), day(2024, time.March, 10)},
		{LastWeek, day(2024, time.February, 26), day(2024, time.March, 3)},
		{Last7Days, day(2024, time.March, 1), today},
		{Last30Days, day(2024, time.February, 7), today},
		{ThisMonth, day(2024, time.March, 1), day(2024, time.March, 31)},
		{LastMonth, day(2024, time.February, 1), day(2024, time.February, 29)},
		{Last3Months, day(2023, time.December, 7), today},
		{YearToDate, day(2024, time.January, 1), today},
		{LastYear, day(2023, time.January, 1), day(2023, time.December, 31)},
		{"LASTWEEK", day(2024, time.February, 26), day(2024, time.March, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Relative(tt.name, today)
			require.NoError(t, err)
			require.Equal(t, calendar.Range{Start: tt.start, End: tt.end}, r)
		})
	}
}

func TestRelativeWeekOnSunday(t *testing.T) {
	t.Parallel()

	r, err := Relative(ThisWeek, day(2024, time.March, 10))
	require.NoError(t, err)
	require.Equal(t, day(2024, time.March, 4), r.Start)
}

func TestRelativeLastMonthAcrossYear(t *testing.T) {
	t.Parallel()

	r, err := Relative(LastMonth, day(2025, time.January, 15))
	require.NoError(t, err)
	require.Equal(t, calendar.Range{Start: day(2024, time.December, 1), End: day(2024, time.December, 31)}, r)
}

func TestRelativeUnknown(t *testing.T) {
	t.Parallel()

	_, err := Relative("fortnight", day(2024, time.March, 7))
	require.ErrorIs(t, err, ErrUnknownRelative)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	today := day(2024, time.March, 7)
	got, err := Resolve(today, []config.PresetConfig{
		{Label: " Q1 ", Start: "2024-01-01", End: "2024-03-31"},
		{Label: "Backwards", Start: "2024-06-09", End: "2024-06-02"},
		{Label: "Today", Relative: Today},
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Q1", got[0].Label)
	require.Equal(t, calendar.Range{Start: day(2024, time.January, 1), End: day(2024, time.March, 31)}, got[0].Range)
	require.True(t, got[1].Range.Inverted())
	require.Equal(t, calendar.Range{Start: today, End: today}, got[2].Range)
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	today := day(2024, time.March, 7)
	tests := map[string]config.PresetConfig{
		"no label":       {Relative: Today},
		"bad start":      {Label: "x", Start: "2024-13-01", End: "2024-12-01"},
		"missing end":    {Label: "x", Start: "2024-01-01"},
		"unknown":        {Label: "x", Relative: "fortnight"},
		"relative+dates": {Label: "x", Relative: Today, Start: "2024-01-01"},
	}
	for name, def := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(today, []config.PresetConfig{def})
			require.Error(t, err)
		})
	}
}

func TestDefaultsResolve(t *testing.T) {
	t.Parallel()

	got, err := Resolve(day(2024, time.March, 7), Defaults())
	require.NoError(t, err)
	require.Len(t, got, len(Defaults()))
	for _, p := range got {
		require.False(t, p.Range.Inverted(), p.Label)
	}
}
