package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/rangepicker/internal/calendar"
)

var (
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrDuplicatePreset = errors.New("duplicate preset label")
)

// Preset is a named range offered as a one-step selection. Labels are opaque
// lookup keys.
type Preset struct {
	Label string
	Range calendar.Range
}

// UnknownPresetError reports a lookup miss together with the closest known
// label, if any is close enough to be a likely typo.
type UnknownPresetError struct {
	Label      string
	Suggestion string
}

func (e *UnknownPresetError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown preset %q", e.Label)
	}
	return fmt.Sprintf("unknown preset %q, did you mean %q?", e.Label, e.Suggestion)
}

func (e *UnknownPresetError) Unwrap() error { return ErrUnknownPreset }

// suggestPreset returns the label nearest to label by edit distance, ignoring
// case, when the distance is at most a third of the longer string.
func suggestPreset(label string, presets []Preset) string {
	want := strings.ToLower(strings.TrimSpace(label))
	best, bestDist := "", -1
	for _, p := range presets {
		dist := levenshtein.ComputeDistance(want, strings.ToLower(p.Label))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = p.Label, dist
		}
	}
	if bestDist < 0 {
		return ""
	}
	limit := max(len(want), len(best))/3 + 1
	if bestDist > limit {
		return ""
	}
	return best
}

func indexPresets(presets []Preset) (map[string]int, error) {
	index := make(map[string]int, len(presets))
	for i, p := range presets {
		if p.Range.Start.IsZero() || p.Range.End.IsZero() {
			return nil, fmt.Errorf("preset %q: %w", p.Label, calendar.ErrInvalidDateInput)
		}
		if _, ok := index[p.Label]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePreset, p.Label)
		}
		index[p.Label] = i
	}
	return index, nil
}
