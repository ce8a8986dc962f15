package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/database/repository"
	"github.com/jask/rangepicker/internal/picker"
)

var ErrNoSelection = errors.New("no range selected")

// Session persists the picker's selection. It implements
// picker.RangeListener; writes happen inside the callback with the context
// given to NewSession and failures are only logged. Session keeps no
// selection state of its own, so SaveRange may run on another goroutine.
type Session struct {
	Ranges    *repository.SavedRangeRepo
	Selection *repository.SelectionRepo
	Logger    *slog.Logger

	ctx context.Context
}

func NewSession(ctx context.Context, ranges *repository.SavedRangeRepo, selection *repository.SelectionRepo, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{Ranges: ranges, Selection: selection, Logger: logger, ctx: ctx}
}

func (s *Session) StartDateSelected(r calendar.Range) { s.record("start", r) }
func (s *Session) EndDateSelected(r calendar.Range)   { s.record("end", r) }
func (s *Session) RangeSelected(r calendar.Range)     { s.record("range", r) }

func (s *Session) record(kind string, r calendar.Range) {
	if s.Selection == nil {
		return
	}
	if err := s.Selection.SaveLast(s.ctx, r); err != nil {
		s.Logger.Warn("persist selection failed", "event", kind, "range", r.String(), "err", err)
		return
	}
	s.Logger.Debug("selection persisted", "event", kind, "range", r.String())
}

// InitialRange picks the range to open with: explicit start/end win, then the
// stored last selection. Zero dates in the result mean today.
func (s *Session) InitialRange(ctx context.Context, start, end calendar.Date) (calendar.Range, error) {
	if !start.IsZero() || !end.IsZero() || s.Selection == nil {
		return calendar.Range{Start: start, End: end}, nil
	}
	last, ok, err := s.Selection.Last(ctx)
	if err != nil {
		return calendar.Range{}, fmt.Errorf("load last selection: %w", err)
	}
	if !ok {
		return calendar.Range{}, nil
	}
	return last, nil
}

// SaveRange stores r under label. Saved ranges become presets through
// LoadPresets, so they are offered from the next start.
func (s *Session) SaveRange(ctx context.Context, label string, r calendar.Range) (repository.SavedRange, error) {
	if r.Start.IsZero() || r.End.IsZero() {
		return repository.SavedRange{}, ErrNoSelection
	}
	if s.Ranges == nil {
		return repository.SavedRange{}, fmt.Errorf("session: saved ranges not configured")
	}
	saved, err := s.Ranges.Upsert(ctx, repository.SavedRange{
		Label: label,
		Start: r.Start,
		End:   r.End,
	})
	if err != nil {
		return repository.SavedRange{}, err
	}
	s.Logger.Info("range saved", "label", saved.Label, "range", saved.Range().String())
	return saved, nil
}

// LoadPresets appends saved ranges to configured. A saved range whose label is
// already configured is skipped; labels compare case-insensitively.
func (s *Session) LoadPresets(ctx context.Context, configured []picker.Preset) ([]picker.Preset, error) {
	out := append([]picker.Preset(nil), configured...)
	if s.Ranges == nil {
		return out, nil
	}
	saved, err := s.Ranges.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved ranges: %w", err)
	}
	seen := make(map[string]bool, len(out)+len(saved))
	for _, p := range out {
		seen[strings.ToLower(p.Label)] = true
	}
	for _, sr := range saved {
		key := strings.ToLower(sr.Label)
		if seen[key] {
			s.Logger.Debug("saved range shadowed by configured preset", "label", sr.Label)
			continue
		}
		seen[key] = true
		out = append(out, picker.Preset{Label: sr.Label, Range: sr.Range()})
	}
	return out, nil
}
