package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/database"
)

// SavedRangeRepo handles named ranges saved from the picker.
type SavedRangeRepo struct {
	db *sql.DB
}

func NewSavedRangeRepo(db *sql.DB) *SavedRangeRepo { return &SavedRangeRepo{db: db} }

// Upsert stores s under its label. An existing row with the same label keeps
// its id and creation time and takes the new dates. Inverted dates are
// swapped. The stored row is returned.
func (r *SavedRangeRepo) Upsert(ctx context.Context, s SavedRange) (SavedRange, error) {
	s.Label = strings.TrimSpace(s.Label)
	if s.Label == "" {
		return SavedRange{}, errors.New("saved range: empty label")
	}
	if s.Start.IsZero() || s.End.IsZero() {
		return SavedRange{}, fmt.Errorf("saved range %q: %w", s.Label, calendar.ErrInvalidDateInput)
	}
	if s.End.Before(s.Start) {
		s.Start, s.End = s.End, s.Start
	}

	err := database.WithTx(r.db, func(tx *sql.Tx) error {
		var id string
		err := tx.QueryRowContext(ctx, `SELECT id FROM saved_ranges WHERE label = ?`, s.Label).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			if s.ID == "" {
				s.ID = uuid.NewString()
			}
			s.CreatedAt = database.Now()
			_, err = tx.ExecContext(ctx, `
			INSERT INTO saved_ranges(id, label, start_date, end_date, created_at)
			VALUES (?, ?, ?, ?, ?);
			`, s.ID, s.Label, s.Start.String(), s.End.String(), s.CreatedAt)
			return err
		case err != nil:
			return err
		}
		s.ID = id
		if _, err := tx.ExecContext(ctx, `UPDATE saved_ranges SET start_date = ?, end_date = ? WHERE id = ?`,
			s.Start.String(), s.End.String(), id); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, `SELECT created_at FROM saved_ranges WHERE id = ?`, id).Scan(&s.CreatedAt)
	})
	if err != nil {
		return SavedRange{}, fmt.Errorf("upsert saved range %q: %w", s.Label, err)
	}
	return s, nil
}

// List returns saved ranges oldest first.
func (r *SavedRangeRepo) List(ctx context.Context) ([]SavedRange, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, label, start_date, end_date, created_at
	FROM saved_ranges ORDER BY created_at, label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SavedRange
	for rows.Next() {
		s, err := scanSavedRange(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ByLabel returns nil when no range has that label.
func (r *SavedRangeRepo) ByLabel(ctx context.Context, label string) (*SavedRange, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, label, start_date, end_date, created_at
	FROM saved_ranges WHERE label = ?`, strings.TrimSpace(label))
	s, err := scanSavedRange(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SavedRangeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM saved_ranges WHERE id = ?`, id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSavedRange(sc scanner) (SavedRange, error) {
	var s SavedRange
	var start, end string
	if err := sc.Scan(&s.ID, &s.Label, &start, &end, &s.CreatedAt); err != nil {
		return SavedRange{}, err
	}
	var err error
	if s.Start, err = calendar.ParseDate(start); err != nil {
		return SavedRange{}, fmt.Errorf("saved range %s: %w", s.ID, err)
	}
	if s.End, err = calendar.ParseDate(end); err != nil {
		return SavedRange{}, fmt.Errorf("saved range %s: %w", s.ID, err)
	}
	return s, nil
}
