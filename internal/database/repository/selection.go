package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/rangepicker/internal/calendar"
	"github.com/jask/rangepicker/internal/database"
)

// SelectionRepo keeps the single most recent picker selection.
type SelectionRepo struct {
	db *sql.DB
}

func NewSelectionRepo(db *sql.DB) *SelectionRepo { return &SelectionRepo{db: db} }

func (r *SelectionRepo) SaveLast(ctx context.Context, rg calendar.Range) error {
	if rg.Start.IsZero() || rg.End.IsZero() {
		return fmt.Errorf("save selection: %w", calendar.ErrInvalidDateInput)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO last_selection(id, start_date, end_date, updated_at) VALUES (1, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 start_date=excluded.start_date, end_date=excluded.end_date, updated_at=excluded.updated_at;
	`, rg.Start.String(), rg.End.String(), database.Now())
	return err
}

// Last returns the stored selection; ok is false when none was saved yet.
func (r *SelectionRepo) Last(ctx context.Context) (rg calendar.Range, ok bool, err error) {
	var start, end string
	err = r.db.QueryRowContext(ctx, `SELECT start_date, end_date FROM last_selection WHERE id = 1`).Scan(&start, &end)
	if errors.Is(err, sql.ErrNoRows) {
		return calendar.Range{}, false, nil
	}
	if err != nil {
		return calendar.Range{}, false, err
	}
	if rg.Start, err = calendar.ParseDate(start); err != nil {
		return calendar.Range{}, false, fmt.Errorf("last selection: %w", err)
	}
	if rg.End, err = calendar.ParseDate(end); err != nil {
		return calendar.Range{}, false, fmt.Errorf("last selection: %w", err)
	}
	return rg, true, nil
}
