package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkravec/rota/internal/db"
	"github.com/mkravec/rota/internal/domain"
)

// shiftColumns is the canonical SELECT column list for shifts.
const shiftColumns = `id, operator_id, work_date, start_time, end_time, created_at, updated_at`

// SQLiteShiftRepo implements ShiftRepo over a DBTX, so the same repo works
// against the pool or inside a unit-of-work transaction.
type SQLiteShiftRepo struct {
	db db.DBTX
}

// NewSQLiteShiftRepo creates a new SQLiteShiftRepo.
func NewSQLiteShiftRepo(dbtx db.DBTX) *SQLiteShiftRepo {
	return &SQLiteShiftRepo{db: dbtx}
}

func (r *SQLiteShiftRepo) Create(ctx context.Context, s *domain.Shift) error {
	query := `INSERT INTO shifts (id, operator_id, work_date, start_time, end_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.OperatorID,
		domain.DateKey(s.Date),
		s.Start,
		s.End,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting shift: %w", err)
	}
	if len(s.Breaks) > 0 {
		return r.ReplaceBreaks(ctx, s.ID, s.Breaks)
	}
	return nil
}

func (r *SQLiteShiftRepo) GetByKey(ctx context.Context, operatorID int64, date time.Time, start, end string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts
		WHERE operator_id = ? AND work_date = ? AND start_time = ? AND end_time = ?`
	row := r.db.QueryRowContext(ctx, query, operatorID, domain.DateKey(date), start, end)
	s, err := r.scanShift(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadBreaks(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteShiftRepo) ListByOperatorDate(ctx context.Context, operatorID int64, date time.Time) ([]*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts
		WHERE operator_id = ? AND work_date = ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, operatorID, domain.DateKey(date))
	if err != nil {
		return nil, fmt.Errorf("listing shifts by date: %w", err)
	}
	defer rows.Close()
	return r.scanShifts(ctx, rows)
}

func (r *SQLiteShiftRepo) ListRange(ctx context.Context, operatorID int64, from, to time.Time) ([]*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts
		WHERE operator_id = ? AND work_date >= ? AND work_date <= ?
		ORDER BY work_date, start_time`
	rows, err := r.db.QueryContext(ctx, query, operatorID, domain.DateKey(from), domain.DateKey(to))
	if err != nil {
		return nil, fmt.Errorf("listing shifts by range: %w", err)
	}
	defer rows.Close()
	return r.scanShifts(ctx, rows)
}

// TouchUpdated bumps updated_at on an existing shift record. Used when a
// write lands on the exact key of a stored shift.
func (r *SQLiteShiftRepo) TouchUpdated(ctx context.Context, id string) error {
	query := `UPDATE shifts SET updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, nowUTC(), id); err != nil {
		return fmt.Errorf("touching shift: %w", err)
	}
	return nil
}

// ReplaceBreaks swaps the full break set of a shift in place.
func (r *SQLiteShiftRepo) ReplaceBreaks(ctx context.Context, shiftID string, breaks []domain.Break) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shift_breaks WHERE shift_id = ?`, shiftID); err != nil {
		return fmt.Errorf("clearing breaks: %w", err)
	}
	for _, b := range breaks {
		_, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO shift_breaks (shift_id, start_min, end_min) VALUES (?, ?, ?)`,
			shiftID, b.StartMin, b.EndMin)
		if err != nil {
			return fmt.Errorf("inserting break: %w", err)
		}
	}
	return nil
}

func (r *SQLiteShiftRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting shift: %w", err)
	}
	return nil
}

// DeleteByKey removes the shift stored under the exact operator/date/time
// key and reports whether anything was removed.
func (r *SQLiteShiftRepo) DeleteByKey(ctx context.Context, operatorID int64, date time.Time, start, end string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE operator_id = ? AND work_date = ? AND start_time = ? AND end_time = ?`,
		operatorID, domain.DateKey(date), start, end)
	if err != nil {
		return false, fmt.Errorf("deleting shift by key: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("counting deleted shifts: %w", err)
	}
	return n > 0, nil
}

// DeleteAllForDate clears every shift of an operator-day, returning how many
// records went away. Used when a day off is toggled on.
func (r *SQLiteShiftRepo) DeleteAllForDate(ctx context.Context, operatorID int64, date time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE operator_id = ? AND work_date = ?`,
		operatorID, domain.DateKey(date))
	if err != nil {
		return 0, fmt.Errorf("deleting shifts for date: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted shifts: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteShiftRepo) scanShift(row *sql.Row) (*domain.Shift, error) {
	var s domain.Shift
	var dateStr, createdStr, updatedStr string

	err := row.Scan(&s.ID, &s.OperatorID, &dateStr, &s.Start, &s.End, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("shift: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning shift: %w", err)
	}
	return r.populateShift(&s, dateStr, createdStr, updatedStr)
}

func (r *SQLiteShiftRepo) scanShifts(ctx context.Context, rows *sql.Rows) ([]*domain.Shift, error) {
	var shifts []*domain.Shift
	for rows.Next() {
		var s domain.Shift
		var dateStr, createdStr, updatedStr string

		if err := rows.Scan(&s.ID, &s.OperatorID, &dateStr, &s.Start, &s.End, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning shift row: %w", err)
		}
		shift, err := r.populateShift(&s, dateStr, createdStr, updatedStr)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}
	for _, s := range shifts {
		if err := r.loadBreaks(ctx, s); err != nil {
			return nil, err
		}
	}
	return shifts, nil
}

func (r *SQLiteShiftRepo) populateShift(s *domain.Shift, dateStr, createdStr, updatedStr string) (*domain.Shift, error) {
	var err error
	s.Date, err = domain.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing work_date: %w", err)
	}
	s.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}

func (r *SQLiteShiftRepo) loadBreaks(ctx context.Context, s *domain.Shift) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT start_min, end_min FROM shift_breaks WHERE shift_id = ? ORDER BY start_min, end_min`,
		s.ID)
	if err != nil {
		return fmt.Errorf("listing breaks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b domain.Break
		if err := rows.Scan(&b.StartMin, &b.EndMin); err != nil {
			return fmt.Errorf("scanning break row: %w", err)
		}
		s.Breaks = append(s.Breaks, b)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating breaks: %w", err)
	}
	return nil
}
