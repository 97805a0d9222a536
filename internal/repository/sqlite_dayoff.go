package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mkravec/rota/internal/db"
	"github.com/mkravec/rota/internal/domain"
)

// SQLiteDayOffRepo implements DayOffRepo over a DBTX.
type SQLiteDayOffRepo struct {
	db db.DBTX
}

// NewSQLiteDayOffRepo creates a new SQLiteDayOffRepo.
func NewSQLiteDayOffRepo(dbtx db.DBTX) *SQLiteDayOffRepo {
	return &SQLiteDayOffRepo{db: dbtx}
}

func (r *SQLiteDayOffRepo) Exists(ctx context.Context, operatorID int64, date time.Time) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM days_off WHERE operator_id = ? AND work_date = ?`,
		operatorID, domain.DateKey(date)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking day off: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteDayOffRepo) Set(ctx context.Context, operatorID int64, date time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO days_off (operator_id, work_date) VALUES (?, ?)`,
		operatorID, domain.DateKey(date))
	if err != nil {
		return fmt.Errorf("setting day off: %w", err)
	}
	return nil
}

// Clear removes the marker if present and reports whether it existed.
func (r *SQLiteDayOffRepo) Clear(ctx context.Context, operatorID int64, date time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM days_off WHERE operator_id = ? AND work_date = ?`,
		operatorID, domain.DateKey(date))
	if err != nil {
		return false, fmt.Errorf("clearing day off: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("counting cleared days off: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteDayOffRepo) ListRange(ctx context.Context, operatorID int64, from, to time.Time) ([]domain.DayOff, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT operator_id, work_date FROM days_off
		WHERE operator_id = ? AND work_date >= ? AND work_date <= ?
		ORDER BY work_date`,
		operatorID, domain.DateKey(from), domain.DateKey(to))
	if err != nil {
		return nil, fmt.Errorf("listing days off: %w", err)
	}
	defer rows.Close()

	var out []domain.DayOff
	for rows.Next() {
		var d domain.DayOff
		var dateStr string
		if err := rows.Scan(&d.OperatorID, &dateStr); err != nil {
			return nil, fmt.Errorf("scanning day off row: %w", err)
		}
		d.Date, err = domain.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing work_date: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating days off: %w", err)
	}
	return out, nil
}
