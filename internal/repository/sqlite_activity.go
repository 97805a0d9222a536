package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkravec/rota/internal/db"
	"github.com/mkravec/rota/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo over a DBTX. The event log is
// append-only: there is no update or delete path.
type SQLiteActivityRepo struct {
	db db.DBTX
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(dbtx db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: dbtx}
}

func (r *SQLiteActivityRepo) Append(ctx context.Context, e *domain.ActivityEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_events (operator_id, at, state) VALUES (?, ?, ?)`,
		e.OperatorID, e.At.UTC().Format(time.RFC3339), string(e.State))
	if err != nil {
		return fmt.Errorf("appending activity event: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) ListRange(ctx context.Context, operatorID int64, from, to time.Time) ([]domain.ActivityEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT operator_id, at, state FROM activity_events
		WHERE operator_id = ? AND at >= ? AND at < ?
		ORDER BY at`,
		operatorID, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing activity events: %w", err)
	}
	defer rows.Close()

	var events []domain.ActivityEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity events: %w", err)
	}
	return events, nil
}

// LastEvent returns the most recent event for an operator, used to keep the
// log monotonic on append.
func (r *SQLiteActivityRepo) LastEvent(ctx context.Context, operatorID int64) (*domain.ActivityEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT operator_id, at, state FROM activity_events
		WHERE operator_id = ? ORDER BY at DESC LIMIT 1`,
		operatorID)

	var e domain.ActivityEvent
	var atStr, state string
	if err := row.Scan(&e.OperatorID, &atStr, &state); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("activity event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity event: %w", err)
	}
	return populateEvent(&e, atStr, state)
}

func scanEvent(rows *sql.Rows) (*domain.ActivityEvent, error) {
	var e domain.ActivityEvent
	var atStr, state string
	if err := rows.Scan(&e.OperatorID, &atStr, &state); err != nil {
		return nil, fmt.Errorf("scanning activity event row: %w", err)
	}
	return populateEvent(&e, atStr, state)
}

func populateEvent(e *domain.ActivityEvent, atStr, state string) (*domain.ActivityEvent, error) {
	var err error
	e.At, err = time.Parse(time.RFC3339, atStr)
	if err != nil {
		return nil, fmt.Errorf("parsing event time: %w", err)
	}
	e.State = domain.ActivityState(state)
	return e, nil
}
