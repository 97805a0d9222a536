package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkravec/rota/internal/db"
	"github.com/mkravec/rota/internal/domain"
)

const absenceColumns = `id, operator_id, status, start_date, end_date,
		dismissal_reason, comment, created_by, created_at`

// SQLiteAbsenceRepo implements AbsenceRepo over a DBTX.
type SQLiteAbsenceRepo struct {
	db db.DBTX
}

// NewSQLiteAbsenceRepo creates a new SQLiteAbsenceRepo.
func NewSQLiteAbsenceRepo(dbtx db.DBTX) *SQLiteAbsenceRepo {
	return &SQLiteAbsenceRepo{db: dbtx}
}

func (r *SQLiteAbsenceRepo) Create(ctx context.Context, p *domain.AbsencePeriod) error {
	query := `INSERT INTO absence_periods (` + absenceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.OperatorID,
		string(p.Status),
		domain.DateKey(p.StartDate),
		nullableDateToString(p.EndDate),
		p.DismissalReason,
		p.Comment,
		p.CreatedBy,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting absence period: %w", err)
	}
	return nil
}

func (r *SQLiteAbsenceRepo) GetByID(ctx context.Context, id string) (*domain.AbsencePeriod, error) {
	query := `SELECT ` + absenceColumns + ` FROM absence_periods WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPeriod(row)
}

func (r *SQLiteAbsenceRepo) ListByOperator(ctx context.Context, operatorID int64) ([]domain.AbsencePeriod, error) {
	query := `SELECT ` + absenceColumns + ` FROM absence_periods
		WHERE operator_id = ? ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, operatorID)
	if err != nil {
		return nil, fmt.Errorf("listing absence periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.AbsencePeriod
	for rows.Next() {
		p, err := r.scanPeriodRow(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating absence periods: %w", err)
	}
	return periods, nil
}

func (r *SQLiteAbsenceRepo) Update(ctx context.Context, p *domain.AbsencePeriod) error {
	query := `UPDATE absence_periods
		SET status = ?, start_date = ?, end_date = ?, dismissal_reason = ?, comment = ?, created_by = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		string(p.Status),
		domain.DateKey(p.StartDate),
		nullableDateToString(p.EndDate),
		p.DismissalReason,
		p.Comment,
		p.CreatedBy,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating absence period: %w", err)
	}
	return nil
}

func (r *SQLiteAbsenceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM absence_periods WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting absence period: %w", err)
	}
	return nil
}

func (r *SQLiteAbsenceRepo) scanPeriod(row *sql.Row) (*domain.AbsencePeriod, error) {
	var p domain.AbsencePeriod
	var status, startStr, createdStr string
	var endStr sql.NullString

	err := row.Scan(&p.ID, &p.OperatorID, &status, &startStr, &endStr,
		&p.DismissalReason, &p.Comment, &p.CreatedBy, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("absence period: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning absence period: %w", err)
	}
	return r.populatePeriod(&p, status, startStr, endStr, createdStr)
}

func (r *SQLiteAbsenceRepo) scanPeriodRow(rows *sql.Rows) (*domain.AbsencePeriod, error) {
	var p domain.AbsencePeriod
	var status, startStr, createdStr string
	var endStr sql.NullString

	err := rows.Scan(&p.ID, &p.OperatorID, &status, &startStr, &endStr,
		&p.DismissalReason, &p.Comment, &p.CreatedBy, &createdStr)
	if err != nil {
		return nil, fmt.Errorf("scanning absence period row: %w", err)
	}
	return r.populatePeriod(&p, status, startStr, endStr, createdStr)
}

func (r *SQLiteAbsenceRepo) populatePeriod(p *domain.AbsencePeriod, status, startStr string, endStr sql.NullString, createdStr string) (*domain.AbsencePeriod, error) {
	p.Status = domain.AbsenceStatus(status)

	var err error
	p.StartDate, err = domain.ParseDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	p.EndDate = parseNullableDate(endStr)
	p.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return p, nil
}
