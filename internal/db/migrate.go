package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS shifts (
		id          TEXT PRIMARY KEY,
		operator_id INTEGER NOT NULL,
		work_date   TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		UNIQUE(operator_id, work_date, start_time, end_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_operator_date ON shifts(operator_id, work_date)`,

	`CREATE TABLE IF NOT EXISTS shift_breaks (
		shift_id  TEXT NOT NULL REFERENCES shifts(id) ON DELETE CASCADE,
		start_min INTEGER NOT NULL,
		end_min   INTEGER NOT NULL,
		PRIMARY KEY (shift_id, start_min, end_min)
	)`,

	`CREATE TABLE IF NOT EXISTS days_off (
		operator_id INTEGER NOT NULL,
		work_date   TEXT NOT NULL,
		PRIMARY KEY (operator_id, work_date)
	)`,

	`CREATE TABLE IF NOT EXISTS absence_periods (
		id               TEXT PRIMARY KEY,
		operator_id      INTEGER NOT NULL,
		status           TEXT NOT NULL
		                 CHECK(status IN ('bs','sick_leave','annual_leave','dismissal')),
		start_date       TEXT NOT NULL,
		end_date         TEXT,
		dismissal_reason TEXT NOT NULL DEFAULT '',
		comment          TEXT NOT NULL DEFAULT '',
		created_by       TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_absence_operator ON absence_periods(operator_id, start_date)`,

	`CREATE TABLE IF NOT EXISTS activity_events (
		operator_id INTEGER NOT NULL,
		at          TEXT NOT NULL,
		state       TEXT NOT NULL,
		PRIMARY KEY (operator_id, at)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_operator_at ON activity_events(operator_id, at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
