package repository

import (
	"database/sql"
	"time"

	"github.com/mkravec/rota/internal/domain"
)

// parseNullableDate parses a sql.NullString as a calendar date.
// Returns nil for NULL, empty, or unparseable values.
func parseNullableDate(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := domain.ParseDate(s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableDateToString converts a *time.Time into a SQLite date value,
// mapping nil to SQL NULL.
func nullableDateToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return domain.DateKey(*t)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
