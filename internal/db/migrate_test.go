package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already ran migrations; running again must be harmless.
	assert.NoError(t, Migrate(database))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"shifts", "shift_breaks", "days_off", "absence_periods", "activity_events"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestOpenDB_RejectsStatusOutsideCatalog(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO absence_periods
		(id, operator_id, status, start_date, created_at)
		VALUES ('x', 1, 'sabbatical', '2024-01-01', '2024-01-01T00:00:00Z')`)
	assert.Error(t, err, "CHECK constraint guards the status enum")
}
