package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mkravec/rota/internal/db"
	"github.com/mkravec/rota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp
// directory. Unlike :memory:, a file-backed DB shares state across all
// connections in the pool, which is required to exercise WAL-mode access.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "concurrent_test.db")
	database, err := db.OpenDB(dbPath)
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite verifies that schedule reads neither
// block nor observe corrupt rows while shift writes are in flight. WAL mode
// allows concurrent readers with a single writer, which is the normal
// operating mode for per-operator write serialization.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteShiftRepo(database)
	date := testutil.MustDate("2024-03-04")

	var wg sync.WaitGroup

	// Writer: one shift per simulated operator.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for op := int64(1); op <= 20; op++ {
			shift := testutil.NewTestShift(op, date, "09:00", "17:00")
			if err := repo.Create(ctx, shift); err != nil {
				t.Errorf("writer: create shift for operator %d: %v", op, err)
				return
			}
		}
	}()

	// Readers: repeatedly list one operator-day while writes happen.
	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if _, err := repo.ListByOperatorDate(ctx, int64(reader+1), date); err != nil {
					t.Errorf("reader %d: %v", reader, err)
					return
				}
			}
		}(r)
	}

	wg.Wait()

	for op := int64(1); op <= 20; op++ {
		shifts, err := repo.ListByOperatorDate(ctx, op, date)
		require.NoError(t, err)
		assert.Len(t, shifts, 1, fmt.Sprintf("operator %d", op))
	}
}
