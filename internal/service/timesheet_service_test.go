package service

import (
	"context"
	"testing"
	"time"

	"github.com/mkravec/rota/internal/domain"
	"github.com/mkravec/rota/internal/repository"
	"github.com/mkravec/rota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimesheetFixture(t *testing.T) TimesheetService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewTimesheetService(repository.NewSQLiteActivityRepo(database))
}

func TestLogEvent_RejectsNonMonotonic(t *testing.T) {
	svc := newTimesheetFixture(t)
	ctx := context.Background()
	base := time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC)

	require.NoError(t, svc.LogEvent(ctx, 1, base, domain.StateActive))
	require.NoError(t, svc.LogEvent(ctx, 1, base.Add(time.Hour), domain.StateBreak))

	err := svc.LogEvent(ctx, 1, base.Add(30*time.Minute), domain.StateActive)
	assert.Error(t, err, "events must move strictly forward")

	// Another operator's log is independent.
	assert.NoError(t, svc.LogEvent(ctx, 2, base, domain.StateActive))
}

func TestLogEvent_RejectsUnknownState(t *testing.T) {
	svc := newTimesheetFixture(t)
	err := svc.LogEvent(context.Background(), 1, time.Now(), domain.ActivityState("coffee"))
	assert.Error(t, err)
}

func TestBuild_ReconstructsStoredLog(t *testing.T) {
	svc := newTimesheetFixture(t)
	ctx := context.Background()
	day := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.LogEvent(ctx, 1, day.Add(8*time.Hour), domain.StateActive))
	require.NoError(t, svc.LogEvent(ctx, 1, day.Add(10*time.Hour), domain.StateBreak))
	require.NoError(t, svc.LogEvent(ctx, 1, day.Add(10*time.Hour+30*time.Minute), domain.StateActive))

	days, err := svc.Build(ctx, 1, day, day, day.Add(11*time.Hour))
	require.NoError(t, err)

	require.Len(t, days, 1)
	assert.Equal(t, int64(150*60), days[0].Seconds[domain.StateActive])
	assert.Equal(t, int64(30*60), days[0].Seconds[domain.StateBreak])
	assert.Equal(t, int64(150*60), days[0].WorkedSeconds())
}

func TestBuild_EmptyRange(t *testing.T) {
	svc := newTimesheetFixture(t)
	day := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	days, err := svc.Build(context.Background(), 1, day, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, days)
}
