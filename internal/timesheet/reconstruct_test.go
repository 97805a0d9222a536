package timesheet

import (
	"testing"
	"time"

	"github.com/mkravec/rota/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 9, 2, hour, min, 0, 0, time.UTC)
}

func ev(op int64, t time.Time, state domain.ActivityState) domain.ActivityEvent {
	return domain.ActivityEvent{OperatorID: op, At: t, State: state}
}

func TestReconstruct_DuplicateEventsAddNothing(t *testing.T) {
	events := []domain.ActivityEvent{
		ev(1, at(8, 0), domain.StateActive),
		ev(1, at(8, 0), domain.StateActive), // duplicate
		ev(1, at(10, 0), domain.StateBreak),
		ev(1, at(10, 30), domain.StateActive),
	}

	days := Reconstruct(events, at(11, 0))

	require.Len(t, days, 1)
	assert.Equal(t, int64(150*60), days[0].Seconds[domain.StateActive])
	assert.Equal(t, int64(30*60), days[0].Seconds[domain.StateBreak])
}

func TestReconstruct_LastIntervalClosedAtCutoff(t *testing.T) {
	events := []domain.ActivityEvent{
		ev(1, at(9, 0), domain.StateTraining),
	}

	days := Reconstruct(events, at(9, 45))

	require.Len(t, days, 1)
	assert.Equal(t, int64(45*60), days[0].Seconds[domain.StateTraining])
}

func TestReconstruct_WorkedSecondsCountsActiveAndSigning(t *testing.T) {
	events := []domain.ActivityEvent{
		ev(1, at(8, 0), domain.StateActive),
		ev(1, at(9, 0), domain.StateSigning),
		ev(1, at(9, 30), domain.StateInactive),
	}

	days := Reconstruct(events, at(10, 0))

	require.Len(t, days, 1)
	assert.Equal(t, int64(90*60), days[0].WorkedSeconds())
	// Inactive time is recorded but never counted as work.
	assert.Equal(t, int64(30*60), days[0].Seconds[domain.StateInactive])
}

func TestReconstruct_MidnightLegCreditedToStartDay(t *testing.T) {
	lateStart := time.Date(2024, 9, 2, 23, 0, 0, 0, time.UTC)
	nextMorning := time.Date(2024, 9, 3, 1, 0, 0, 0, time.UTC)
	events := []domain.ActivityEvent{
		ev(1, lateStart, domain.StateActive),
		ev(1, nextMorning, domain.StateInactive),
	}

	days := Reconstruct(events, nextMorning.Add(time.Hour))

	require.Len(t, days, 2)
	assert.Equal(t, "2024-09-02", domain.DateKey(days[0].Date))
	assert.Equal(t, int64(2*3600), days[0].Seconds[domain.StateActive],
		"whole leg lands on the day it started")
	assert.Equal(t, "2024-09-03", domain.DateKey(days[1].Date))
	assert.Equal(t, int64(3600), days[1].Seconds[domain.StateInactive])
}

func TestReconstruct_MultipleOperatorsIndependent(t *testing.T) {
	events := []domain.ActivityEvent{
		ev(1, at(8, 0), domain.StateActive),
		ev(2, at(8, 30), domain.StateBreak),
	}

	days := Reconstruct(events, at(9, 0))

	require.Len(t, days, 2)
	assert.Equal(t, int64(1), days[0].OperatorID)
	assert.Equal(t, int64(3600), days[0].Seconds[domain.StateActive])
	assert.Equal(t, int64(2), days[1].OperatorID)
	assert.Equal(t, int64(30*60), days[1].Seconds[domain.StateBreak])
}

func TestReconstruct_Empty(t *testing.T) {
	assert.Nil(t, Reconstruct(nil, at(12, 0)))
}
