package service

import (
	"context"
	"time"

	"github.com/mkravec/rota/internal/domain"
)

// BreakInput is a break boundary pair as received from callers: either
// "HH:MM" clock strings or raw minutes-since-midnight integers as strings.
type BreakInput struct {
	Start string
	End   string
}

// WriteShiftRequest carries one incoming shift write. PrevStart/PrevEnd are
// set when the caller is moving or resizing an existing shift; the old record
// is removed before conflict handling.
type WriteShiftRequest struct {
	OperatorID int64
	Date       time.Time
	Start      string
	End        string
	Breaks     []BreakInput
	PrevStart  string
	PrevEnd    string
}

type ShiftService interface {
	// Write applies one shift against the stored set for the operator-day:
	// overlapping shifts are removed, the record is upserted under its
	// (operator, date, start, end) key, breaks replaced, and any day-off
	// marker cleared. Returns the persisted shift id.
	Write(ctx context.Context, req WriteShiftRequest) (string, error)
	// Delete removes the shift stored under the exact key, reporting
	// whether anything existed.
	Delete(ctx context.Context, operatorID int64, date time.Time, start, end string) (bool, error)
	// ToggleDayOff flips the day-off marker. Turning it on deletes every
	// shift of that day. Returns the resulting state (true = now off).
	ToggleDayOff(ctx context.Context, operatorID int64, date time.Time) (bool, error)
	// MergedForDate returns the merged read-side view of a day's shifts.
	MergedForDate(ctx context.Context, operatorID int64, date time.Time) ([]domain.Shift, error)
	// ListRange returns raw shifts and day-off markers over [from, to].
	ListRange(ctx context.Context, operatorID int64, from, to time.Time) ([]*domain.Shift, []domain.DayOff, error)
}

// InsertAbsenceRequest carries one incoming absence period.
type InsertAbsenceRequest struct {
	OperatorID      int64
	Status          domain.AbsenceStatus
	StartDate       time.Time
	EndDate         *time.Time
	DismissalReason string
	Comment         string
	CreatedBy       string
}

type AbsenceService interface {
	// Insert validates the period, trims/splits/deletes whatever it
	// overlaps, and stores it. Returns the stored period.
	Insert(ctx context.Context, req InsertAbsenceRequest) (*domain.AbsencePeriod, error)
	// Expand materializes per-day period references for each operator over
	// [from, to], keyed by operator id then date string.
	Expand(ctx context.Context, operatorIDs []int64, from, to time.Time) (map[int64]map[string]domain.AbsencePeriod, error)
	// ActiveOn returns the period covering the given day, or nil.
	ActiveOn(ctx context.Context, operatorID int64, day time.Time) (*domain.AbsencePeriod, error)
	ListByOperator(ctx context.Context, operatorID int64) ([]domain.AbsencePeriod, error)
}

type TimesheetService interface {
	// LogEvent appends one presence-state transition. Events must move
	// strictly forward in time per operator.
	LogEvent(ctx context.Context, operatorID int64, at time.Time, state domain.ActivityState) error
	// Build reconstructs per-day durations for the operator across
	// [from, to], closing the final open interval at cutoff.
	Build(ctx context.Context, operatorID int64, from, to time.Time, cutoff time.Time) ([]domain.DaySummary, error)
}
