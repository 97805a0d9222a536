package domain

import "time"

// ActivityEvent records one presence-state transition for an operator.
// Events are append-only and strictly ordered by At per operator.
type ActivityEvent struct {
	OperatorID int64
	At         time.Time
	State      ActivityState
}

// DaySummary holds reconstructed per-state durations for one operator-day.
type DaySummary struct {
	OperatorID int64
	Date       time.Time
	Seconds    map[ActivityState]int64
}

// WorkedSeconds is the total time in states that count as work.
func (s *DaySummary) WorkedSeconds() int64 {
	var total int64
	for _, st := range WorkedStates {
		total += s.Seconds[st]
	}
	return total
}
