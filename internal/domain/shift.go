package domain

import "time"

// DateLayout is the canonical calendar-date format used across storage and CLI.
const DateLayout = "2006-01-02"

// ClockLayout is the canonical wall-clock format for shift boundaries.
const ClockLayout = "15:04"

// Break is a sub-interval of a shift during which the operator is off the line.
// Start and End are minutes since the owning shift's local midnight; End may
// exceed 1440 when the break sits past midnight of an overnight shift.
type Break struct {
	StartMin int
	EndMin   int
}

// Shift is a scheduled work interval for one operator on one calendar date.
// Start and End are wall-clock strings; an End at or before Start means the
// shift runs past midnight into the next day.
type Shift struct {
	ID         string
	OperatorID int64
	Date       time.Time
	Start      string
	End        string
	Breaks     []Break
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DayOff excludes an operator from scheduling on one date. A date either has
// shifts or a day off, never both.
type DayOff struct {
	OperatorID int64
	Date       time.Time
}

// DateKey formats t as a calendar-date string, dropping the time component.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar-date string in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
