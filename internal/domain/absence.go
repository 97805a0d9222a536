package domain

import (
	"fmt"
	"time"
)

// AbsencePeriod is a span of calendar days during which an operator carries a
// special administrative status. EndDate nil means the period is open-ended,
// which is always the case for dismissals.
//
// For a given operator the stored set of periods is pairwise non-overlapping;
// inserting a new period trims, splits, or deletes whatever it covers.
type AbsencePeriod struct {
	ID              string
	OperatorID      int64
	Status          AbsenceStatus
	StartDate       time.Time
	EndDate         *time.Time
	DismissalReason string
	Comment         string
	CreatedBy       string
	CreatedAt       time.Time
}

// OpenEnded reports whether the period has no end date.
func (p *AbsencePeriod) OpenEnded() bool {
	return p.EndDate == nil
}

// CoversDate reports whether day falls inside [StartDate, EndDate], with an
// open end covering everything from StartDate on.
func (p *AbsencePeriod) CoversDate(day time.Time) bool {
	if day.Before(p.StartDate) {
		return false
	}
	return p.EndDate == nil || !day.After(*p.EndDate)
}

// Validate checks the period against the status catalog rules. It is called
// before any conflict resolution or storage work happens.
func (p *AbsencePeriod) Validate() error {
	meta, ok := StatusCatalog[p.Status]
	if !ok {
		return fmt.Errorf("unrecognized absence status %q", p.Status)
	}
	if meta.Kind == KindDismissal {
		if p.EndDate != nil {
			return fmt.Errorf("dismissal periods are open-ended, end date must be empty")
		}
		if !ValidDismissalReason(p.DismissalReason) {
			return fmt.Errorf("unrecognized dismissal reason %q", p.DismissalReason)
		}
		if p.Comment == "" {
			return fmt.Errorf("dismissal requires a comment")
		}
		return nil
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s is before start date %s",
			DateKey(*p.EndDate), DateKey(p.StartDate))
	}
	return nil
}
