package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkravec/rota/internal/domain"
)

// Shift options

type ShiftOption func(*domain.Shift)

func WithBreaks(breaks ...domain.Break) ShiftOption {
	return func(s *domain.Shift) {
		s.Breaks = breaks
	}
}

func WithShiftID(id string) ShiftOption {
	return func(s *domain.Shift) {
		s.ID = id
	}
}

// NewTestShift builds a shift for the given operator-day and clock bounds.
func NewTestShift(operatorID int64, date time.Time, start, end string, opts ...ShiftOption) *domain.Shift {
	s := &domain.Shift{
		ID:         uuid.New().String(),
		OperatorID: operatorID,
		Date:       date,
		Start:      start,
		End:        end,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Absence options

type AbsenceOption func(*domain.AbsencePeriod)

func WithEndDate(d time.Time) AbsenceOption {
	return func(p *domain.AbsencePeriod) {
		p.EndDate = &d
	}
}

func WithDismissal(reason, comment string) AbsenceOption {
	return func(p *domain.AbsencePeriod) {
		p.Status = domain.StatusDismissal
		p.EndDate = nil
		p.DismissalReason = reason
		p.Comment = comment
	}
}

func WithCreatedBy(who string) AbsenceOption {
	return func(p *domain.AbsencePeriod) {
		p.CreatedBy = who
	}
}

// NewTestAbsence builds a single-day absence period unless options extend it.
func NewTestAbsence(operatorID int64, status domain.AbsenceStatus, start time.Time, opts ...AbsenceOption) *domain.AbsencePeriod {
	end := start
	p := &domain.AbsencePeriod{
		ID:         uuid.New().String(),
		OperatorID: operatorID,
		Status:     status,
		StartDate:  start,
		EndDate:    &end,
		CreatedAt:  time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MustDate parses a DateLayout string, panicking on bad fixture input.
func MustDate(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
