package repository

import (
	"context"
	"time"

	"github.com/mkravec/rota/internal/domain"
)

type ShiftRepo interface {
	Create(ctx context.Context, s *domain.Shift) error
	GetByKey(ctx context.Context, operatorID int64, date time.Time, start, end string) (*domain.Shift, error)
	ListByOperatorDate(ctx context.Context, operatorID int64, date time.Time) ([]*domain.Shift, error)
	ListRange(ctx context.Context, operatorID int64, from, to time.Time) ([]*domain.Shift, error)
	TouchUpdated(ctx context.Context, id string) error
	ReplaceBreaks(ctx context.Context, shiftID string, breaks []domain.Break) error
	Delete(ctx context.Context, id string) error
	DeleteByKey(ctx context.Context, operatorID int64, date time.Time, start, end string) (bool, error)
	DeleteAllForDate(ctx context.Context, operatorID int64, date time.Time) (int, error)
}

type DayOffRepo interface {
	Exists(ctx context.Context, operatorID int64, date time.Time) (bool, error)
	Set(ctx context.Context, operatorID int64, date time.Time) error
	Clear(ctx context.Context, operatorID int64, date time.Time) (bool, error)
	ListRange(ctx context.Context, operatorID int64, from, to time.Time) ([]domain.DayOff, error)
}

type AbsenceRepo interface {
	Create(ctx context.Context, p *domain.AbsencePeriod) error
	GetByID(ctx context.Context, id string) (*domain.AbsencePeriod, error)
	ListByOperator(ctx context.Context, operatorID int64) ([]domain.AbsencePeriod, error)
	Update(ctx context.Context, p *domain.AbsencePeriod) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Append(ctx context.Context, e *domain.ActivityEvent) error
	ListRange(ctx context.Context, operatorID int64, from, to time.Time) ([]domain.ActivityEvent, error)
	LastEvent(ctx context.Context, operatorID int64) (*domain.ActivityEvent, error)
}
