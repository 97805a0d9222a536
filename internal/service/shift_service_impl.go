package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkravec/rota/internal/db"
	"github.com/mkravec/rota/internal/domain"
	"github.com/mkravec/rota/internal/interval"
	"github.com/mkravec/rota/internal/metrics"
	"github.com/mkravec/rota/internal/repository"
)

type shiftService struct {
	shifts  repository.ShiftRepo
	daysOff repository.DayOffRepo
	uow     db.UnitOfWork
}

func NewShiftService(shifts repository.ShiftRepo, daysOff repository.DayOffRepo, uow db.UnitOfWork) ShiftService {
	return &shiftService{shifts: shifts, daysOff: daysOff, uow: uow}
}

func (s *shiftService) Write(ctx context.Context, req WriteShiftRequest) (string, error) {
	newIv, err := interval.FromClock(req.Start, req.End)
	if err != nil {
		return "", err
	}
	breaks, err := normalizeBreaks(req.Breaks)
	if err != nil {
		return "", err
	}

	var shiftID string
	var removed int
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txShifts := repository.NewSQLiteShiftRepo(tx)
		txDaysOff := repository.NewSQLiteDayOffRepo(tx)

		// A move/resize removes the record at its old coordinates first.
		if req.PrevStart != "" && req.PrevEnd != "" &&
			(req.PrevStart != req.Start || req.PrevEnd != req.End) {
			if _, err := txShifts.DeleteByKey(ctx, req.OperatorID, req.Date, req.PrevStart, req.PrevEnd); err != nil {
				return err
			}
		}

		stored, err := txShifts.ListByOperatorDate(ctx, req.OperatorID, req.Date)
		if err != nil {
			return err
		}
		var existingID string
		removed = 0
		for _, old := range stored {
			if old.Start == req.Start && old.End == req.End {
				existingID = old.ID // the record being updated, never removed
				continue
			}
			oldIv, err := interval.FromClock(old.Start, old.End)
			if err != nil {
				return err
			}
			if interval.OverlapsWrapped(oldIv, newIv) {
				if err := txShifts.Delete(ctx, old.ID); err != nil {
					return err
				}
				removed++
			}
		}

		if existingID != "" {
			shiftID = existingID
			if err := txShifts.TouchUpdated(ctx, shiftID); err != nil {
				return err
			}
		} else {
			shiftID = uuid.New().String()
			shift := &domain.Shift{
				ID:         shiftID,
				OperatorID: req.OperatorID,
				Date:       req.Date,
				Start:      req.Start,
				End:        req.End,
			}
			if err := txShifts.Create(ctx, shift); err != nil {
				return err
			}
		}

		if err := txShifts.ReplaceBreaks(ctx, shiftID, breaks); err != nil {
			return err
		}

		// A written shift always means the operator works that day.
		if _, err := txDaysOff.Clear(ctx, req.OperatorID, req.Date); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	metrics.ShiftOverlapsRemoved.Add(float64(removed))
	metrics.ShiftWritesTotal.Inc()
	return shiftID, nil
}

func (s *shiftService) Delete(ctx context.Context, operatorID int64, date time.Time, start, end string) (bool, error) {
	if _, err := interval.FromClock(start, end); err != nil {
		return false, err
	}
	var removed bool
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txShifts := repository.NewSQLiteShiftRepo(tx)
		var err error
		removed, err = txShifts.DeleteByKey(ctx, operatorID, date, start, end)
		return err
	})
	return removed, err
}

func (s *shiftService) ToggleDayOff(ctx context.Context, operatorID int64, date time.Time) (bool, error) {
	var nowOff bool
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txShifts := repository.NewSQLiteShiftRepo(tx)
		txDaysOff := repository.NewSQLiteDayOffRepo(tx)

		cleared, err := txDaysOff.Clear(ctx, operatorID, date)
		if err != nil {
			return err
		}
		if cleared {
			nowOff = false
			return nil
		}
		if err := txDaysOff.Set(ctx, operatorID, date); err != nil {
			return err
		}
		if _, err := txShifts.DeleteAllForDate(ctx, operatorID, date); err != nil {
			return err
		}
		nowOff = true
		return nil
	})
	if err != nil {
		return false, err
	}

	state := "off"
	if !nowOff {
		state = "on"
	}
	metrics.DayOffTogglesTotal.WithLabelValues(state).Inc()
	return nowOff, nil
}

func (s *shiftService) MergedForDate(ctx context.Context, operatorID int64, date time.Time) ([]domain.Shift, error) {
	stored, err := s.shifts.ListByOperatorDate(ctx, operatorID, date)
	if err != nil {
		return nil, err
	}
	raw := make([]domain.Shift, 0, len(stored))
	for _, sh := range stored {
		raw = append(raw, *sh)
	}
	return interval.MergeShifts(raw)
}

func (s *shiftService) ListRange(ctx context.Context, operatorID int64, from, to time.Time) ([]*domain.Shift, []domain.DayOff, error) {
	shifts, err := s.shifts.ListRange(ctx, operatorID, from, to)
	if err != nil {
		return nil, nil, err
	}
	daysOff, err := s.daysOff.ListRange(ctx, operatorID, from, to)
	if err != nil {
		return nil, nil, err
	}
	return shifts, daysOff, nil
}

// normalizeBreaks parses break boundaries from clock or minute form and
// rejects empty or inverted ranges before anything touches storage.
func normalizeBreaks(inputs []BreakInput) ([]domain.Break, error) {
	breaks := make([]domain.Break, 0, len(inputs))
	for _, in := range inputs {
		start, err := interval.ParseClockOrMinutes(in.Start)
		if err != nil {
			return nil, fmt.Errorf("break start: %w", err)
		}
		end, err := interval.ParseClockOrMinutes(in.End)
		if err != nil {
			return nil, fmt.Errorf("break end: %w", err)
		}
		if end <= start {
			return nil, fmt.Errorf("break %s-%s is empty or inverted", in.Start, in.End)
		}
		breaks = append(breaks, domain.Break{StartMin: start, EndMin: end})
	}
	return breaks, nil
}
