package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkravec/rota/internal/domain"
	"github.com/mkravec/rota/internal/metrics"
	"github.com/mkravec/rota/internal/repository"
	"github.com/mkravec/rota/internal/timesheet"
)

type timesheetService struct {
	events repository.ActivityRepo
}

func NewTimesheetService(events repository.ActivityRepo) TimesheetService {
	return &timesheetService{events: events}
}

func (s *timesheetService) LogEvent(ctx context.Context, operatorID int64, at time.Time, state domain.ActivityState) error {
	if !domain.ValidActivityStates[string(state)] {
		return fmt.Errorf("unrecognized activity state %q", state)
	}

	last, err := s.events.LastEvent(ctx, operatorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if last != nil && !at.After(last.At) {
		return fmt.Errorf("event at %s does not advance the log (last event at %s)",
			at.Format(time.RFC3339), last.At.Format(time.RFC3339))
	}

	if err := s.events.Append(ctx, &domain.ActivityEvent{
		OperatorID: operatorID,
		At:         at,
		State:      state,
	}); err != nil {
		return err
	}
	metrics.ActivityEventsTotal.WithLabelValues(string(state)).Inc()
	return nil
}

func (s *timesheetService) Build(ctx context.Context, operatorID int64, from, to time.Time, cutoff time.Time) ([]domain.DaySummary, error) {
	// The range is inclusive in dates; events are stored with full
	// timestamps, so the upper bound is the midnight after `to`.
	events, err := s.events.ListRange(ctx, operatorID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	metrics.TimesheetBuildsTotal.Inc()
	return timesheet.Reconstruct(events, cutoff), nil
}
