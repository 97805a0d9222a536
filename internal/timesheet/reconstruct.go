// Package timesheet rebuilds per-day, per-state durations from the raw
// presence-event log. The log is append-only, so the whole computation is a
// replayable forward scan with no stored counters.
package timesheet

import (
	"sort"
	"time"

	"github.com/mkravec/rota/internal/domain"
)

// Reconstruct turns a chronological event sequence into one DaySummary per
// operator-day. Each event opens an interval that the next event (or the
// cutoff, for the last one) closes. Consecutive events carrying the same
// state are duplicates: the open interval simply runs through them, so they
// add no extra duration. A leg that crosses midnight is credited entirely to
// the day its start event falls on.
func Reconstruct(events []domain.ActivityEvent, cutoff time.Time) []domain.DaySummary {
	if len(events) == 0 {
		return nil
	}

	ordered := append([]domain.ActivityEvent(nil), events...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].OperatorID != ordered[j].OperatorID {
			return ordered[i].OperatorID < ordered[j].OperatorID
		}
		return ordered[i].At.Before(ordered[j].At)
	})

	type dayKey struct {
		operator int64
		date     string
	}
	acc := make(map[dayKey]*domain.DaySummary)

	add := func(ev domain.ActivityEvent, seconds int64) {
		if seconds <= 0 {
			return
		}
		key := dayKey{operator: ev.OperatorID, date: domain.DateKey(ev.At)}
		sum, ok := acc[key]
		if !ok {
			date, _ := domain.ParseDate(key.date)
			sum = &domain.DaySummary{
				OperatorID: ev.OperatorID,
				Date:       date,
				Seconds:    make(map[domain.ActivityState]int64),
			}
			acc[key] = sum
		}
		sum.Seconds[ev.State] += seconds
	}

	// The interval currently open for each operator starts at the first
	// event of a run of identical states.
	var open *domain.ActivityEvent
	closeAt := func(end time.Time) {
		if open != nil {
			add(*open, int64(end.Sub(open.At).Seconds()))
		}
	}
	for i := range ordered {
		ev := ordered[i]
		if open != nil && open.OperatorID == ev.OperatorID {
			if open.State == ev.State {
				continue // duplicate: the open interval runs through it
			}
			closeAt(ev.At)
		} else {
			closeAt(cutoff)
		}
		open = &ordered[i]
	}
	closeAt(cutoff)

	out := make([]domain.DaySummary, 0, len(acc))
	for _, s := range acc {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OperatorID != out[j].OperatorID {
			return out[i].OperatorID < out[j].OperatorID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
