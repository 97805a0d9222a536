// Package absence keeps an operator's special-status periods non-overlapping.
// The interval algebra lives in pure functions so storage side effects stay
// out of the way of testing.
package absence

import (
	"sort"
	"time"

	"github.com/mkravec/rota/internal/domain"
)

// Changeset is the storage work required to make room for a new period.
// Inserted clones produced by a split carry an empty ID; the caller assigns
// identifiers before persisting.
type Changeset struct {
	Updates []domain.AbsencePeriod
	Inserts []domain.AbsencePeriod
	Deletes []string
}

// Empty reports whether resolving found no conflicts at all.
func (c Changeset) Empty() bool {
	return len(c.Updates) == 0 && len(c.Inserts) == 0 && len(c.Deletes) == 0
}

// Resolve computes the trim/split/delete work needed before incoming can be
// inserted for its operator. Existing periods are processed in ascending
// start order; fragments created by a split are never re-examined against the
// same insert. The incoming period always wins over the days it covers.
func Resolve(existing []domain.AbsencePeriod, incoming domain.AbsencePeriod) Changeset {
	periods := append([]domain.AbsencePeriod(nil), existing...)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].StartDate.Before(periods[j].StartDate)
	})

	var cs Changeset
	for _, p := range periods {
		if !rangesOverlap(p, incoming) {
			continue
		}
		left := p.StartDate.Before(incoming.StartDate)
		right := endsAfter(p.EndDate, incoming.EndDate)

		switch {
		case left && right:
			// Old period surrounds the new one: keep both flanks.
			tail := p
			tail.ID = ""
			tail.StartDate = dayAfter(*incoming.EndDate)
			cs.Inserts = append(cs.Inserts, tail)

			head := p
			head.EndDate = ptr(dayBefore(incoming.StartDate))
			cs.Updates = append(cs.Updates, head)
		case left:
			p.EndDate = ptr(dayBefore(incoming.StartDate))
			cs.Updates = append(cs.Updates, p)
		case right:
			p.StartDate = dayAfter(*incoming.EndDate)
			cs.Updates = append(cs.Updates, p)
		default:
			cs.Deletes = append(cs.Deletes, p.ID)
		}
	}
	return cs
}

// rangesOverlap tests two inclusive date ranges, treating a nil end as
// extending forever.
func rangesOverlap(a, b domain.AbsencePeriod) bool {
	if b.EndDate != nil && a.StartDate.After(*b.EndDate) {
		return false
	}
	if a.EndDate != nil && b.StartDate.After(*a.EndDate) {
		return false
	}
	return true
}

// endsAfter reports whether a period ending at pEnd runs past one ending at
// nEnd, with nil meaning open-ended.
func endsAfter(pEnd, nEnd *time.Time) bool {
	if nEnd == nil {
		return false
	}
	if pEnd == nil {
		return true
	}
	return pEnd.After(*nEnd)
}

func dayBefore(t time.Time) time.Time { return t.AddDate(0, 0, -1) }
func dayAfter(t time.Time) time.Time  { return t.AddDate(0, 0, 1) }

func ptr(t time.Time) *time.Time { return &t }
