package interval

import (
	"sort"

	"github.com/mkravec/rota/internal/domain"
)

// MergeShifts collapses the stored shifts of one operator-day into the
// minimal set of non-overlapping view shifts. Overlapping shifts are unioned
// and their breaks pooled; shifts that merely touch at an endpoint stay
// separate. The result is stable: merging an already-merged set returns the
// same set.
func MergeShifts(shifts []domain.Shift) ([]domain.Shift, error) {
	if len(shifts) == 0 {
		return nil, nil
	}

	type entry struct {
		iv    Interval
		shift domain.Shift
	}
	entries := make([]entry, 0, len(shifts))
	for _, s := range shifts {
		iv, err := FromClock(s.Start, s.End)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{iv: iv, shift: s})
	}

	// An interval sitting in the small hours belongs to the tail of an
	// overnight shift when the wrapped copy would land inside its spillover.
	// Wrapping can extend the spillover, so repeat until nothing moves.
	for changed := true; changed; {
		changed = false
		spill := 0
		for _, e := range entries {
			if e.iv.End > MinutesPerDay && e.iv.End-MinutesPerDay > spill {
				spill = e.iv.End - MinutesPerDay
			}
		}
		for i, e := range entries {
			if e.iv.End <= MinutesPerDay && e.iv.Start < spill {
				entries[i].iv.Start += MinutesPerDay
				entries[i].iv.End += MinutesPerDay
				changed = true
			}
		}
	}
	// Stable keeps the original order for equal starts, which only affects
	// which shift lends its identity to a merged view.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].iv.Start < entries[j].iv.Start
	})

	var merged []domain.Shift
	cur := entries[0].shift
	curIv := entries[0].iv
	breaks := append([]domain.Break(nil), entries[0].shift.Breaks...)

	flush := func() {
		cur.Start = FormatMinutes(curIv.Start)
		cur.End = FormatMinutes(curIv.End)
		cur.Breaks = dedupBreaks(breaks)
		merged = append(merged, cur)
	}

	for _, e := range entries[1:] {
		if e.iv.Start < curIv.End {
			if e.iv.End > curIv.End {
				curIv.End = e.iv.End
			}
			breaks = append(breaks, e.shift.Breaks...)
			continue
		}
		flush()
		cur = e.shift
		curIv = e.iv
		breaks = append([]domain.Break(nil), e.shift.Breaks...)
	}
	flush()

	return merged, nil
}

// dedupBreaks drops exact duplicates and orders breaks by start minute.
func dedupBreaks(breaks []domain.Break) []domain.Break {
	if len(breaks) == 0 {
		return nil
	}
	seen := make(map[domain.Break]bool, len(breaks))
	out := make([]domain.Break, 0, len(breaks))
	for _, b := range breaks {
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartMin != out[j].StartMin {
			return out[i].StartMin < out[j].StartMin
		}
		return out[i].EndMin < out[j].EndMin
	})
	return out
}
