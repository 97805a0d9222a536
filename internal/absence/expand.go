package absence

import (
	"time"

	"github.com/mkravec/rota/internal/domain"
)

// Expand materializes one period reference per calendar day inside
// [rangeStart, rangeEnd] on which some period is active. Keys use
// domain.DateLayout. Periods are assumed non-overlapping, so at most one
// covers any given day.
func Expand(periods []domain.AbsencePeriod, rangeStart, rangeEnd time.Time) map[string]domain.AbsencePeriod {
	out := make(map[string]domain.AbsencePeriod)
	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		for _, p := range periods {
			if p.CoversDate(day) {
				out[domain.DateKey(day)] = p
				break
			}
		}
	}
	return out
}
