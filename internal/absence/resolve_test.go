package absence

import (
	"testing"
	"time"

	"github.com/mkravec/rota/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func period(id string, status domain.AbsenceStatus, start string, end *time.Time) domain.AbsencePeriod {
	return domain.AbsencePeriod{
		ID:         id,
		OperatorID: 42,
		Status:     status,
		StartDate:  day(start),
		EndDate:    end,
	}
}

func TestResolve_NoConflicts(t *testing.T) {
	existing := []domain.AbsencePeriod{
		period("p1", domain.StatusSickLeave, "2024-01-01", dayPtr("2024-01-05")),
	}
	incoming := period("new", domain.StatusAnnualLeave, "2024-02-01", dayPtr("2024-02-10"))

	cs := Resolve(existing, incoming)
	assert.True(t, cs.Empty())
}

func TestResolve_SplitSurroundingPeriod(t *testing.T) {
	existing := []domain.AbsencePeriod{
		period("sick", domain.StatusSickLeave, "2024-01-01", dayPtr("2024-01-31")),
	}
	incoming := period("new", domain.StatusAnnualLeave, "2024-01-10", dayPtr("2024-01-15"))

	cs := Resolve(existing, incoming)

	require.Len(t, cs.Updates, 1)
	assert.Equal(t, "sick", cs.Updates[0].ID)
	assert.Equal(t, day("2024-01-01"), cs.Updates[0].StartDate)
	assert.Equal(t, day("2024-01-09"), *cs.Updates[0].EndDate)

	require.Len(t, cs.Inserts, 1)
	assert.Empty(t, cs.Inserts[0].ID, "split tail gets its ID from the caller")
	assert.Equal(t, domain.StatusSickLeave, cs.Inserts[0].Status)
	assert.Equal(t, day("2024-01-16"), cs.Inserts[0].StartDate)
	assert.Equal(t, day("2024-01-31"), *cs.Inserts[0].EndDate)

	assert.Empty(t, cs.Deletes)
}

func TestResolve_TrimLeftOverlap(t *testing.T) {
	existing := []domain.AbsencePeriod{
		period("p1", domain.StatusUnpaidLeave, "2024-03-01", dayPtr("2024-03-10")),
	}
	incoming := period("new", domain.StatusSickLeave, "2024-03-08", dayPtr("2024-03-20"))

	cs := Resolve(existing, incoming)

	require.Len(t, cs.Updates, 1)
	assert.Equal(t, day("2024-03-07"), *cs.Updates[0].EndDate)
	assert.Empty(t, cs.Inserts)
	assert.Empty(t, cs.Deletes)
}

func TestResolve_TrimRightOverlap(t *testing.T) {
	existing := []domain.AbsencePeriod{
		period("p1", domain.StatusUnpaidLeave, "2024-03-15", dayPtr("2024-03-25")),
	}
	incoming := period("new", domain.StatusSickLeave, "2024-03-10", dayPtr("2024-03-18"))

	cs := Resolve(existing, incoming)

	require.Len(t, cs.Updates, 1)
	assert.Equal(t, day("2024-03-19"), cs.Updates[0].StartDate)
	assert.Equal(t, day("2024-03-25"), *cs.Updates[0].EndDate)
}

func TestResolve_DeleteContained(t *testing.T) {
	existing := []domain.AbsencePeriod{
		period("inner", domain.StatusAnnualLeave, "2024-04-05", dayPtr("2024-04-08")),
	}
	incoming := period("new", domain.StatusSickLeave, "2024-04-01", dayPtr("2024-04-30"))

	cs := Resolve(existing, incoming)

	assert.Equal(t, []string{"inner"}, cs.Deletes)
	assert.Empty(t, cs.Updates)
	assert.Empty(t, cs.Inserts)
}

func TestResolve_DismissalTruncatesEverythingForward(t *testing.T) {
	existing := []domain.AbsencePeriod{
		period("before", domain.StatusAnnualLeave, "2024-01-01", dayPtr("2024-01-20")),
		period("spanning", domain.StatusSickLeave, "2024-01-25", dayPtr("2024-02-10")),
		period("after", domain.StatusUnpaidLeave, "2024-03-01", dayPtr("2024-03-05")),
	}
	// Dismissal from 2024-02-01, open-ended.
	incoming := period("fire", domain.StatusDismissal, "2024-02-01", nil)

	cs := Resolve(existing, incoming)

	// "spanning" is cut back to end before the dismissal starts.
	require.Len(t, cs.Updates, 1)
	assert.Equal(t, "spanning", cs.Updates[0].ID)
	assert.Equal(t, day("2024-01-31"), *cs.Updates[0].EndDate)

	// "after" lies wholly inside the open-ended dismissal.
	assert.Equal(t, []string{"after"}, cs.Deletes)
	assert.Empty(t, cs.Inserts)
}

func TestResolve_OpenEndedExistingTrimmedOnLeft(t *testing.T) {
	existing := []domain.AbsencePeriod{
		period("open", domain.StatusSickLeave, "2024-05-01", nil),
	}
	incoming := period("new", domain.StatusAnnualLeave, "2024-05-10", dayPtr("2024-05-15"))

	cs := Resolve(existing, incoming)

	// Open-ended period surrounds the new one: split into two fragments.
	require.Len(t, cs.Updates, 1)
	assert.Equal(t, day("2024-05-09"), *cs.Updates[0].EndDate)
	require.Len(t, cs.Inserts, 1)
	assert.Equal(t, day("2024-05-16"), cs.Inserts[0].StartDate)
	assert.Nil(t, cs.Inserts[0].EndDate, "tail stays open-ended")
}

func TestResolve_AdjacentPeriodsUntouched(t *testing.T) {
	existing := []domain.AbsencePeriod{
		period("before", domain.StatusSickLeave, "2024-06-01", dayPtr("2024-06-09")),
		period("after", domain.StatusSickLeave, "2024-06-16", dayPtr("2024-06-20")),
	}
	incoming := period("new", domain.StatusAnnualLeave, "2024-06-10", dayPtr("2024-06-15"))

	cs := Resolve(existing, incoming)
	assert.True(t, cs.Empty(), "date ranges that only touch are not conflicts")
}

func TestExpand_RoundTrip(t *testing.T) {
	p := period("p1", domain.StatusAnnualLeave, "2024-07-03", dayPtr("2024-07-07"))

	got := Expand([]domain.AbsencePeriod{p}, day("2024-07-03"), day("2024-07-07"))

	require.Len(t, got, 5, "one entry per covered day, no gaps")
	for d := day("2024-07-03"); !d.After(day("2024-07-07")); d = d.AddDate(0, 0, 1) {
		ref, ok := got[domain.DateKey(d)]
		require.True(t, ok, domain.DateKey(d))
		assert.Equal(t, "p1", ref.ID)
	}
}

func TestExpand_OpenEndedCoversWholeRange(t *testing.T) {
	p := period("fired", domain.StatusDismissal, "2024-02-01", nil)

	got := Expand([]domain.AbsencePeriod{p}, day("2024-01-30"), day("2024-02-03"))

	assert.Len(t, got, 3)
	_, hasJan := got["2024-01-30"]
	assert.False(t, hasJan)
}
