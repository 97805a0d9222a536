package service

import (
	"context"
	"testing"
	"time"

	"github.com/mkravec/rota/internal/domain"
	"github.com/mkravec/rota/internal/repository"
	"github.com/mkravec/rota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAbsenceFixture(t *testing.T) (AbsenceService, repository.AbsenceRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	periods := repository.NewSQLiteAbsenceRepo(database)
	svc := NewAbsenceService(periods, testutil.NewTestUoW(database))
	return svc, periods
}

func datePtr(s string) *time.Time {
	d := testutil.MustDate(s)
	return &d
}

func TestInsert_SplitsSurroundingPeriod(t *testing.T) {
	svc, periods := newAbsenceFixture(t)
	ctx := context.Background()

	_, err := svc.Insert(ctx, InsertAbsenceRequest{
		OperatorID: 5, Status: domain.StatusSickLeave,
		StartDate: testutil.MustDate("2024-01-01"), EndDate: datePtr("2024-01-31"),
	})
	require.NoError(t, err)

	_, err = svc.Insert(ctx, InsertAbsenceRequest{
		OperatorID: 5, Status: domain.StatusAnnualLeave,
		StartDate: testutil.MustDate("2024-01-10"), EndDate: datePtr("2024-01-15"),
	})
	require.NoError(t, err)

	stored, err := periods.ListByOperator(ctx, 5)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	assert.Equal(t, domain.StatusSickLeave, stored[0].Status)
	assert.Equal(t, "2024-01-01", domain.DateKey(stored[0].StartDate))
	assert.Equal(t, "2024-01-09", domain.DateKey(*stored[0].EndDate))

	assert.Equal(t, domain.StatusAnnualLeave, stored[1].Status)
	assert.Equal(t, "2024-01-10", domain.DateKey(stored[1].StartDate))
	assert.Equal(t, "2024-01-15", domain.DateKey(*stored[1].EndDate))

	assert.Equal(t, domain.StatusSickLeave, stored[2].Status)
	assert.Equal(t, "2024-01-16", domain.DateKey(stored[2].StartDate))
	assert.Equal(t, "2024-01-31", domain.DateKey(*stored[2].EndDate))
}

func TestInsert_DismissalLeavesNothingAfterItsStart(t *testing.T) {
	svc, periods := newAbsenceFixture(t)
	ctx := context.Background()

	_, err := svc.Insert(ctx, InsertAbsenceRequest{
		OperatorID: 5, Status: domain.StatusAnnualLeave,
		StartDate: testutil.MustDate("2024-01-25"), EndDate: datePtr("2024-02-10"),
	})
	require.NoError(t, err)
	_, err = svc.Insert(ctx, InsertAbsenceRequest{
		OperatorID: 5, Status: domain.StatusSickLeave,
		StartDate: testutil.MustDate("2024-03-01"), EndDate: datePtr("2024-03-10"),
	})
	require.NoError(t, err)

	_, err = svc.Insert(ctx, InsertAbsenceRequest{
		OperatorID: 5, Status: domain.StatusDismissal,
		StartDate:       testutil.MustDate("2024-02-01"),
		DismissalReason: "voluntary", Comment: "left for another job",
	})
	require.NoError(t, err)

	stored, err := periods.ListByOperator(ctx, 5)
	require.NoError(t, err)

	cutoff := testutil.MustDate("2024-01-31")
	for _, p := range stored {
		if p.Status == domain.StatusDismissal {
			assert.Nil(t, p.EndDate, "dismissal stays open-ended")
			continue
		}
		require.NotNil(t, p.EndDate)
		assert.False(t, p.EndDate.After(cutoff),
			"no closed period may end after %s, got %s", domain.DateKey(cutoff), domain.DateKey(*p.EndDate))
	}
}

func TestInsert_DefaultsEndDateToStart(t *testing.T) {
	svc, _ := newAbsenceFixture(t)
	p, err := svc.Insert(context.Background(), InsertAbsenceRequest{
		OperatorID: 5, Status: domain.StatusUnpaidLeave,
		StartDate: testutil.MustDate("2024-04-01"),
	})
	require.NoError(t, err)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, "2024-04-01", domain.DateKey(*p.EndDate))
}

func TestInsert_ValidationRejectsBeforeMutation(t *testing.T) {
	svc, periods := newAbsenceFixture(t)
	ctx := context.Background()

	cases := []InsertAbsenceRequest{
		{OperatorID: 5, Status: "sabbatical", StartDate: testutil.MustDate("2024-04-01")},
		{OperatorID: 5, Status: domain.StatusSickLeave,
			StartDate: testutil.MustDate("2024-04-10"), EndDate: datePtr("2024-04-01")},
		{OperatorID: 5, Status: domain.StatusDismissal,
			StartDate: testutil.MustDate("2024-04-01"), DismissalReason: "voluntary"},
		{OperatorID: 5, Status: domain.StatusDismissal,
			StartDate: testutil.MustDate("2024-04-01"), DismissalReason: "bad-reason", Comment: "x"},
	}
	for _, req := range cases {
		_, err := svc.Insert(ctx, req)
		assert.Error(t, err)
	}

	stored, err := periods.ListByOperator(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestExpand_RoundTrip(t *testing.T) {
	svc, _ := newAbsenceFixture(t)
	ctx := context.Background()

	inserted, err := svc.Insert(ctx, InsertAbsenceRequest{
		OperatorID: 9, Status: domain.StatusAnnualLeave,
		StartDate: testutil.MustDate("2024-07-03"), EndDate: datePtr("2024-07-07"),
	})
	require.NoError(t, err)

	expanded, err := svc.Expand(ctx, []int64{9}, testutil.MustDate("2024-07-03"), testutil.MustDate("2024-07-07"))
	require.NoError(t, err)

	days := expanded[9]
	require.Len(t, days, 5, "every day of the period resolves, no gaps")
	for key, ref := range days {
		assert.Equal(t, inserted.ID, ref.ID, key)
	}
}

func TestActiveOn(t *testing.T) {
	svc, _ := newAbsenceFixture(t)
	ctx := context.Background()

	_, err := svc.Insert(ctx, InsertAbsenceRequest{
		OperatorID: 9, Status: domain.StatusSickLeave,
		StartDate: testutil.MustDate("2024-08-01"), EndDate: datePtr("2024-08-05"),
	})
	require.NoError(t, err)

	p, err := svc.ActiveOn(ctx, 9, testutil.MustDate("2024-08-03"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, domain.StatusSickLeave, p.Status)

	p, err = svc.ActiveOn(ctx, 9, testutil.MustDate("2024-08-06"))
	require.NoError(t, err)
	assert.Nil(t, p)
}
