package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkravec/rota/internal/absence"
	"github.com/mkravec/rota/internal/db"
	"github.com/mkravec/rota/internal/domain"
	"github.com/mkravec/rota/internal/metrics"
	"github.com/mkravec/rota/internal/repository"
)

type absenceService struct {
	periods repository.AbsenceRepo
	uow     db.UnitOfWork
}

func NewAbsenceService(periods repository.AbsenceRepo, uow db.UnitOfWork) AbsenceService {
	return &absenceService{periods: periods, uow: uow}
}

func (s *absenceService) Insert(ctx context.Context, req InsertAbsenceRequest) (*domain.AbsencePeriod, error) {
	period := &domain.AbsencePeriod{
		ID:              uuid.New().String(),
		OperatorID:      req.OperatorID,
		Status:          req.Status,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		DismissalReason: req.DismissalReason,
		Comment:         req.Comment,
		CreatedBy:       req.CreatedBy,
		CreatedAt:       time.Now().UTC(),
	}
	if req.Status == domain.StatusDismissal {
		period.EndDate = nil // dismissal is always open-ended
	} else if period.EndDate == nil {
		end := req.StartDate
		period.EndDate = &end
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	var cs absence.Changeset
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPeriods := repository.NewSQLiteAbsenceRepo(tx)

		existing, err := txPeriods.ListByOperator(ctx, req.OperatorID)
		if err != nil {
			return err
		}
		cs = absence.Resolve(existing, *period)

		for _, upd := range cs.Updates {
			if err := txPeriods.Update(ctx, &upd); err != nil {
				return err
			}
		}
		for _, ins := range cs.Inserts {
			ins.ID = uuid.New().String()
			ins.CreatedAt = time.Now().UTC()
			if err := txPeriods.Create(ctx, &ins); err != nil {
				return err
			}
		}
		for _, id := range cs.Deletes {
			if err := txPeriods.Delete(ctx, id); err != nil {
				return err
			}
		}
		return txPeriods.Create(ctx, period)
	})
	if err != nil {
		return nil, err
	}

	metrics.AbsenceInsertsTotal.WithLabelValues(string(period.Status)).Inc()
	// A split shows up as one update plus one insert; count it once.
	metrics.AbsenceConflictsTotal.WithLabelValues("split").Add(float64(len(cs.Inserts)))
	metrics.AbsenceConflictsTotal.WithLabelValues("trim").Add(float64(len(cs.Updates) - len(cs.Inserts)))
	metrics.AbsenceConflictsTotal.WithLabelValues("delete").Add(float64(len(cs.Deletes)))
	return period, nil
}

func (s *absenceService) Expand(ctx context.Context, operatorIDs []int64, from, to time.Time) (map[int64]map[string]domain.AbsencePeriod, error) {
	out := make(map[int64]map[string]domain.AbsencePeriod, len(operatorIDs))
	for _, op := range operatorIDs {
		periods, err := s.periods.ListByOperator(ctx, op)
		if err != nil {
			return nil, err
		}
		out[op] = absence.Expand(periods, from, to)
	}
	return out, nil
}

func (s *absenceService) ActiveOn(ctx context.Context, operatorID int64, day time.Time) (*domain.AbsencePeriod, error) {
	periods, err := s.periods.ListByOperator(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	for i := range periods {
		if periods[i].CoversDate(day) {
			return &periods[i], nil
		}
	}
	return nil, nil
}

func (s *absenceService) ListByOperator(ctx context.Context, operatorID int64) ([]domain.AbsencePeriod, error) {
	return s.periods.ListByOperator(ctx, operatorID)
}
