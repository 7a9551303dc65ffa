package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"banyan-data/internal/domain"
	"banyan-data/internal/repository"
)

// SheetPusher mirrors the full current data set into the shared spreadsheet.
type SheetPusher interface {
	PushAll(ctx context.Context) error
}

// FormService validates and stores form submissions and serves scoped reads.
type FormService struct {
	stores repository.Stores
	pusher SheetPusher
	logger *zap.Logger
}

// NewFormService creates the form service. A nil pusher disables the
// spreadsheet mirror.
func NewFormService(stores repository.Stores, pusher SheetPusher, logger *zap.Logger) *FormService {
	return &FormService{stores: stores, pusher: pusher, logger: logger}
}

// scope builds the read filter for a user. Non-admins are always pinned to
// their own facility regardless of what they asked for; admins may request a
// single facility or omit it to see everything.
func (s *FormService) scope(user *domain.User, requested string) repository.FormFilter {
	if !user.IsAdmin() {
		return repository.FormFilter{Facility: user.Facility}
	}
	return repository.FormFilter{Facility: requested}
}

// triggerSheetPush mirrors the data set in the background after a write.
// Push failures never reach the submitter; they are logged and dropped.
func (s *FormService) triggerSheetPush() {
	if s.pusher == nil {
		return
	}
	go func() {
		if err := s.pusher.PushAll(context.Background()); err != nil {
			s.logger.Error("Sheet push after submission failed", zap.Error(err))
		}
	}()
}

// Submissions store the facility exactly as submitted, even when it differs
// from the submitter's own; only reads are pinned.

func (s *FormService) SubmitOutreach(ctx context.Context, user *domain.User, rec *domain.Outreach) (*domain.Outreach, error) {
	if v := rec.Validate(); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}
	rec.CreatedBy = user.ID
	if err := s.stores.Outreach.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store outreach record: %w", err)
	}
	s.triggerSheetPush()
	return rec, nil
}

func (s *FormService) ListOutreach(ctx context.Context, user *domain.User, facility string) ([]domain.Outreach, error) {
	return s.stores.Outreach.List(ctx, s.scope(user, facility))
}

func (s *FormService) SubmitReintegration(ctx context.Context, user *domain.User, rec *domain.Reintegration) (*domain.Reintegration, error) {
	if v := rec.Validate(); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}
	rec.CreatedBy = user.ID
	if err := s.stores.Reintegration.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store reintegration record: %w", err)
	}
	s.triggerSheetPush()
	return rec, nil
}

func (s *FormService) ListReintegration(ctx context.Context, user *domain.User, facility string) ([]domain.Reintegration, error) {
	return s.stores.Reintegration.List(ctx, s.scope(user, facility))
}

func (s *FormService) SubmitTransaction(ctx context.Context, user *domain.User, rec *domain.Transaction) (*domain.Transaction, error) {
	if v := rec.Validate(); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}
	rec.CreatedBy = user.ID
	if err := s.stores.Transactions.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store transaction record: %w", err)
	}
	s.triggerSheetPush()
	return rec, nil
}

func (s *FormService) ListTransactions(ctx context.Context, user *domain.User, facility string) ([]domain.Transaction, error) {
	return s.stores.Transactions.List(ctx, s.scope(user, facility))
}

func (s *FormService) SubmitAwarenessMeeting(ctx context.Context, user *domain.User, rec *domain.AwarenessMeeting) (*domain.AwarenessMeeting, error) {
	if v := rec.Validate(); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}
	rec.CreatedBy = user.ID
	if err := s.stores.Awareness.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store awareness meeting record: %w", err)
	}
	s.triggerSheetPush()
	return rec, nil
}

func (s *FormService) ListAwarenessMeetings(ctx context.Context, user *domain.User, facility string) ([]domain.AwarenessMeeting, error) {
	return s.stores.Awareness.List(ctx, s.scope(user, facility))
}

func (s *FormService) SubmitHospitalVisit(ctx context.Context, user *domain.User, rec *domain.HospitalVisit) (*domain.HospitalVisit, error) {
	if v := rec.Validate(); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}
	rec.CreatedBy = user.ID
	if err := s.stores.HospitalVisits.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store hospital visit record: %w", err)
	}
	s.triggerSheetPush()
	return rec, nil
}

func (s *FormService) ListHospitalVisits(ctx context.Context, user *domain.User, facility string) ([]domain.HospitalVisit, error) {
	return s.stores.HospitalVisits.List(ctx, s.scope(user, facility))
}

func (s *FormService) SubmitMastersheet(ctx context.Context, user *domain.User, rec *domain.Mastersheet) (*domain.Mastersheet, error) {
	if v := rec.Validate(); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}
	rec.CreatedBy = user.ID
	if err := s.stores.Mastersheet.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store mastersheet record: %w", err)
	}
	s.triggerSheetPush()
	return rec, nil
}

func (s *FormService) ListMastersheet(ctx context.Context, user *domain.User, facility string) ([]domain.Mastersheet, error) {
	return s.stores.Mastersheet.List(ctx, s.scope(user, facility))
}
