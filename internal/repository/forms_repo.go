package repository

import (
	"context"

	"banyan-data/internal/domain"
)

// FormFilter narrows a listing to one facility and/or one submitter. Empty
// fields mean "no restriction". Listings are always newest-first.
type FormFilter struct {
	Facility  string
	CreatedBy string
}

type OutreachRepo interface {
	Insert(ctx context.Context, rec *domain.Outreach) error
	List(ctx context.Context, filter FormFilter) ([]domain.Outreach, error)
}

type ReintegrationRepo interface {
	Insert(ctx context.Context, rec *domain.Reintegration) error
	List(ctx context.Context, filter FormFilter) ([]domain.Reintegration, error)
}

type TransactionsRepo interface {
	Insert(ctx context.Context, rec *domain.Transaction) error
	List(ctx context.Context, filter FormFilter) ([]domain.Transaction, error)
}

type AwarenessRepo interface {
	Insert(ctx context.Context, rec *domain.AwarenessMeeting) error
	List(ctx context.Context, filter FormFilter) ([]domain.AwarenessMeeting, error)
}

type HospitalVisitsRepo interface {
	Insert(ctx context.Context, rec *domain.HospitalVisit) error
	List(ctx context.Context, filter FormFilter) ([]domain.HospitalVisit, error)
}

type MastersheetRepo interface {
	Insert(ctx context.Context, rec *domain.Mastersheet) error
	List(ctx context.Context, filter FormFilter) ([]domain.Mastersheet, error)
}

// Stores bundles every repository the services need.
type Stores struct {
	Users          UsersRepo
	Outreach       OutreachRepo
	Reintegration  ReintegrationRepo
	Transactions   TransactionsRepo
	Awareness      AwarenessRepo
	HospitalVisits HospitalVisitsRepo
	Mastersheet    MastersheetRepo
}
