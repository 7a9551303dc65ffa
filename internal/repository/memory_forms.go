package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"banyan-data/internal/domain"

	"github.com/google/uuid"
)

// formRecord constrains the generic memory store to pointer types exposing
// the shared form metadata.
type formRecord[T any] interface {
	*T
	Meta() *domain.FormMeta
}

// MemoryFormRepo is the in-memory counterpart of the Postgres form stores,
// one instance per form type. Used by the unit tests and the DB-less mode.
type MemoryFormRepo[T any, PT formRecord[T]] struct {
	mu    sync.RWMutex
	items []T
}

func NewMemoryFormRepo[T any, PT formRecord[T]]() *MemoryFormRepo[T, PT] {
	return &MemoryFormRepo[T, PT]{}
}

func (r *MemoryFormRepo[T, PT]) Insert(_ context.Context, rec PT) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := rec.Meta()
	m.ID = uuid.NewString()
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	r.items = append(r.items, *rec)
	return nil
}

func (r *MemoryFormRepo[T, PT]) List(_ context.Context, filter FormFilter) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.items))
	for i := range r.items {
		item := r.items[i]
		m := PT(&item).Meta()
		if filter.Facility != "" && m.Facility != filter.Facility {
			continue
		}
		if filter.CreatedBy != "" && m.CreatedBy != filter.CreatedBy {
			continue
		}
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return PT(&out[i]).Meta().CreatedAt.After(PT(&out[j]).Meta().CreatedAt)
	})
	return out, nil
}

// NewMemoryStores builds a full in-memory store set.
func NewMemoryStores() Stores {
	return Stores{
		Users:          NewMemoryUsersRepo(),
		Outreach:       NewMemoryFormRepo[domain.Outreach](),
		Reintegration:  NewMemoryFormRepo[domain.Reintegration](),
		Transactions:   NewMemoryFormRepo[domain.Transaction](),
		Awareness:      NewMemoryFormRepo[domain.AwarenessMeeting](),
		HospitalVisits: NewMemoryFormRepo[domain.HospitalVisit](),
		Mastersheet:    NewMemoryFormRepo[domain.Mastersheet](),
	}
}
