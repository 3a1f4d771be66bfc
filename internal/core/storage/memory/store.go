// Package memory is an in-process PurchaseStore for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage"
)

type key struct {
	userID string
	id     string
}

// Store keeps purchases in a map guarded by a RWMutex. It hands out copies only.
type Store struct {
	mu        sync.RWMutex
	purchases map[key]*v1.Purchase
	now       func() time.Time
}

var _ storage.PurchaseStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		purchases: make(map[key]*v1.Purchase),
		now:       time.Now,
	}
}

func (s *Store) SavePurchase(_ context.Context, p *v1.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{userID: p.UserID, id: p.ID}
	if _, exists := s.purchases[k]; exists {
		return storage.ErrDuplicate
	}
	s.insertLocked(k, p)
	return nil
}

// SavePurchases checks the whole batch for duplicates before inserting any of it.
func (s *Store) SavePurchases(_ context.Context, ps []*v1.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[key]struct{}, len(ps))
	for _, p := range ps {
		k := key{userID: p.UserID, id: p.ID}
		if _, exists := s.purchases[k]; exists {
			return storage.ErrDuplicate
		}
		if _, dup := seen[k]; dup {
			return storage.ErrDuplicate
		}
		seen[k] = struct{}{}
	}

	for _, p := range ps {
		s.insertLocked(key{userID: p.UserID, id: p.ID}, p)
	}
	return nil
}

func (s *Store) insertLocked(k key, p *v1.Purchase) {
	now := s.now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	s.purchases[k] = clone(p)
}

func (s *Store) GetPurchase(_ context.Context, userID, id string) (*v1.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.purchases[key{userID: userID, id: id}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return clone(p), nil
}

// ListPurchases mirrors the postgres ordering: created_at DESC, id ASC.
func (s *Store) ListPurchases(_ context.Context, userID string) ([]*v1.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*v1.Purchase, 0)
	for k, p := range s.purchases {
		if k.userID == userID {
			out = append(out, clone(p))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) UpdatePurchase(_ context.Context, p *v1.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{userID: p.UserID, id: p.ID}
	existing, ok := s.purchases[k]
	if !ok {
		return storage.ErrNotFound
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now().UTC()
	s.purchases[k] = clone(p)
	return nil
}

func (s *Store) DeletePurchase(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{userID: userID, id: id}
	if _, ok := s.purchases[k]; !ok {
		return storage.ErrNotFound
	}
	delete(s.purchases, k)
	return nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func clone(p *v1.Purchase) *v1.Purchase {
	c := *p
	if p.Brand != nil {
		b := *p.Brand
		c.Brand = &b
	}
	return &c
}
