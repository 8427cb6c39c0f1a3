package store

import (
	"context"
	"slices"
	"sync"

	"quoridor/internal/match"
)

type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]*match.Match
	order   []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: map[string]*match.Match{},
	}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*match.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	mt, ok := m.matches[id]
	if !ok {
		return nil, match.ErrMatchNotFound
	}
	return mt, nil
}

func (m *MemoryStore) Save(ctx context.Context, mt *match.Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.matches[mt.ID]; !ok {
		m.order = append(m.order, mt.ID)
	}
	m.matches[mt.ID] = mt
	return nil
}

// List returns up to limit ids of player's matches, newest first. Matches
// created at the same instant come back in reverse save order.
func (m *MemoryStore) List(ctx context.Context, player string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	var found []*match.Match
	for i := len(m.order) - 1; i >= 0; i-- {
		if mt := m.matches[m.order[i]]; mt.Player == player {
			found = append(found, mt)
		}
	}
	m.mu.RUnlock()

	slices.SortStableFunc(found, func(a, b *match.Match) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	ids := make([]string, len(found))
	for i, mt := range found {
		ids[i] = mt.ID
	}
	return ids, nil
}

var _ match.Store = (*MemoryStore)(nil)
