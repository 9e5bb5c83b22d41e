package destination

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]int
	items []Destination
}

// NewInMemoryRepository keeps destinations in the order given.
// A later entry with a repeated id replaces the earlier one.
func NewInMemoryRepository(destinations ...Destination) *InMemoryRepository {
	r := &InMemoryRepository{
		byID: make(map[string]int),
	}
	r.Replace(destinations)
	return r
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	d := r.items[idx]
	return &d, nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Destination, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Replace swaps the whole dataset, used when a catalog file is reloaded.
func (r *InMemoryRepository) Replace(destinations []Destination) {
	byID := make(map[string]int, len(destinations))
	items := make([]Destination, 0, len(destinations))

	for _, d := range destinations {
		if idx, ok := byID[d.ID]; ok {
			items[idx] = d
			continue
		}
		byID[d.ID] = len(items)
		items = append(items, d)
	}

	r.mu.Lock()
	r.byID = byID
	r.items = items
	r.mu.Unlock()
}
