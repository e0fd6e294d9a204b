package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
)

type WrestlerRepository struct {
	mu     sync.RWMutex
	items  map[int64]wrestler.Wrestler
	nextID int64
}

func NewWrestlerRepository(wrestlers []wrestler.Wrestler) *WrestlerRepository {
	items := make(map[int64]wrestler.Wrestler, len(wrestlers))
	var maxID int64
	for _, w := range wrestlers {
		items[w.ID] = w
		if w.ID > maxID {
			maxID = w.ID
		}
	}

	return &WrestlerRepository{
		items:  items,
		nextID: maxID + 1,
	}
}

func (r *WrestlerRepository) List(_ context.Context) ([]wrestler.Wrestler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]wrestler.Wrestler, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *WrestlerRepository) GetByID(_ context.Context, wrestlerID int64) (wrestler.Wrestler, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[wrestlerID]
	if !ok {
		return wrestler.Wrestler{}, false, nil
	}

	return item, true, nil
}

func (r *WrestlerRepository) GetByIDs(_ context.Context, wrestlerIDs []int64) ([]wrestler.Wrestler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]wrestler.Wrestler, 0, len(wrestlerIDs))
	for _, id := range wrestlerIDs {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *WrestlerRepository) Create(_ context.Context, item wrestler.Wrestler) (wrestler.Wrestler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item

	return item, nil
}

func (r *WrestlerRepository) Update(_ context.Context, item wrestler.Wrestler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return nil
	}
	r.items[item.ID] = item

	return nil
}
