package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ringbookhq/ringbook/internal/domain/show"
)

type ShowRepository struct {
	mu     sync.RWMutex
	items  map[int64]show.Show
	orders []int64
	nextID int64
}

func NewShowRepository(shows []show.Show) *ShowRepository {
	items := make(map[int64]show.Show, len(shows))
	orders := make([]int64, 0, len(shows))
	var maxID int64
	for _, s := range shows {
		items[s.ID] = s
		orders = append(orders, s.ID)
		if s.ID > maxID {
			maxID = s.ID
		}
	}

	return &ShowRepository{
		items:  items,
		orders: orders,
		nextID: maxID + 1,
	}
}

func (r *ShowRepository) List(_ context.Context) ([]show.Show, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]show.Show, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *ShowRepository) GetByID(_ context.Context, showID int64) (show.Show, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[showID]
	if !ok {
		return show.Show{}, false, nil
	}

	return item, true, nil
}

func (r *ShowRepository) GetByIDs(_ context.Context, showIDs []int64) ([]show.Show, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]show.Show, 0, len(showIDs))
	for _, id := range showIDs {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *ShowRepository) Create(_ context.Context, item show.Show) (show.Show, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return item, nil
}
