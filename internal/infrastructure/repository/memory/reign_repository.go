package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/reign"
)

// ReignRepository keeps the holder ledger in process memory. The
// mutex makes the close-then-insert pair in Start atomic, which is
// what preserves the single open reign per title.
type ReignRepository struct {
	mu     sync.RWMutex
	items  map[int64]reign.Reign
	nextID int64
	titles *TitleRepository
}

func NewReignRepository(reigns []reign.Reign, titles *TitleRepository) *ReignRepository {
	items := make(map[int64]reign.Reign, len(reigns))
	var maxID int64
	for _, item := range reigns {
		items[item.ID] = cloneReign(item)
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &ReignRepository{
		items:  items,
		nextID: maxID + 1,
		titles: titles,
	}
}

func (r *ReignRepository) GetOpenByTitle(_ context.Context, titleID int64) (reign.Reign, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.TitleID == titleID && item.Open() {
			return cloneReign(item), true, nil
		}
	}

	return reign.Reign{}, false, nil
}

func (r *ReignRepository) ListByTitle(_ context.Context, titleID int64) ([]reign.Reign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reign.Reign, 0)
	for _, item := range r.items {
		if item.TitleID == titleID {
			out = append(out, cloneReign(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HeldSince.Equal(out[j].HeldSince) {
			return out[i].ID < out[j].ID
		}
		return out[i].HeldSince.Before(out[j].HeldSince)
	})

	return out, nil
}

func (r *ReignRepository) ListOpenByWrestler(_ context.Context, wrestlerID int64) ([]reign.Reign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reign.Reign, 0)
	for _, item := range r.items {
		if item.WrestlerID == wrestlerID && item.Open() {
			out = append(out, cloneReign(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TitleID < out[j].TitleID })

	return out, nil
}

func (r *ReignRepository) Start(_ context.Context, item reign.Reign) (reign.Reign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.items {
		if existing.TitleID == item.TitleID && existing.Open() {
			ended := item.HeldSince
			existing.HeldUntil = &ended
			r.items[id] = existing
			break
		}
	}

	item.ID = r.nextID
	r.nextID++
	item.HeldUntil = nil
	r.items[item.ID] = cloneReign(item)

	if r.titles != nil {
		r.titles.setCurrentHolder(item.TitleID, item.WrestlerID)
	}

	return cloneReign(item), nil
}

func (r *ReignRepository) End(_ context.Context, titleID int64, endedAt time.Time, eventName, eventLocation string, method reign.ChangeMethod) (reign.Reign, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.items {
		if existing.TitleID != titleID || !existing.Open() {
			continue
		}

		ended := endedAt
		existing.HeldUntil = &ended
		if eventName != "" {
			existing.EventName = eventName
		}
		if eventLocation != "" {
			existing.EventLocation = eventLocation
		}
		if method != "" {
			existing.ChangeMethod = method
		}
		r.items[id] = existing

		if r.titles != nil {
			r.titles.setCurrentHolder(titleID, 0)
		}

		return cloneReign(existing), true, nil
	}

	return reign.Reign{}, false, nil
}

func cloneReign(item reign.Reign) reign.Reign {
	copied := item
	if item.HeldUntil != nil {
		until := *item.HeldUntil
		copied.HeldUntil = &until
	}
	return copied
}
