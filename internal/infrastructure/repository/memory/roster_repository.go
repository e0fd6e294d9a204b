package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/roster"
)

// RosterRepository keeps show assignments in process memory. Transfer
// deactivates and inserts under one lock, which is what preserves the
// single active entry per wrestler.
type RosterRepository struct {
	mu     sync.RWMutex
	items  map[int64]roster.Entry
	nextID int64
}

func NewRosterRepository(entries []roster.Entry) *RosterRepository {
	items := make(map[int64]roster.Entry, len(entries))
	var maxID int64
	for _, item := range entries {
		items[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &RosterRepository{
		items:  items,
		nextID: maxID + 1,
	}
}

func (r *RosterRepository) GetActiveByWrestler(_ context.Context, wrestlerID int64) (roster.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.WrestlerID == wrestlerID && item.IsActive {
			return item, true, nil
		}
	}

	return roster.Entry{}, false, nil
}

func (r *RosterRepository) ListActiveByShow(_ context.Context, showID int64) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, 0)
	for _, item := range r.items {
		if item.ShowID == showID && item.IsActive {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *RosterRepository) Transfer(_ context.Context, showID, wrestlerID int64, assignedAt time.Time) (roster.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.items {
		if existing.WrestlerID == wrestlerID && existing.IsActive {
			existing.IsActive = false
			r.items[id] = existing
		}
	}

	entry := roster.Entry{
		ID:         r.nextID,
		ShowID:     showID,
		WrestlerID: wrestlerID,
		AssignedAt: assignedAt,
		IsActive:   true,
	}
	r.nextID++
	r.items[entry.ID] = entry

	return entry, nil
}

func (r *RosterRepository) Deactivate(_ context.Context, showID, wrestlerID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.items {
		if existing.ShowID == showID && existing.WrestlerID == wrestlerID && existing.IsActive {
			existing.IsActive = false
			r.items[id] = existing
			return true, nil
		}
	}

	return false, nil
}
