package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ringbookhq/ringbook/internal/domain/title"
)

type TitleRepository struct {
	mu     sync.RWMutex
	items  map[int64]title.Title
	nextID int64
}

func NewTitleRepository(titles []title.Title) *TitleRepository {
	items := make(map[int64]title.Title, len(titles))
	var maxID int64
	for _, t := range titles {
		items[t.ID] = t
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	return &TitleRepository{
		items:  items,
		nextID: maxID + 1,
	}
}

func (r *TitleRepository) List(_ context.Context) ([]title.Title, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(title.Title) bool { return true }), nil
}

func (r *TitleRepository) ListByShow(_ context.Context, showID int64) ([]title.Title, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(t title.Title) bool { return t.ShowID == showID }), nil
}

func (r *TitleRepository) ListUnassigned(_ context.Context) ([]title.Title, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(t title.Title) bool { return t.ShowID == 0 }), nil
}

func (r *TitleRepository) GetByID(_ context.Context, titleID int64) (title.Title, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[titleID]
	if !ok {
		return title.Title{}, false, nil
	}

	return item, true, nil
}

func (r *TitleRepository) GetByIDs(_ context.Context, titleIDs []int64) ([]title.Title, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]title.Title, 0, len(titleIDs))
	for _, id := range titleIDs {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	sortTitles(out)

	return out, nil
}

func (r *TitleRepository) Create(_ context.Context, item title.Title) (title.Title, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item

	return item, nil
}

// setCurrentHolder is used by the reign repository to keep the title's
// holder pointer in step with the ledger.
func (r *TitleRepository) setCurrentHolder(titleID, wrestlerID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[titleID]
	if !ok {
		return
	}
	item.CurrentHolderID = wrestlerID
	r.items[titleID] = item
}

func (r *TitleRepository) collect(keep func(title.Title) bool) []title.Title {
	out := make([]title.Title, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	sortTitles(out)

	return out
}

func sortTitles(items []title.Title) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].PrestigeTier != items[j].PrestigeTier {
			return items[i].PrestigeTier < items[j].PrestigeTier
		}
		return items[i].Name < items[j].Name
	})
}
