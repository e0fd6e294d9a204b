package memory

import (
	"testing"
	"time"
)

func TestRosterRepository_Transfer_KeepsSingleActiveEntry(t *testing.T) {
	repo := NewRosterRepository(nil)

	assignedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := repo.Transfer(t.Context(), ShowIDRaw, 1, assignedAt); err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	moved, err := repo.Transfer(t.Context(), ShowIDSmackDown, 1, assignedAt.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("second transfer: %v", err)
	}
	if moved.ShowID != ShowIDSmackDown || !moved.IsActive {
		t.Fatalf("unexpected entry: %+v", moved)
	}

	active, exists, err := repo.GetActiveByWrestler(t.Context(), 1)
	if err != nil {
		t.Fatalf("get active by wrestler: %v", err)
	}
	if !exists || active.ShowID != ShowIDSmackDown {
		t.Fatalf("expected single active entry on the new show, got %+v", active)
	}

	old, err := repo.ListActiveByShow(t.Context(), ShowIDRaw)
	if err != nil {
		t.Fatalf("list active by show: %v", err)
	}
	if len(old) != 0 {
		t.Fatalf("old show must have no active entries, got %+v", old)
	}
}

func TestRosterRepository_Deactivate(t *testing.T) {
	repo := NewRosterRepository(nil)

	assignedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := repo.Transfer(t.Context(), ShowIDRaw, 1, assignedAt); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	changed, err := repo.Deactivate(t.Context(), ShowIDRaw, 1)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if !changed {
		t.Fatalf("expected deactivation to report a change")
	}

	changed, err = repo.Deactivate(t.Context(), ShowIDRaw, 1)
	if err != nil {
		t.Fatalf("second deactivate: %v", err)
	}
	if changed {
		t.Fatalf("deactivating an inactive entry must be a no-op")
	}

	if _, exists, err := repo.GetActiveByWrestler(t.Context(), 1); err != nil || exists {
		t.Fatalf("expected no active entry, exists=%t err=%v", exists, err)
	}
}

func TestRosterRepository_ListActiveByShow_OrderedByEntryID(t *testing.T) {
	repo := NewRosterRepository(nil)

	assignedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, wrestlerID := range []int64{3, 1, 2} {
		if _, err := repo.Transfer(t.Context(), ShowIDRaw, wrestlerID, assignedAt); err != nil {
			t.Fatalf("transfer wrestler %d: %v", wrestlerID, err)
		}
	}

	entries, err := repo.ListActiveByShow(t.Context(), ShowIDRaw)
	if err != nil {
		t.Fatalf("list active by show: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].ID > entries[i].ID {
			t.Fatalf("entries not ordered by id: %+v", entries)
		}
	}
}
