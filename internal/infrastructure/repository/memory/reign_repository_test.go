package memory

import (
	"testing"
	"time"

	"github.com/ringbookhq/ringbook/internal/domain/reign"
)

func TestReignRepository_Start_ClosesPreviousReign(t *testing.T) {
	titles := NewTitleRepository(SeedTitles())
	repo := NewReignRepository(nil, titles)

	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := repo.Start(t.Context(), reign.Reign{
		TitleID:      1,
		WrestlerID:   1,
		HeldSince:    first,
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("start first reign: %v", err)
	}

	second := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	started, err := repo.Start(t.Context(), reign.Reign{
		TitleID:      1,
		WrestlerID:   2,
		HeldSince:    second,
		ChangeMethod: reign.MethodWon,
	})
	if err != nil {
		t.Fatalf("start second reign: %v", err)
	}
	if !started.Open() {
		t.Fatalf("new reign must be open")
	}

	history, err := repo.ListByTitle(t.Context(), 1)
	if err != nil {
		t.Fatalf("list by title: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 reigns, got %d", len(history))
	}
	if history[0].Open() {
		t.Fatalf("previous reign must be closed")
	}
	if !history[0].HeldUntil.Equal(second) {
		t.Fatalf("previous reign must close at the successor's start, got %s", history[0].HeldUntil)
	}

	open, exists, err := repo.GetOpenByTitle(t.Context(), 1)
	if err != nil {
		t.Fatalf("get open by title: %v", err)
	}
	if !exists || open.WrestlerID != 2 {
		t.Fatalf("expected wrestler 2 holding the open reign, got %+v", open)
	}
}

func TestReignRepository_Start_MirrorsHolderPointer(t *testing.T) {
	titles := NewTitleRepository(SeedTitles())
	repo := NewReignRepository(nil, titles)

	if _, err := repo.Start(t.Context(), reign.Reign{
		TitleID:      1,
		WrestlerID:   1,
		HeldSince:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("start reign: %v", err)
	}

	belt, exists, err := titles.GetByID(t.Context(), 1)
	if err != nil || !exists {
		t.Fatalf("get title: exists=%t err=%v", exists, err)
	}
	if belt.CurrentHolderID != 1 {
		t.Fatalf("holder pointer not mirrored, got %d", belt.CurrentHolderID)
	}

	if _, _, err := repo.End(t.Context(), 1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), "", "", reign.MethodVacated); err != nil {
		t.Fatalf("end reign: %v", err)
	}

	belt, _, err = titles.GetByID(t.Context(), 1)
	if err != nil {
		t.Fatalf("get title: %v", err)
	}
	if belt.CurrentHolderID != 0 {
		t.Fatalf("holder pointer must clear on vacate, got %d", belt.CurrentHolderID)
	}
}

func TestReignRepository_End(t *testing.T) {
	titles := NewTitleRepository(SeedTitles())
	repo := NewReignRepository(nil, titles)

	if _, err := repo.Start(t.Context(), reign.Reign{
		TitleID:      1,
		WrestlerID:   1,
		HeldSince:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EventName:    "Royal Rumble",
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("start reign: %v", err)
	}

	endedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	closed, changed, err := repo.End(t.Context(), 1, endedAt, "RAW", "Boston, MA", reign.MethodStripped)
	if err != nil {
		t.Fatalf("end reign: %v", err)
	}
	if !changed {
		t.Fatalf("expected the open reign to close")
	}
	if closed.EventName != "RAW" || closed.EventLocation != "Boston, MA" || closed.ChangeMethod != reign.MethodStripped {
		t.Fatalf("end must stamp the closing event, got %+v", closed)
	}
	if !closed.HeldUntil.Equal(endedAt) {
		t.Fatalf("unexpected held until: %s", closed.HeldUntil)
	}

	_, changed, err = repo.End(t.Context(), 1, endedAt, "", "", reign.MethodVacated)
	if err != nil {
		t.Fatalf("second end: %v", err)
	}
	if changed {
		t.Fatalf("ending a vacant title must report no change")
	}
}

func TestReignRepository_End_KeepsEventWhenBlank(t *testing.T) {
	titles := NewTitleRepository(SeedTitles())
	repo := NewReignRepository(nil, titles)

	if _, err := repo.Start(t.Context(), reign.Reign{
		TitleID:      1,
		WrestlerID:   1,
		HeldSince:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EventName:    "Royal Rumble",
		ChangeMethod: reign.MethodWon,
	}); err != nil {
		t.Fatalf("start reign: %v", err)
	}

	closed, _, err := repo.End(t.Context(), 1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), "", "", reign.MethodVacated)
	if err != nil {
		t.Fatalf("end reign: %v", err)
	}
	if closed.EventName != "Royal Rumble" {
		t.Fatalf("blank closing event must keep the original, got %q", closed.EventName)
	}
	if closed.ChangeMethod != reign.MethodVacated {
		t.Fatalf("change method must update, got %q", closed.ChangeMethod)
	}
}

func TestReignRepository_ListOpenByWrestler(t *testing.T) {
	titles := NewTitleRepository(SeedTitles())
	repo := NewReignRepository(nil, titles)

	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, titleID := range []int64{12, 1} {
		if _, err := repo.Start(t.Context(), reign.Reign{
			TitleID:      titleID,
			WrestlerID:   1,
			HeldSince:    since,
			ChangeMethod: reign.MethodWon,
		}); err != nil {
			t.Fatalf("start reign for title %d: %v", titleID, err)
		}
	}

	open, err := repo.ListOpenByWrestler(t.Context(), 1)
	if err != nil {
		t.Fatalf("list open by wrestler: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("expected 2 open reigns, got %d", len(open))
	}
	if open[0].TitleID != 1 || open[1].TitleID != 12 {
		t.Fatalf("expected title id order, got %+v", open)
	}
}
