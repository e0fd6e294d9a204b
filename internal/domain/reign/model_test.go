package reign

import (
	"testing"
	"time"
)

func TestParseChangeMethod(t *testing.T) {
	for _, raw := range []string{"Won", "Awarded", "Stripped", "Vacated"} {
		method, err := ParseChangeMethod(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if string(method) != raw {
			t.Fatalf("expected %q, got %q", raw, method)
		}
	}

	if _, err := ParseChangeMethod("Pinfall"); err == nil {
		t.Fatalf("expected error for unknown method")
	}
	if _, err := ParseChangeMethod("won"); err == nil {
		t.Fatalf("method parsing is case sensitive")
	}
}

func TestReign_DaysHeld(t *testing.T) {
	since := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	open := Reign{HeldSince: since}
	if got := open.DaysHeld(since.Add(71 * time.Hour)); got != 2 {
		t.Fatalf("expected floor rounding to 2 days, got %d", got)
	}
	if got := open.DaysHeld(since.Add(72 * time.Hour)); got != 3 {
		t.Fatalf("expected 3 whole days, got %d", got)
	}
	if got := open.DaysHeld(since.Add(-time.Hour)); got != 0 {
		t.Fatalf("negative spans clamp to 0, got %d", got)
	}

	until := since.AddDate(0, 0, 10)
	closed := Reign{HeldSince: since, HeldUntil: &until}
	if got := closed.DaysHeld(since.AddDate(1, 0, 0)); got != 10 {
		t.Fatalf("closed reigns measure to HeldUntil, got %d", got)
	}
}

func TestReign_Open(t *testing.T) {
	if !(Reign{}).Open() {
		t.Fatalf("nil HeldUntil means open")
	}

	until := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if (Reign{HeldUntil: &until}).Open() {
		t.Fatalf("set HeldUntil means closed")
	}
}
