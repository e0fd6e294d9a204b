package roster

import (
	"context"
	"time"
)

// Repository persists show roster assignments. Implementations must
// keep the exclusivity invariant: at most one active entry per
// wrestler across all shows.
type Repository interface {
	// GetActiveByWrestler returns the wrestler's single active entry
	// regardless of show.
	GetActiveByWrestler(ctx context.Context, wrestlerID int64) (Entry, bool, error)
	// ListActiveByShow returns the active entries for a show.
	ListActiveByShow(ctx context.Context, showID int64) ([]Entry, error)
	// Transfer atomically deactivates any active entry the wrestler
	// has and inserts a new active entry for showID assigned at the
	// given time.
	Transfer(ctx context.Context, showID, wrestlerID int64, assignedAt time.Time) (Entry, error)
	// Deactivate flips the active entry for (showID, wrestlerID) to
	// inactive. Returns false when no such active entry exists.
	Deactivate(ctx context.Context, showID, wrestlerID int64) (bool, error)
}
