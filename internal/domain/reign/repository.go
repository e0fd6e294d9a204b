package reign

import (
	"context"
	"time"
)

// Repository is the title holder ledger. Implementations must keep the
// open-reign invariant: at most one reign per title with HeldUntil nil.
type Repository interface {
	// GetOpenByTitle returns the title's current reign, if any.
	GetOpenByTitle(ctx context.Context, titleID int64) (Reign, bool, error)
	// ListByTitle returns the full ledger for a title ordered by
	// HeldSince ascending, closed rows and the open row included.
	ListByTitle(ctx context.Context, titleID int64) ([]Reign, error)
	// ListOpenByWrestler returns every title the wrestler currently holds.
	ListOpenByWrestler(ctx context.Context, wrestlerID int64) ([]Reign, error)
	// Start atomically closes the title's open reign (if any) at
	// item.HeldSince, inserts item as the new open reign, and points
	// the title's current holder at item.WrestlerID. Never deletes
	// ledger rows.
	Start(ctx context.Context, item Reign) (Reign, error)
	// End atomically closes the title's open reign at endedAt,
	// stamping the closing event metadata, and clears the title's
	// current holder. Returns false with no error when the title is
	// already vacant.
	End(ctx context.Context, titleID int64, endedAt time.Time, eventName, eventLocation string, method ChangeMethod) (Reign, bool, error)
}
