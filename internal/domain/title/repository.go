package title

import "context"

// Repository describes title persistence needs from use cases.
// Ordering for list queries is prestige tier ascending, then name.
type Repository interface {
	List(ctx context.Context) ([]Title, error)
	ListByShow(ctx context.Context, showID int64) ([]Title, error)
	ListUnassigned(ctx context.Context) ([]Title, error)
	GetByID(ctx context.Context, titleID int64) (Title, bool, error)
	GetByIDs(ctx context.Context, titleIDs []int64) ([]Title, error)
	Create(ctx context.Context, item Title) (Title, error)
}
