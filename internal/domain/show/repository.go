package show

import "context"

// Repository describes show persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Show, error)
	GetByID(ctx context.Context, showID int64) (Show, bool, error)
	GetByIDs(ctx context.Context, showIDs []int64) ([]Show, error)
	Create(ctx context.Context, item Show) (Show, error)
}
