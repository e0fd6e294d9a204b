package wrestler

import "context"

// Repository describes wrestler persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Wrestler, error)
	GetByID(ctx context.Context, wrestlerID int64) (Wrestler, bool, error)
	GetByIDs(ctx context.Context, wrestlerIDs []int64) ([]Wrestler, error)
	Create(ctx context.Context, item Wrestler) (Wrestler, error)
	Update(ctx context.Context, item Wrestler) error
}
