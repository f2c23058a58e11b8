package health

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]Record, int, error)
}
