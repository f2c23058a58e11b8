package medicines

import "context"

type Repository interface {
	Create(ctx context.Context, m Medicine) error
	GetByID(ctx context.Context, id string) (Medicine, error)
	Update(ctx context.Context, m Medicine) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]Medicine, int, error)
}
