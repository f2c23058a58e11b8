package vaccinations

import "context"

type Repository interface {
	Create(ctx context.Context, v Vaccination) error
	GetByID(ctx context.Context, id string) (Vaccination, error)
	Update(ctx context.Context, v Vaccination) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]Vaccination, int, error)
}
