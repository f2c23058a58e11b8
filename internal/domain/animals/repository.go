package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	// FindByName devuelve el primero por orden de inserción si hay duplicados.
	FindByName(ctx context.Context, name string) (Animal, error)
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error
	// List ordena por created_at desc y devuelve también el total.
	List(ctx context.Context, offset, limit int) ([]Animal, int, error)
}
