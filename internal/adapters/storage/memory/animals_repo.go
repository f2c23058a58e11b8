package memory

import (
	"context"
	"time"

	"pet-care-records/internal/domain/animals"
	"pet-care-records/internal/domain/shared"
)

type animalRepo struct {
	t *table[animals.Animal]
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		t: newTable(func(a animals.Animal) time.Time { return a.CreatedAt }),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	return r.t.insert(a.ID, a)
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	return r.t.get(id)
}

// FindByName: los nombres no son únicos, gana el primero insertado.
func (r *animalRepo) FindByName(ctx context.Context, name string) (animals.Animal, error) {
	a, ok := r.t.first(func(a animals.Animal) bool { return a.Name == name })
	if !ok {
		return animals.Animal{}, shared.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Animal) error {
	return r.t.replace(a.ID, a)
}

func (r *animalRepo) Delete(ctx context.Context, id string) error {
	return r.t.remove(id)
}

func (r *animalRepo) List(ctx context.Context, offset, limit int) ([]animals.Animal, int, error) {
	items, total := r.t.page(offset, limit)
	return items, total, nil
}
