package memory

import (
	"context"
	"time"

	"pet-care-records/internal/domain/vaccinations"
)

type vaccinationRepo struct {
	t *table[vaccinations.Vaccination]
}

func NewVaccinationRepo() vaccinations.Repository {
	return &vaccinationRepo{
		t: newTable(func(v vaccinations.Vaccination) time.Time { return v.CreatedAt }),
	}
}

func (r *vaccinationRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	return r.t.insert(v.ID, v)
}

func (r *vaccinationRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	return r.t.get(id)
}

func (r *vaccinationRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	return r.t.replace(v.ID, v)
}

func (r *vaccinationRepo) Delete(ctx context.Context, id string) error {
	return r.t.remove(id)
}

func (r *vaccinationRepo) List(ctx context.Context, offset, limit int) ([]vaccinations.Vaccination, int, error) {
	items, total := r.t.page(offset, limit)
	return items, total, nil
}
