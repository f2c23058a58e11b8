package memory

import (
	"context"
	"time"

	"pet-care-records/internal/domain/medicines"
)

type medicineRepo struct {
	t *table[medicines.Medicine]
}

func NewMedicineRepo() medicines.Repository {
	return &medicineRepo{
		t: newTable(func(v medicines.Medicine) time.Time { return v.CreatedAt }),
	}
}

func (r *medicineRepo) Create(ctx context.Context, v medicines.Medicine) error {
	return r.t.insert(v.ID, v)
}

func (r *medicineRepo) GetByID(ctx context.Context, id string) (medicines.Medicine, error) {
	return r.t.get(id)
}

func (r *medicineRepo) Update(ctx context.Context, v medicines.Medicine) error {
	return r.t.replace(v.ID, v)
}

func (r *medicineRepo) Delete(ctx context.Context, id string) error {
	return r.t.remove(id)
}

func (r *medicineRepo) List(ctx context.Context, offset, limit int) ([]medicines.Medicine, int, error) {
	items, total := r.t.page(offset, limit)
	return items, total, nil
}
