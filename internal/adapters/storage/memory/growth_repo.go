package memory

import (
	"context"
	"time"

	"pet-care-records/internal/domain/growth"
)

type growthRepo struct {
	t *table[growth.Record]
}

func NewGrowthRepo() growth.Repository {
	return &growthRepo{
		t: newTable(func(v growth.Record) time.Time { return v.CreatedAt }),
	}
}

func (r *growthRepo) Create(ctx context.Context, v growth.Record) error {
	return r.t.insert(v.ID, v)
}

func (r *growthRepo) GetByID(ctx context.Context, id string) (growth.Record, error) {
	return r.t.get(id)
}

func (r *growthRepo) Update(ctx context.Context, v growth.Record) error {
	return r.t.replace(v.ID, v)
}

func (r *growthRepo) Delete(ctx context.Context, id string) error {
	return r.t.remove(id)
}

func (r *growthRepo) List(ctx context.Context, offset, limit int) ([]growth.Record, int, error) {
	items, total := r.t.page(offset, limit)
	return items, total, nil
}
