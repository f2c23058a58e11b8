package memory

import (
	"context"
	"time"

	"pet-care-records/internal/domain/health"
)

type healthRepo struct {
	t *table[health.Record]
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		t: newTable(func(v health.Record) time.Time { return v.CreatedAt }),
	}
}

func (r *healthRepo) Create(ctx context.Context, v health.Record) error {
	return r.t.insert(v.ID, v)
}

func (r *healthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	return r.t.get(id)
}

func (r *healthRepo) Update(ctx context.Context, v health.Record) error {
	return r.t.replace(v.ID, v)
}

func (r *healthRepo) Delete(ctx context.Context, id string) error {
	return r.t.remove(id)
}

func (r *healthRepo) List(ctx context.Context, offset, limit int) ([]health.Record, int, error) {
	items, total := r.t.page(offset, limit)
	return items, total, nil
}
