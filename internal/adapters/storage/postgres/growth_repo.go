package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-records/internal/domain/growth"
	"pet-care-records/internal/domain/shared"
)

type GrowthRepo struct {
	db *sql.DB
}

func NewGrowthRepo(db *sql.DB) *GrowthRepo {
	return &GrowthRepo{db: db}
}

const growthColumns = `id, animal_name, record_date, weight, height, photo_path, notes, created_at, updated_at`

func (r *GrowthRepo) Create(ctx context.Context, rec growth.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO growth_records (`+growthColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.AnimalName,
		rec.Date,
		rec.Weight,
		rec.Height,
		rec.PhotoPath,
		rec.Notes,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *GrowthRepo) GetByID(ctx context.Context, id string) (growth.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return growth.Record{}, shared.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+growthColumns+` FROM growth_records WHERE id = $1`, id)
	rec, err := scanGrowth(row)
	return rec, notFound(err)
}

func (r *GrowthRepo) Update(ctx context.Context, rec growth.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE growth_records
		SET
			animal_name = $2,
			record_date = $3,
			weight = $4,
			height = $5,
			photo_path = $6,
			notes = $7,
			updated_at = $8
		WHERE id = $1
	`,
		rec.ID,
		rec.AnimalName,
		rec.Date,
		rec.Weight,
		rec.Height,
		rec.PhotoPath,
		rec.Notes,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *GrowthRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM growth_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *GrowthRepo) List(ctx context.Context, offset, limit int) ([]growth.Record, int, error) {
	total, err := count(ctx, r.db, "growth_records")
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+growthColumns+`
		FROM growth_records
		ORDER BY created_at DESC, seq DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]growth.Record, 0, limit)
	for rows.Next() {
		rec, err := scanGrowth(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	return out, total, rows.Err()
}

func scanGrowth(s scanner) (growth.Record, error) {
	var rec growth.Record
	err := s.Scan(
		&rec.ID,
		&rec.AnimalName,
		&rec.Date,
		&rec.Weight,
		&rec.Height,
		&rec.PhotoPath,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}
