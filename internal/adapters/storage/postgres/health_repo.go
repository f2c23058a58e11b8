package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-records/internal/domain/health"
	"pet-care-records/internal/domain/shared"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

const healthColumns = `id, animal_name, medicine_name, record_date, symptoms, diagnosis, treatment, created_at, updated_at`

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (`+healthColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.ID,
		rec.AnimalName,
		rec.MedicineName,
		rec.Date,
		rec.Symptoms,
		rec.Diagnosis,
		rec.Treatment,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Record{}, shared.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+healthColumns+` FROM health_records WHERE id = $1`, id)
	rec, err := scanHealth(row)
	return rec, notFound(err)
}

func (r *HealthRepo) Update(ctx context.Context, rec health.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE health_records
		SET
			animal_name = $2,
			medicine_name = $3,
			record_date = $4,
			symptoms = $5,
			diagnosis = $6,
			treatment = $7,
			updated_at = $8
		WHERE id = $1
	`,
		rec.ID,
		rec.AnimalName,
		rec.MedicineName,
		rec.Date,
		rec.Symptoms,
		rec.Diagnosis,
		rec.Treatment,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *HealthRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM health_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *HealthRepo) List(ctx context.Context, offset, limit int) ([]health.Record, int, error) {
	total, err := count(ctx, r.db, "health_records")
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+healthColumns+`
		FROM health_records
		ORDER BY created_at DESC, seq DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]health.Record, 0, limit)
	for rows.Next() {
		rec, err := scanHealth(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	return out, total, rows.Err()
}

func scanHealth(s scanner) (health.Record, error) {
	var rec health.Record
	err := s.Scan(
		&rec.ID,
		&rec.AnimalName,
		&rec.MedicineName,
		&rec.Date,
		&rec.Symptoms,
		&rec.Diagnosis,
		&rec.Treatment,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}
