package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-records/internal/domain/medicines"
	"pet-care-records/internal/domain/shared"
)

type MedicinesRepo struct {
	db *sql.DB
}

func NewMedicinesRepo(db *sql.DB) *MedicinesRepo {
	return &MedicinesRepo{db: db}
}

const medicineColumns = `id, name, description, stock, price, created_at, updated_at`

func (r *MedicinesRepo) Create(ctx context.Context, m medicines.Medicine) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medicines (`+medicineColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		m.ID,
		m.Name,
		m.Description,
		m.Stock,
		m.Price,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicinesRepo) GetByID(ctx context.Context, id string) (medicines.Medicine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medicines.Medicine{}, shared.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE id = $1`, id)
	m, err := scanMedicine(row)
	return m, notFound(err)
}

func (r *MedicinesRepo) Update(ctx context.Context, m medicines.Medicine) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medicines
		SET
			name = $2,
			description = $3,
			stock = $4,
			price = $5,
			updated_at = $6
		WHERE id = $1
	`,
		m.ID,
		m.Name,
		m.Description,
		m.Stock,
		m.Price,
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *MedicinesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *MedicinesRepo) List(ctx context.Context, offset, limit int) ([]medicines.Medicine, int, error) {
	total, err := count(ctx, r.db, "medicines")
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicineColumns+`
		FROM medicines
		ORDER BY created_at DESC, seq DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]medicines.Medicine, 0, limit)
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func scanMedicine(s scanner) (medicines.Medicine, error) {
	var m medicines.Medicine
	err := s.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.Stock,
		&m.Price,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}
