package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-records/internal/domain/shared"
	"pet-care-records/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

const vaccinationColumns = `id, animal_name, vaccine_name, scheduled_date, status, notes, created_at, updated_at`

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccinations (`+vaccinationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		v.ID,
		v.AnimalName,
		v.VaccineName,
		v.ScheduledDate,
		string(v.Status),
		v.Notes,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vaccinations.Vaccination{}, shared.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+vaccinationColumns+` FROM vaccinations WHERE id = $1`, id)
	v, err := scanVaccination(row)
	return v, notFound(err)
}

// Update no toca animal_name.
func (r *VaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccinations
		SET
			vaccine_name = $2,
			scheduled_date = $3,
			status = $4,
			notes = $5,
			updated_at = $6
		WHERE id = $1
	`,
		v.ID,
		v.VaccineName,
		v.ScheduledDate,
		string(v.Status),
		v.Notes,
		v.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaccinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *VaccinationsRepo) List(ctx context.Context, offset, limit int) ([]vaccinations.Vaccination, int, error) {
	total, err := count(ctx, r.db, "vaccinations")
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+vaccinationColumns+`
		FROM vaccinations
		ORDER BY created_at DESC, seq DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0, limit)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
	}
	return out, total, rows.Err()
}

func scanVaccination(s scanner) (vaccinations.Vaccination, error) {
	var (
		v      vaccinations.Vaccination
		status string
	)
	err := s.Scan(
		&v.ID,
		&v.AnimalName,
		&v.VaccineName,
		&v.ScheduledDate,
		&status,
		&v.Notes,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	v.Status = vaccinations.Status(status)
	return v, err
}
