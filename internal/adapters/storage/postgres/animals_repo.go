package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-records/internal/domain/animals"
	"pet-care-records/internal/domain/shared"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `id, name, species, owner, created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		a.ID,
		a.Name,
		a.Species,
		a.Owner,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, shared.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	a, err := scanAnimal(row)
	return a, notFound(err)
}

// FindByName devuelve el primer animal insertado con ese nombre.
func (r *AnimalsRepo) FindByName(ctx context.Context, name string) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE name = $1
		ORDER BY seq ASC
		LIMIT 1
	`, name)
	a, err := scanAnimal(row)
	return a, notFound(err)
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			species = $3,
			owner = $4,
			updated_at = $5
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Species,
		a.Owner,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(res)
}

func (r *AnimalsRepo) List(ctx context.Context, offset, limit int) ([]animals.Animal, int, error) {
	total, err := count(ctx, r.db, "animals")
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		ORDER BY created_at DESC, seq DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0, limit)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

// scanner lo cumplen *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var a animals.Animal
	err := s.Scan(
		&a.ID,
		&a.Name,
		&a.Species,
		&a.Owner,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
