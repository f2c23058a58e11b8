package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"pet-care-records/internal/domain/shared"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql) y
// crea las tablas si no existen.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// seq (BIGSERIAL) fija el orden de inserción: desempata created_at y
// decide qué animal gana cuando hay nombres repetidos.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS animals (
		id TEXT PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		name TEXT NOT NULL,
		species TEXT NOT NULL,
		owner TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS animals_name_seq_idx ON animals (name, seq)`,

	`CREATE TABLE IF NOT EXISTS vaccinations (
		id TEXT PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		animal_name TEXT NOT NULL,
		vaccine_name TEXT NOT NULL,
		scheduled_date DATE NOT NULL,
		status TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS health_records (
		id TEXT PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		animal_name TEXT NOT NULL,
		medicine_name TEXT NOT NULL DEFAULT '',
		record_date DATE NOT NULL,
		symptoms TEXT NOT NULL DEFAULT '',
		diagnosis TEXT NOT NULL DEFAULT '',
		treatment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS growth_records (
		id TEXT PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		animal_name TEXT NOT NULL,
		record_date DATE NOT NULL,
		weight DOUBLE PRECISION NOT NULL,
		height DOUBLE PRECISION NOT NULL,
		photo_path TEXT NOT NULL UNIQUE,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS medicines (
		id TEXT PRIMARY KEY,
		seq BIGSERIAL NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		stock INTEGER NOT NULL CHECK (stock >= 0),
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate es idempotente; no hay versionado de esquema.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return shared.ErrNotFound
	}
	return err
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// count devuelve el total de filas de table (nombre fijo, nunca input del usuario).
func count(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
