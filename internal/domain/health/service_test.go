package health

import (
	"context"
	"testing"
	"time"

	"pet-care-records/internal/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	rows []Record
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	r.rows = append(r.rows, rec)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Record, error) {
	for _, rec := range r.rows {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, shared.ErrNotFound
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	for i := range r.rows {
		if r.rows[i].ID == rec.ID {
			r.rows[i] = rec
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

func (r *testRepo) List(ctx context.Context, offset, limit int) ([]Record, int, error) {
	// Los tests insertan en orden cronológico: invertir es "más recientes primero".
	out := make([]Record, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		out = append(out, r.rows[i])
	}
	if offset >= len(out) {
		return []Record{}, len(out), nil
	}
	return out[offset:min(offset+limit, len(out))], len(out), nil
}

type namedAnimals map[string]bool

func (n namedAnimals) HasAnimalNamed(ctx context.Context, name string) (bool, error) {
	return n[name], nil
}

var day = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

func TestService_Create_UnknownAnimalAllowedByDefault(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, namedAnimals{}, Options{})

	rec, err := svc.Create(context.Background(), CreateInput{
		AnimalName: "Ghost",
		Date:       day,
		Symptoms:   " cough ",
		Diagnosis:  "kennel cough",
	})
	require.NoError(t, err)
	assert.Equal(t, "cough", rec.Symptoms)
	assert.Len(t, repo.rows, 1)
}

func TestService_Create_RequireAnimal(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, namedAnimals{"Bella": true}, Options{RequireAnimal: true})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{AnimalName: "Ghost", Date: day})
	assert.ErrorIs(t, err, shared.ErrReferencedEntityNotFound)
	assert.Empty(t, repo.rows)

	rec, err := svc.Create(ctx, CreateInput{AnimalName: "Bella", Date: day})
	require.NoError(t, err)

	// Renombrar a un animal inexistente también se rechaza.
	ghost := "Ghost"
	_, err = svc.Update(ctx, rec.ID, UpdateInput{AnimalName: &ghost})
	assert.ErrorIs(t, err, shared.ErrReferencedEntityNotFound)
}

func TestService_Update_PartialAndStamps(t *testing.T) {
	svc := NewService(&testRepo{}, nil, Options{})
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	rec, err := svc.Create(ctx, CreateInput{AnimalName: "Bella", Date: day, Treatment: "rest"})
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	diag := "otitis"
	rec, err = svc.Update(ctx, rec.ID, UpdateInput{Diagnosis: &diag})
	require.NoError(t, err)
	assert.Equal(t, "otitis", rec.Diagnosis)
	assert.Equal(t, "rest", rec.Treatment)
	assert.True(t, rec.UpdatedAt.After(rec.CreatedAt))

	_, err = svc.Update(ctx, "missing", UpdateInput{Diagnosis: &diag})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_List_Paginates(t *testing.T) {
	svc := NewService(&testRepo{}, nil, Options{PageSize: 2})
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, CreateInput{AnimalName: name, Date: day})
		require.NoError(t, err)
	}

	p, err := svc.List(ctx, shared.PageRequest{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Total)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "A", p.Items[0].AnimalName)

	p, err = svc.List(ctx, shared.PageRequest{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, p.Items)
	assert.Equal(t, 3, p.Total)
}
