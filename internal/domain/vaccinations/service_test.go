package vaccinations

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pet-care-records/internal/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	rows []Vaccination
}

func (r *testRepo) Create(ctx context.Context, v Vaccination) error {
	r.rows = append(r.rows, v)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Vaccination, error) {
	for _, v := range r.rows {
		if v.ID == id {
			return v, nil
		}
	}
	return Vaccination{}, shared.ErrNotFound
}

func (r *testRepo) Update(ctx context.Context, v Vaccination) error {
	for i := range r.rows {
		if r.rows[i].ID == v.ID {
			r.rows[i] = v
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

func (r *testRepo) List(ctx context.Context, offset, limit int) ([]Vaccination, int, error) {
	out := append([]Vaccination(nil), r.rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return []Vaccination{}, len(out), nil
	}
	end := min(offset+limit, len(out))
	return out[offset:end], len(out), nil
}

// stubAnimals simula el registro de animales.
type stubAnimals struct {
	names map[string]bool
	err   error
}

func (s stubAnimals) HasAnimalNamed(ctx context.Context, name string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.names[name], nil
}

func newTestService(names ...string) (*Service, *testRepo, *time.Time) {
	known := map[string]bool{}
	for _, n := range names {
		known[n] = true
	}
	repo := &testRepo{}
	svc := NewService(repo, stubAnimals{names: known}, 5)

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo, &now
}

var june1 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestService_Create_ExistingAnimal(t *testing.T) {
	svc, repo, _ := newTestService("Bella")

	v, err := svc.Create(context.Background(), CreateInput{
		AnimalName:    "Bella",
		VaccineName:   "Rabies",
		ScheduledDate: june1,
		Status:        StatusPending,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, StatusPending, v.Status)
	assert.Len(t, repo.rows, 1)

	page, err := svc.List(context.Background(), shared.PageRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, v.ID, page.Items[0].ID)
}

func TestService_Create_UnknownAnimal_WritesNothing(t *testing.T) {
	svc, repo, _ := newTestService("Bella")

	_, err := svc.Create(context.Background(), CreateInput{
		AnimalName:    "Ghost",
		VaccineName:   "Rabies",
		ScheduledDate: june1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrReferencedEntityNotFound))
	assert.Empty(t, repo.rows)
}

func TestService_Create_LookupFailure(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, stubAnimals{err: errors.New("db down")}, 5)

	_, err := svc.Create(context.Background(), CreateInput{
		AnimalName:    "Bella",
		VaccineName:   "Rabies",
		ScheduledDate: june1,
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, shared.ErrReferencedEntityNotFound))
	assert.Empty(t, repo.rows)
}

func TestService_Create_DefaultsToPending(t *testing.T) {
	svc, _, _ := newTestService("Bella")

	v, err := svc.Create(context.Background(), CreateInput{AnimalName: "Bella", VaccineName: "Parvo", ScheduledDate: june1})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, v.Status)

	_, err = svc.Create(context.Background(), CreateInput{AnimalName: "Bella", VaccineName: "Parvo", ScheduledDate: june1, Status: "Done"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestService_Create_StoresCanonicalStatus(t *testing.T) {
	svc, repo, _ := newTestService("Bella")
	ctx := context.Background()

	for _, raw := range []Status{" completed ", "COMPLETED", "pending"} {
		v, err := svc.Create(ctx, CreateInput{AnimalName: "Bella", VaccineName: "Rabies", ScheduledDate: june1, Status: raw})
		require.NoError(t, err, "status %q", raw)

		want, _ := ParseStatus(string(raw))
		assert.Equal(t, want, v.Status)

		stored, err := repo.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Contains(t, []Status{StatusPending, StatusCompleted}, stored.Status)
		assert.Equal(t, want, stored.Status)
	}
}

func TestService_Update_StatusBothWays(t *testing.T) {
	svc, _, now := newTestService("Bella")
	ctx := context.Background()

	v, err := svc.Create(ctx, CreateInput{AnimalName: "Bella", VaccineName: "Rabies", ScheduledDate: june1})
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	done := StatusCompleted
	v, err = svc.Update(ctx, v.ID, UpdateInput{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, v.Status)
	assert.True(t, v.UpdatedAt.Equal(*now))
	assert.Equal(t, "Bella", v.AnimalName)

	back := StatusPending
	v, err = svc.Update(ctx, v.ID, UpdateInput{Status: &back})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, v.Status)
}

func TestService_Update_AnimalRemovedAfterCreate(t *testing.T) {
	known := map[string]bool{"Bella": true}
	repo := &testRepo{}
	svc := NewService(repo, stubAnimals{names: known}, 5)
	ctx := context.Background()

	v, err := svc.Create(ctx, CreateInput{AnimalName: "Bella", VaccineName: "Rabies", ScheduledDate: june1})
	require.NoError(t, err)

	// El animal desaparece; la vacunación queda huérfana pero editable.
	delete(known, "Bella")
	notes := "second dose"
	v, err = svc.Update(ctx, v.ID, UpdateInput{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "second dose", v.Notes)
}

func TestService_Delete_Twice(t *testing.T) {
	svc, _, _ := newTestService("Bella")
	ctx := context.Background()

	v, err := svc.Create(ctx, CreateInput{AnimalName: "Bella", VaccineName: "Rabies", ScheduledDate: june1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, v.ID))
	assert.ErrorIs(t, svc.Delete(ctx, v.ID), shared.ErrNotFound)
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus(" completed ")
	assert.True(t, ok)
	assert.Equal(t, StatusCompleted, st)

	_, ok = ParseStatus("cancelled")
	assert.False(t, ok)
}
