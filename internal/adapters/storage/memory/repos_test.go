package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-records/internal/domain/animals"
	"pet-care-records/internal/domain/medicines"
	"pet-care-records/internal/domain/shared"
)

func TestAnimalRepo_FindByName_FirstInserted(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// mismo created_at: decide el orden de inserción
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a1", Name: "Bella", Species: "Dog", CreatedAt: ts}))
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "a2", Name: "Bella", Species: "Cat", CreatedAt: ts}))

	got, err := repo.FindByName(ctx, "Bella")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = repo.FindByName(ctx, "Ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAnimalRepo_List_NewestFirstWithTiebreak(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "old", Name: "A", CreatedAt: ts.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "x", Name: "B", CreatedAt: ts}))
	require.NoError(t, repo.Create(ctx, animals.Animal{ID: "y", Name: "C", CreatedAt: ts}))

	items, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "y", items[0].ID)
	assert.Equal(t, "x", items[1].ID)

	items, _, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "old", items[0].ID)

	items, total, err = repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 3, total)
}

func TestMedicineRepo_CRUD(t *testing.T) {
	repo := NewMedicineRepo()
	ctx := context.Background()

	m := medicines.Medicine{ID: "m1", Name: "Amoxicillin", Stock: 3, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, m))
	assert.Error(t, repo.Create(ctx, m), "duplicate id")

	m.Stock = 9
	require.NoError(t, repo.Update(ctx, m))
	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Stock)

	require.NoError(t, repo.Delete(ctx, "m1"))
	assert.ErrorIs(t, repo.Delete(ctx, "m1"), shared.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, m), shared.ErrNotFound)
	_, err = repo.GetByID(ctx, "m1")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
