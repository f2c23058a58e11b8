package medicines

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-care-records/internal/domain/shared"
)

type testRepo struct {
	rows map[string]Medicine
}

func newTestRepo() *testRepo { return &testRepo{rows: map[string]Medicine{}} }

func (r *testRepo) Create(ctx context.Context, m Medicine) error {
	r.rows[m.ID] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Medicine, error) {
	m, ok := r.rows[id]
	if !ok {
		return Medicine{}, shared.ErrNotFound
	}
	return m, nil
}

func (r *testRepo) Update(ctx context.Context, m Medicine) error {
	if _, ok := r.rows[m.ID]; !ok {
		return shared.ErrNotFound
	}
	r.rows[m.ID] = m
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.rows[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *testRepo) List(ctx context.Context, offset, limit int) ([]Medicine, int, error) {
	return nil, len(r.rows), nil
}

func TestService_Create_ValidatesStockAndPrice(t *testing.T) {
	svc := NewService(newTestRepo(), 5)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: "Amoxicillin", Stock: -1, Price: 3}); !errors.Is(err, shared.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative stock, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "Amoxicillin", Stock: 1, Price: -3}); !errors.Is(err, shared.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}

	m, err := svc.Create(ctx, CreateInput{Name: " Amoxicillin ", Stock: 0, Price: 0})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if m.Name != "Amoxicillin" || m.Stock != 0 {
		t.Fatalf("unexpected medicine: %#v", m)
	}
}

func TestService_Update_Stock(t *testing.T) {
	svc := NewService(newTestRepo(), 5)
	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateInput{Name: "Ivermectin", Stock: 10, Price: 4.5})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	now = now.Add(time.Hour)
	stock := 7
	m, err = svc.Update(ctx, m.ID, UpdateInput{Stock: &stock})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if m.Stock != 7 || m.Price != 4.5 {
		t.Fatalf("unexpected update: %#v", m)
	}
	if !m.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt to be refreshed")
	}

	neg := -2
	if _, err := svc.Update(ctx, m.ID, UpdateInput{Stock: &neg}); !errors.Is(err, shared.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Delete_Missing(t *testing.T) {
	svc := NewService(newTestRepo(), 5)

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
