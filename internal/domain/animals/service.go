package animals

import (
	"context"
	"strings"
	"time"

	"pet-care-records/internal/domain/shared"

	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	now      func() time.Time
	pageSize int
}

func NewService(repo Repository, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = shared.DefaultPageSize
	}
	return &Service{
		repo:     repo,
		now:      time.Now,
		pageSize: pageSize,
	}
}

type CreateInput struct {
	Name    string
	Species string
	Owner   string
}

// Create no valida unicidad del nombre: dos animales pueden llamarse igual.
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	owner := strings.TrimSpace(in.Owner)
	if name == "" || species == "" || owner == "" {
		return Animal{}, shared.ErrInvalidInput
	}

	now := s.now()
	a := Animal{
		ID:        uuid.NewString(),
		Name:      name,
		Species:   species,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, shared.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByName(ctx context.Context, name string) (Animal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Animal{}, shared.ErrNotFound
	}
	return s.repo.FindByName(ctx, name)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name    *string
	Species *string
	Owner   *string
}

// Update no propaga el cambio de nombre a vacunaciones/salud/crecimiento:
// esos registros siguen apuntando al nombre anterior.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Animal{}, shared.ErrInvalidInput
		}
		a.Name = v
	}
	if in.Species != nil {
		v := strings.TrimSpace(*in.Species)
		if v == "" {
			return Animal{}, shared.ErrInvalidInput
		}
		a.Species = v
	}
	if in.Owner != nil {
		v := strings.TrimSpace(*in.Owner)
		if v == "" {
			return Animal{}, shared.ErrInvalidInput
		}
		a.Owner = v
	}
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// Delete borra solo la fila del animal. Sin cascada ni bloqueo:
// los registros médicos que lo nombran quedan huérfanos.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return shared.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, req shared.PageRequest) (shared.Page[Animal], error) {
	req = req.Normalize(s.pageSize)
	req.Size = s.pageSize

	items, total, err := s.repo.List(ctx, req.Offset(), req.Limit())
	if err != nil {
		return shared.Page[Animal]{}, err
	}
	return shared.Page[Animal]{
		Items:    items,
		Page:     req.Page,
		PageSize: req.Size,
		Total:    total,
	}, nil
}
