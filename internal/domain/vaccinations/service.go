package vaccinations

import (
	"context"
	"strings"
	"time"

	"pet-care-records/internal/domain/shared"

	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	animals  shared.AnimalLookup
	now      func() time.Time
	pageSize int
}

func NewService(repo Repository, animals shared.AnimalLookup, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = shared.DefaultPageSize
	}
	return &Service{
		repo:     repo,
		animals:  animals,
		now:      time.Now,
		pageSize: pageSize,
	}
}

type CreateInput struct {
	AnimalName    string
	VaccineName   string
	ScheduledDate time.Time
	Status        Status
	Notes         string
}

// Create exige que exista un animal con AnimalName en este momento.
// Si no existe devuelve shared.ErrReferencedEntityNotFound y no escribe nada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Vaccination, error) {
	animal := strings.TrimSpace(in.AnimalName)
	vaccine := strings.TrimSpace(in.VaccineName)
	if animal == "" || vaccine == "" || in.ScheduledDate.IsZero() {
		return Vaccination{}, shared.ErrInvalidInput
	}
	status := StatusPending
	if strings.TrimSpace(string(in.Status)) != "" {
		st, ok := ParseStatus(string(in.Status))
		if !ok {
			return Vaccination{}, shared.ErrInvalidInput
		}
		status = st
	}

	if err := shared.RequireAnimal(ctx, s.animals, animal); err != nil {
		return Vaccination{}, err
	}

	now := s.now()
	v := Vaccination{
		ID:            uuid.NewString(),
		AnimalName:    animal,
		VaccineName:   vaccine,
		ScheduledDate: in.ScheduledDate,
		Status:        status,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vaccination{}, shared.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateInput no incluye el animal: una vacunación no se reasigna.
type UpdateInput struct {
	VaccineName   *string
	ScheduledDate *time.Time
	Status        *Status
	Notes         *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Vaccination, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return Vaccination{}, err
	}

	if in.VaccineName != nil {
		name := strings.TrimSpace(*in.VaccineName)
		if name == "" {
			return Vaccination{}, shared.ErrInvalidInput
		}
		v.VaccineName = name
	}
	if in.ScheduledDate != nil {
		if in.ScheduledDate.IsZero() {
			return Vaccination{}, shared.ErrInvalidInput
		}
		v.ScheduledDate = *in.ScheduledDate
	}
	if in.Status != nil {
		st, ok := ParseStatus(string(*in.Status))
		if !ok {
			return Vaccination{}, shared.ErrInvalidInput
		}
		v.Status = st
	}
	if in.Notes != nil {
		v.Notes = strings.TrimSpace(*in.Notes)
	}
	v.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, v); err != nil {
		return Vaccination{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return shared.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, req shared.PageRequest) (shared.Page[Vaccination], error) {
	req = req.Normalize(s.pageSize)
	req.Size = s.pageSize

	items, total, err := s.repo.List(ctx, req.Offset(), req.Limit())
	if err != nil {
		return shared.Page[Vaccination]{}, err
	}
	return shared.Page[Vaccination]{Items: items, Page: req.Page, PageSize: req.Size, Total: total}, nil
}
