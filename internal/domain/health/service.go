package health

import (
	"context"
	"strings"
	"time"

	"pet-care-records/internal/domain/shared"

	"github.com/google/uuid"
)

type Options struct {
	PageSize int

	// RequireAnimal activa el chequeo de existencia del animal en Create y
	// cuando Update cambia AnimalName. Por defecto el nombre no se valida.
	RequireAnimal bool
}

type Service struct {
	repo    Repository
	animals shared.AnimalLookup
	opts    Options
	now     func() time.Time
}

func NewService(repo Repository, animals shared.AnimalLookup, opts Options) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = shared.DefaultPageSize
	}
	return &Service{
		repo:    repo,
		animals: animals,
		opts:    opts,
		now:     time.Now,
	}
}

type CreateInput struct {
	AnimalName   string
	MedicineName string
	Date         time.Time
	Symptoms     string
	Diagnosis    string
	Treatment    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	animal := strings.TrimSpace(in.AnimalName)
	if animal == "" || in.Date.IsZero() {
		return Record{}, shared.ErrInvalidInput
	}
	if s.opts.RequireAnimal {
		if err := shared.RequireAnimal(ctx, s.animals, animal); err != nil {
			return Record{}, err
		}
	}

	now := s.now()
	rec := Record{
		ID:           uuid.NewString(),
		AnimalName:   animal,
		MedicineName: strings.TrimSpace(in.MedicineName),
		Date:         in.Date,
		Symptoms:     strings.TrimSpace(in.Symptoms),
		Diagnosis:    strings.TrimSpace(in.Diagnosis),
		Treatment:    strings.TrimSpace(in.Treatment),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, shared.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type UpdateInput struct {
	AnimalName   *string
	MedicineName *string
	Date         *time.Time
	Symptoms     *string
	Diagnosis    *string
	Treatment    *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}

	if in.AnimalName != nil {
		name := strings.TrimSpace(*in.AnimalName)
		if name == "" {
			return Record{}, shared.ErrInvalidInput
		}
		if s.opts.RequireAnimal && name != rec.AnimalName {
			if err := shared.RequireAnimal(ctx, s.animals, name); err != nil {
				return Record{}, err
			}
		}
		rec.AnimalName = name
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return Record{}, shared.ErrInvalidInput
		}
		rec.Date = *in.Date
	}
	if in.MedicineName != nil {
		rec.MedicineName = strings.TrimSpace(*in.MedicineName)
	}
	if in.Symptoms != nil {
		rec.Symptoms = strings.TrimSpace(*in.Symptoms)
	}
	if in.Diagnosis != nil {
		rec.Diagnosis = strings.TrimSpace(*in.Diagnosis)
	}
	if in.Treatment != nil {
		rec.Treatment = strings.TrimSpace(*in.Treatment)
	}
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return shared.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, req shared.PageRequest) (shared.Page[Record], error) {
	req = req.Normalize(s.opts.PageSize)
	req.Size = s.opts.PageSize

	items, total, err := s.repo.List(ctx, req.Offset(), req.Limit())
	if err != nil {
		return shared.Page[Record]{}, err
	}
	return shared.Page[Record]{Items: items, Page: req.Page, PageSize: req.Size, Total: total}, nil
}
