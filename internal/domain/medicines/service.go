package medicines

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
	return &Service{repo: repo, now: time.Now, pageSize: pageSize}
}

type CreateInput struct {
	Name        string
	Description string
	Stock       int
	Price       float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medicine, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Stock < 0 || in.Price < 0 {
		return Medicine{}, shared.ErrInvalidInput
	}

	now := s.now()
	m := Medicine{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Stock:       in.Stock,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Medicine{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medicine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medicine{}, shared.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

type UpdateInput struct {
	Name        *string
	Description *string
	Stock       *int
	Price       *float64
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Medicine, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return Medicine{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Medicine{}, shared.ErrInvalidInput
		}
		m.Name = name
	}
	if in.Description != nil {
		m.Description = strings.TrimSpace(*in.Description)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return Medicine{}, shared.ErrInvalidInput
		}
		m.Stock = *in.Stock
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return Medicine{}, shared.ErrInvalidInput
		}
		m.Price = *in.Price
	}
	m.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, m); err != nil {
		return Medicine{}, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return shared.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, req shared.PageRequest) (shared.Page[Medicine], error) {
	req = req.Normalize(s.pageSize)
	req.Size = s.pageSize

	items, total, err := s.repo.List(ctx, req.Offset(), req.Limit())
	if err != nil {
		return shared.Page[Medicine]{}, err
	}
	return shared.Page[Medicine]{Items: items, Page: req.Page, PageSize: req.Size, Total: total}, nil
}
