package growth

import (
	"context"
	"strings"
	"time"

	"pet-care-records/internal/domain/shared"

	"github.com/google/uuid"
)

// Attachments es lo que el servicio usa de attachments.Manager.
type Attachments interface {
	Commit(ctx context.Context, data []byte, contentType string) (string, error)
	RetireBestEffort(ctx context.Context, path string) *shared.StorageDeleteError
	Discard(ctx context.Context, path string)
}

type Options struct {
	PageSize      int
	RequireAnimal bool
}

type Service struct {
	repo        Repository
	attachments Attachments
	animals     shared.AnimalLookup
	opts        Options
	now         func() time.Time
}

func NewService(repo Repository, att Attachments, animals shared.AnimalLookup, opts Options) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = shared.DefaultPageSize
	}
	return &Service{
		repo:        repo,
		attachments: att,
		animals:     animals,
		opts:        opts,
		now:         time.Now,
	}
}

type CreateInput struct {
	AnimalName string
	Date       time.Time
	Weight     float64
	Height     float64
	Notes      string
	Photo      Photo
}

// Create escribe la foto y después la fila. Si la fila no se escribe
// (error o request cancelado) la foto se descarta.
func (s *Service) Create(ctx context.Context, in CreateInput) (Result, error) {
	animal := strings.TrimSpace(in.AnimalName)
	if animal == "" || in.Date.IsZero() || in.Weight < 0 || in.Height < 0 {
		return Result{}, shared.ErrInvalidInput
	}
	if in.Photo.empty() {
		return Result{}, shared.ErrInvalidInput
	}
	if s.opts.RequireAnimal {
		if err := shared.RequireAnimal(ctx, s.animals, animal); err != nil {
			return Result{}, err
		}
	}

	path, err := s.attachments.Commit(ctx, in.Photo.Data, in.Photo.ContentType)
	if err != nil {
		return Result{}, err
	}

	now := s.now()
	rec := Record{
		ID:         uuid.NewString(),
		AnimalName: animal,
		Date:       in.Date,
		Weight:     in.Weight,
		Height:     in.Height,
		PhotoPath:  path,
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := ctx.Err(); err != nil {
		s.attachments.Discard(ctx, path)
		return Result{}, err
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.attachments.Discard(ctx, path)
		return Result{}, err
	}
	return Result{Record: rec}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, shared.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// UpdateInput: Photo nil deja la foto actual intacta.
type UpdateInput struct {
	AnimalName *string
	Date       *time.Time
	Weight     *float64
	Height     *float64
	Notes      *string
	Photo      *Photo
}

// Update con foto: Commit(nueva) -> Update(fila) -> Retire(vieja).
// Si falla la fila se descarta la nueva y la vieja sigue referenciada.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Result, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return Result{}, err
	}

	if in.AnimalName != nil {
		name := strings.TrimSpace(*in.AnimalName)
		if name == "" {
			return Result{}, shared.ErrInvalidInput
		}
		if s.opts.RequireAnimal && name != rec.AnimalName {
			if err := shared.RequireAnimal(ctx, s.animals, name); err != nil {
				return Result{}, err
			}
		}
		rec.AnimalName = name
	}
	if in.Date != nil {
		if in.Date.IsZero() {
			return Result{}, shared.ErrInvalidInput
		}
		rec.Date = *in.Date
	}
	if in.Weight != nil {
		if *in.Weight < 0 {
			return Result{}, shared.ErrInvalidInput
		}
		rec.Weight = *in.Weight
	}
	if in.Height != nil {
		if *in.Height < 0 {
			return Result{}, shared.ErrInvalidInput
		}
		rec.Height = *in.Height
	}
	if in.Notes != nil {
		rec.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Photo != nil && in.Photo.empty() {
		return Result{}, shared.ErrInvalidInput
	}

	var oldPath, newPath string
	if in.Photo != nil {
		newPath, err = s.attachments.Commit(ctx, in.Photo.Data, in.Photo.ContentType)
		if err != nil {
			return Result{}, err
		}
		oldPath = rec.PhotoPath
		rec.PhotoPath = newPath
	}
	rec.UpdatedAt = s.now()

	err = ctx.Err()
	if err == nil {
		err = s.repo.Update(ctx, rec)
	}
	if err != nil {
		if newPath != "" {
			s.attachments.Discard(ctx, newPath)
		}
		return Result{}, err
	}

	res := Result{Record: rec}
	if oldPath != "" && oldPath != newPath {
		// La fila ya apunta a la nueva foto: el retiro no depende del request.
		if de := s.attachments.RetireBestEffort(context.WithoutCancel(ctx), oldPath); de != nil {
			res.RetireErr = de
		}
	}
	return res, nil
}

// Delete retira la foto (best effort) y después borra la fila.
// Un fallo al borrar la foto no impide el borrado; se informa en Result.
func (s *Service) Delete(ctx context.Context, id string) (Result, error) {
	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return Result{}, err
	}

	res := Result{Record: rec}
	if de := s.attachments.RetireBestEffort(ctx, rec.PhotoPath); de != nil {
		res.RetireErr = de
	}

	if err := s.repo.Delete(ctx, rec.ID); err != nil {
		return Result{}, err
	}
	return res, nil
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
