package animals

import (
	"context"
	"errors"

	"pet-care-records/internal/domain/shared"
)

// HasAnimalNamed resuelve la referencia por nombre que usan los registros
// médicos. Se expone así para no importar animals desde esos módulos.
func (s *Service) HasAnimalNamed(ctx context.Context, name string) (bool, error) {
	_, err := s.FindByName(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, shared.ErrNotFound) {
		return false, nil
	}
	return false, err
}
