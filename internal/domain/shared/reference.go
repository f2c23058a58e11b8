package shared

import (
	"context"
	"fmt"
)

// AnimalLookup resuelve la referencia débil por nombre de animal.
// No es una foreign key: el animal puede renombrarse o borrarse después.
type AnimalLookup interface {
	HasAnimalNamed(ctx context.Context, name string) (bool, error)
}

// RequireAnimal devuelve ErrReferencedEntityNotFound si no existe un animal
// con ese nombre en este momento.
func RequireAnimal(ctx context.Context, lookup AnimalLookup, name string) error {
	if lookup == nil {
		return fmt.Errorf("animal lookup not configured")
	}
	ok, err := lookup.HasAnimalNamed(ctx, name)
	if err != nil {
		return fmt.Errorf("resolve animal %q: %w", name, err)
	}
	if !ok {
		return fmt.Errorf("animal %q: %w", name, ErrReferencedEntityNotFound)
	}
	return nil
}
