// Package shared agrupa los errores y tipos de paginación que comparten
// los módulos de dominio (animals, vaccinations, health, growth, medicines).
package shared

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrReferencedEntityNotFound se devuelve cuando el nombre de animal
	// referenciado por un registro no existe en el registro de animales.
	ErrReferencedEntityNotFound = errors.New("referenced entity not found")

	ErrStorageWrite  = errors.New("storage write failed")
	ErrStorageDelete = errors.New("storage delete failed")
)

// StorageWriteError: el blob store rechazó la escritura. Aborta la mutación.
type StorageWriteError struct {
	Namespace string
	Err       error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("storage write (namespace=%s): %v", e.Namespace, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

func (e *StorageWriteError) Is(target error) bool { return target == ErrStorageWrite }

// StorageDeleteError: no se pudo borrar el blob en Path. No aborta la
// mutación del registro; el blob queda huérfano para reconciliación.
type StorageDeleteError struct {
	Path string
	Err  error
}

func (e *StorageDeleteError) Error() string {
	return fmt.Sprintf("storage delete (path=%s): %v", e.Path, e.Err)
}

func (e *StorageDeleteError) Unwrap() error { return e.Err }

func (e *StorageDeleteError) Is(target error) bool { return target == ErrStorageDelete }
