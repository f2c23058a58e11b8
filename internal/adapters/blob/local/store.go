// Package local guarda blobs en un directorio del filesystem (equivalente
// al disco "public" que sirve las fotos al cliente móvil).
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pet-care-records/internal/ports/blob"
)

var ErrInvalidPath = errors.New("invalid blob path")

type Store struct {
	root string
}

// NewStore crea root si no existe.
func NewStore(root string) (*Store, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("local blob store: root dir required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("local blob store: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("local blob store: create root: %w", err)
	}
	return &Store{root: abs}, nil
}

var _ blob.Store = (*Store)(nil)

func (s *Store) Root() string { return s.root }

func (s *Store) Put(ctx context.Context, namespace string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := blob.NewKey(namespace, contentType)
	full, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("local blob store: mkdir: %w", err)
	}

	// Escribimos a un tmp y renombramos: nunca queda un archivo a medias en key.
	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("local blob store: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("local blob store: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("local blob store: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("local blob store: close: %w", err)
	}

	// O_EXCL no aplica a rename; el uuid del key ya evita colisiones.
	if err := os.Rename(tmpName, full); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("local blob store: rename: %w", err)
	}
	return key, nil
}

func (s *Store) Delete(ctx context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return blob.ErrNotFound
		}
		return fmt.Errorf("local blob store: remove: %w", err)
	}
	return nil
}

// Exists indica si path es alcanzable.
func (s *Store) Exists(path string) bool {
	full, err := s.resolve(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// resolve traduce un key relativo a ruta absoluta dentro de root.
func (s *Store) resolve(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrInvalidPath
	}
	full := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", ErrInvalidPath
	}
	return full, nil
}
