// Package memory es un blob store en memoria para dev y tests.
package memory

import (
	"context"
	"errors"
	"sync"

	"pet-care-records/internal/ports/blob"
)

type object struct {
	data        []byte
	contentType string
}

type Store struct {
	mu   sync.RWMutex
	objs map[string]object

	// fallos inyectados para tests (nil = sin fallo)
	putErr    error
	deleteErr error
}

func NewStore() *Store {
	return &Store{objs: make(map[string]object)}
}

var _ blob.Store = (*Store)(nil)

func (s *Store) Put(ctx context.Context, namespace string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.putErr != nil {
		return "", s.putErr
	}
	if len(data) == 0 {
		return "", errors.New("empty blob")
	}

	key := blob.NewKey(namespace, contentType)
	for {
		if _, exists := s.objs[key]; !exists {
			break
		}
		key = blob.NewKey(namespace, contentType)
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	s.objs[key] = object{data: cp, contentType: contentType}
	return key, nil
}

func (s *Store) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.objs[path]; !ok {
		return blob.ErrNotFound
	}
	delete(s.objs, path)
	return nil
}

// Exists indica si path es alcanzable.
func (s *Store) Exists(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objs[path]
	return ok
}

// Get devuelve una copia del contenido (solo tests).
func (s *Store) Get(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objs[path]
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(o.data))
	copy(cp, o.data)
	return cp, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objs)
}

// SetFailures hace fallar Put y/o Delete con los errores dados.
func (s *Store) SetFailures(putErr, deleteErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putErr = putErr
	s.deleteErr = deleteErr
}
