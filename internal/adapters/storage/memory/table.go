package memory

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-care-records/internal/domain/shared"
)

// table es el almacenamiento común de los repos in-memory.
// seq registra el orden de inserción: desempata created_at iguales y
// define "el primero" en búsquedas por nombre.
type table[T any] struct {
	mu      sync.RWMutex
	byID    map[string]row[T]
	nextSeq uint64

	created func(T) time.Time
}

type row[T any] struct {
	seq uint64
	v   T
}

func newTable[T any](created func(T) time.Time) *table[T] {
	return &table[T]{
		byID:    make(map[string]row[T]),
		created: created,
	}
}

func (t *table[T]) insert(id string, v T) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("id required")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byID[id]; exists {
		return errors.New("row already exists")
	}
	t.nextSeq++
	t.byID[id] = row[T]{seq: t.nextSeq, v: v}
	return nil
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, shared.ErrNotFound
	}
	return r.v, nil
}

func (t *table[T]) replace(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.byID[id]
	if !ok {
		return shared.ErrNotFound
	}
	r.v = v
	t.byID[id] = r
	return nil
}

func (t *table[T]) remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byID[id]; !ok {
		return shared.ErrNotFound
	}
	delete(t.byID, id)
	return nil
}

// first devuelve la fila más antigua (por inserción) que cumple match.
func (t *table[T]) first(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var (
		best  row[T]
		found bool
	)
	for _, r := range t.byID {
		if !match(r.v) {
			continue
		}
		if !found || r.seq < best.seq {
			best, found = r, true
		}
	}
	return best.v, found
}

// page ordena más recientes primero y corta [offset, offset+limit).
func (t *table[T]) page(offset, limit int) ([]T, int) {
	t.mu.RLock()
	rows := make([]row[T], 0, len(t.byID))
	for _, r := range t.byID {
		rows = append(rows, r)
	}
	t.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		ci, cj := t.created(rows[i].v), t.created(rows[j].v)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return rows[i].seq > rows[j].seq
	})

	total := len(rows)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= total {
		return []T{}, total
	}
	end := min(offset+limit, total)

	out := make([]T, 0, end-offset)
	for _, r := range rows[offset:end] {
		out = append(out, r.v)
	}
	return out, total
}
