package shared

import "math"

// DefaultPageSize replica el paginate(5) del cliente móvil.
const DefaultPageSize = 5

// PageRequest es paginación por offset: page empieza en 1.
type PageRequest struct {
	Page int
	Size int
}

// Normalize corrige page < 1 y size <= 0 usando el tamaño por defecto.
func (p PageRequest) Normalize(defaultSize int) PageRequest {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	return p
}

// Offset satura en math.MaxInt: una página enorme queda más allá del final
// (página vacía) en lugar de desbordar a un offset negativo.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Size
}

func (p PageRequest) Limit() int { return p.Size }

// Page es una página de resultados, más recientes primero.
type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int
}
