package respond

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-care-records/internal/domain/shared"
)

// DateLayout es el formato de fecha que usa el cliente móvil.
const DateLayout = "2006-01-02"

// PageFromQuery lee ?page=N (default 1). El tamaño lo fija el servicio.
func PageFromQuery(r *http.Request) shared.PageRequest {
	page := 1
	if v := strings.TrimSpace(r.URL.Query().Get("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	return shared.PageRequest{Page: page}
}

// ParseDate acepta YYYY-MM-DD o RFC3339 y devuelve la fecha en UTC a medianoche.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
