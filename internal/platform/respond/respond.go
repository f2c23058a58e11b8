// Package respond centraliza la escritura de respuestas JSON y el mapeo de
// errores de dominio a status HTTP para todos los módulos.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-care-records/internal/domain/shared"
)

// HeaderStorageWarning se agrega cuando la mutación fue exitosa pero quedó un
// blob huérfano (retire fallido).
const HeaderStorageWarning = "X-Storage-Warning"

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// MessageBody es el cuerpo de errores y confirmaciones.
type MessageBody struct {
	Message string `json:"message"`
}

// Message escribe {"message": msg} con el status dado.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Message: msg})
}

// Error mapea errores de dominio a status. notFoundMsg personaliza el 404.
func Error(w http.ResponseWriter, err error, notFoundMsg string) {
	if notFoundMsg == "" {
		notFoundMsg = "not found"
	}

	switch {
	case errors.Is(err, shared.ErrReferencedEntityNotFound):
		Message(w, http.StatusNotFound, "animal not found")
	case errors.Is(err, shared.ErrNotFound):
		Message(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, shared.ErrInvalidInput):
		Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrStorageWrite):
		Message(w, http.StatusBadGateway, "attachment storage unavailable")
	default:
		Message(w, http.StatusInternalServerError, "internal error")
	}
}

// Page es el sobre de las respuestas paginadas.
type Page[T any] struct {
	Data     []T `json:"data"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// NewPage convierte una página de dominio aplicando fn a cada item.
func NewPage[In, Out any](p shared.Page[In], fn func(In) Out) Page[Out] {
	out := make([]Out, 0, len(p.Items))
	for _, it := range p.Items {
		out = append(out, fn(it))
	}
	return Page[Out]{
		Data:     out,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
	}
}
