package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-care-records/internal/platform/logger"
	"pet-care-records/internal/platform/respond"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover reemplaza chimw.Recoverer: registra el panic con el logger de la
// app y responde 500 en JSON.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"request_id": chimw.GetReqID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      fmt.Sprint(rec),
					"stack":      string(debug.Stack()),
				})
				respond.Message(w, http.StatusInternalServerError, "internal error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
