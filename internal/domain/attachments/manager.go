package attachments

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-care-records/internal/domain/shared"
	"pet-care-records/internal/platform/logger"
	"pet-care-records/internal/ports/blob"
)

// NamespaceGrowthPhotos es el namespace lógico de las fotos de crecimiento.
const NamespaceGrowthPhotos = "growth-photos"

// compensateTimeout acota el borrado compensatorio cuando el request ya fue cancelado.
const compensateTimeout = 10 * time.Second

// Manager controla el ciclo de vida de los blobs adjuntos a un registro.
// Orden de reemplazo: Commit(nuevo) -> mutar fila -> Retire(viejo).
type Manager struct {
	store     blob.Store
	namespace string
	log       logger.Logger
}

func NewManager(store blob.Store, namespace string, log logger.Logger) *Manager {
	if strings.TrimSpace(namespace) == "" {
		namespace = NamespaceGrowthPhotos
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{
		store:     store,
		namespace: namespace,
		log:       log.With(map[string]any{"component": "attachments", "namespace": namespace}),
	}
}

// Commit escribe data en un path nuevo y lo devuelve.
// Cualquier fallo del store se devuelve como *shared.StorageWriteError.
func (m *Manager) Commit(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", shared.ErrInvalidInput
	}

	path, err := m.store.Put(ctx, m.namespace, data, contentType)
	if err != nil {
		return "", &shared.StorageWriteError{Namespace: m.namespace, Err: err}
	}
	if strings.TrimSpace(path) == "" {
		return "", &shared.StorageWriteError{Namespace: m.namespace, Err: errors.New("store returned empty path")}
	}

	m.log.Debug("attachment committed", map[string]any{"path": path, "size": len(data)})
	return path, nil
}

// Retire borra el blob en path. Un path vacío o ya ausente no es error.
// Cualquier otro fallo se devuelve como *shared.StorageDeleteError.
func (m *Manager) Retire(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	err := m.store.Delete(ctx, path)
	switch {
	case err == nil:
		m.log.Debug("attachment retired", map[string]any{"path": path})
		return nil
	case errors.Is(err, blob.ErrNotFound):
		return nil
	default:
		return &shared.StorageDeleteError{Path: path, Err: err}
	}
}

// RetireBestEffort hace Retire y, si falla, deja constancia del huérfano en
// nivel warn. El error se devuelve para que el caller lo reporte, nunca para abortar.
func (m *Manager) RetireBestEffort(ctx context.Context, path string) *shared.StorageDeleteError {
	err := m.Retire(ctx, path)
	if err == nil {
		return nil
	}

	var de *shared.StorageDeleteError
	if !errors.As(err, &de) {
		de = &shared.StorageDeleteError{Path: path, Err: err}
	}
	m.log.Warn("attachment retire failed, blob left orphaned", map[string]any{
		"path": path,
		"err":  de.Err,
	})
	return de
}

// Discard compensa un Commit cuya fila no llegó a escribirse.
// Corre desacoplado de la cancelación de ctx: si el request murió, el blob
// recién escrito igual debe retirarse.
func (m *Manager) Discard(ctx context.Context, path string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()

	if de := m.RetireBestEffort(cctx, path); de == nil {
		m.log.Info("uncommitted attachment discarded", map[string]any{"path": path})
	}
}
