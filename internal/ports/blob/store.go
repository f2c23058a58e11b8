package blob

import (
	"context"
	"errors"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound lo devuelve Delete cuando el path no existe.
var ErrNotFound = errors.New("blob not found")

// Store es el almacenamiento binario opaco (disco público, S3, memoria).
// El core no lee blobs: los clientes los sirven directo por path.
type Store interface {
	// Put escribe data bajo namespace y devuelve un path nuevo, sin colisiones.
	Put(ctx context.Context, namespace string, data []byte, contentType string) (string, error)
	// Delete borra el blob. Si no existe devuelve ErrNotFound.
	Delete(ctx context.Context, path string) error
}

// NewKey genera "<namespace>/<uuid><ext>" a partir del content type.
func NewKey(namespace, contentType string) string {
	ns := strings.Trim(strings.TrimSpace(namespace), "/")
	name := uuid.NewString() + extensionFor(contentType)
	if ns == "" {
		return name
	}
	return path.Join(ns, name)
}

func extensionFor(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch mt {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	}
	exts, err := mime.ExtensionsByType(mt)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
