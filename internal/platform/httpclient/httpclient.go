package httpclient

import (
	"net"
	"net/http"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
)

// New crea el *http.Client que usan los adapters salientes (SDK de S3).
// El timeout cubre el request completo, incluida la subida del body.
func New(timeout time.Duration) *http.Client {
	return NewWithTransport(timeout, nil)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = newTransport()
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}

func newTransport() *http.Transport {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.DialContext = (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	tr.MaxIdleConnsPerHost = 16
	tr.ResponseHeaderTimeout = 15 * time.Second
	return tr
}
