package growth

import "time"

// Record es una medición de crecimiento con exactamente una foto propia.
type Record struct {
	ID         string
	AnimalName string
	Date       time.Time
	Weight     float64
	Height     float64

	// PhotoPath es el path opaco del blob en el store; ningún otro registro lo comparte.
	PhotoPath string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Photo es el contenido subido por el cliente.
type Photo struct {
	Data        []byte
	ContentType string
}

func (p *Photo) empty() bool { return p == nil || len(p.Data) == 0 }

// Result acompaña a las mutaciones exitosas. RetireErr != nil indica que
// el blob anterior no pudo borrarse y quedó huérfano.
type Result struct {
	Record    Record
	RetireErr error
}
