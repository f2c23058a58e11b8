package vaccinations

import (
	"strings"
	"time"
)

// Status es un enum plano: se permite ir y volver entre Pending y Completed.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// ParseStatus normaliza mayúsculas/minúsculas. ok=false si no es válido.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "completed":
		return StatusCompleted, true
	default:
		return "", false
	}
}

type Vaccination struct {
	ID string

	// AnimalName referencia a animals.Animal.Name; se valida solo al crear.
	AnimalName string

	VaccineName   string
	ScheduledDate time.Time
	Status        Status
	Notes         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
