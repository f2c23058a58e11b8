package medicines

import "time"

// Medicine es un ítem de inventario. No se relaciona con otros registros.
type Medicine struct {
	ID          string
	Name        string
	Description string
	Stock       int
	Price       float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
