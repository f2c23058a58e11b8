package health

import "time"

// Record es un evento clínico: síntomas, diagnóstico y tratamiento.
type Record struct {
	ID         string
	AnimalName string

	// MedicineName es la vacuna o medicamento aplicado, texto libre.
	MedicineName string

	Date      time.Time
	Symptoms  string
	Diagnosis string
	Treatment string

	CreatedAt time.Time
	UpdatedAt time.Time
}
