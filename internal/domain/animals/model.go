package animals

import "time"

// Animal es la identidad de un animal registrado.
// Name es la clave con la que los demás módulos lo referencian;
// no es único a nivel de storage.
type Animal struct {
	ID string

	Name    string
	Species string // "Dog", "Cat", ... texto libre
	Owner   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
