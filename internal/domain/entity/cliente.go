package entity

import "time"

// Cliente representa un cliente registrado en el sistema.
// El ID es un identificador sustituto asignado por la base de datos en la
// creación (BIGSERIAL); nunca lo envía el llamador y nunca cambia.
// El CPF es la clave natural (11 dígitos) y es inmutable después de creado.
type Cliente struct {
	ID        int64
	Nome      string
	Email     string
	CPF       string
	CreatedAt time.Time
	UpdatedAt time.Time
}
