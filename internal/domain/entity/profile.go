package entity

import "time"

// Profile representa el registro usuario que enlaza una Identity con los datos
// de negocio del empleado. Guarda el eco en claro de la contraseña aprovisionada
// (columna normal_password, visibilidad administrativa); ese campo nunca sale
// de la capa de persistencia hacia una respuesta HTTP.
type Profile struct {
	ID            string
	Email         string
	PlainPassword string // eco de la contraseña de un solo uso vigente
	IdentityID    string // 1:1 con identities, constraint UNIQUE
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
