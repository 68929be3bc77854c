package entity

import "time"

// Identity representa el registro de autenticación de un empleado
// (equivalente a la tabla users del sistema original).
type Identity struct {
	ID           string
	Name         string
	Email        string // único a nivel de tabla
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
