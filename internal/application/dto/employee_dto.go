package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest entrada para crear un empleado. La contraseña no viene
// en el request: se aprovisiona una de un solo uso durante el flujo.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	LastName string `json:"last_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Document string `json:"document" validate:"required,max=20"`
	Position string `json:"position" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Salary   string `json:"salary" validate:"omitempty"`     // decimal como string, ej. "2500000.00"
	HireDate string `json:"hire_date" validate:"omitempty"`  // YYYY-MM-DD
}

// UpdateEmployeeRequest entrada para actualizar. Mismos campos que la creación;
// el flujo de actualización siempre regenera y reenvía la contraseña.
type UpdateEmployeeRequest = CreateEmployeeRequest

// EmployeeResponse salida de un empleado. Nunca incluye contraseña en claro ni hash.
type EmployeeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Document  string          `json:"document"`
	Position  string          `json:"position"`
	Phone     string          `json:"phone,omitempty"`
	Salary    decimal.Decimal `json:"salary"`
	HireDate  time.Time       `json:"hire_date"`
	ProfileID string          `json:"profile_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ModuleResponse módulo accesible por el empleado autenticado.
type ModuleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ModulesResponse envoltorio de la lista de módulos (clave modulos como el sistema original).
type ModulesResponse struct {
	Modules []ModuleResponse `json:"modulos"`
}
