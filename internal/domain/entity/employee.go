package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa al empleado de la ladrillera, enlazado a un Profile.
type Employee struct {
	ID        string
	Name      string
	LastName  string
	Document  string // cédula
	Position  string // cargo
	Phone     string
	Salary    decimal.Decimal
	HireDate  time.Time
	ProfileID string // inmutable después de la creación
	CreatedAt time.Time
	UpdatedAt time.Time
}
