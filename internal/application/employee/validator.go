package employee

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/ladrillera/empleados-api/internal/application/dto"
	"github.com/ladrillera/empleados-api/internal/domain"
)

// Command es el comando inmutable que produce el validador: solo campos
// tipados y ya normalizados. Es la única entrada que aceptan los servicios
// de aprovisionamiento.
type Command struct {
	Name     string
	LastName string
	Email    string
	Document string
	Position string
	Phone    string
	Salary   decimal.Decimal
	HireDate time.Time // cero = fecha de creación
}

// FullName nombre para mostrar en la identidad y en el correo de confirmación.
func (c Command) FullName() string {
	return strings.TrimSpace(c.Name + " " + c.LastName)
}

// ValidateCreate valida y normaliza el payload de creación. Función pura:
// no consulta unicidad (eso lo resuelve el constraint de la tabla identities).
func ValidateCreate(in dto.CreateEmployeeRequest) (*Command, error) {
	return validate(in)
}

// ValidateUpdate valida el payload de actualización. Mismas reglas de campos;
// la existencia del empleado destino la verifica el coordinador antes de abrir
// la transacción.
func ValidateUpdate(in dto.UpdateEmployeeRequest) (*Command, error) {
	return validate(in)
}

func validate(in dto.CreateEmployeeRequest) (*Command, error) {
	fields := make(map[string]string)

	cmd := &Command{
		Name:     clean(in.Name),
		LastName: clean(in.LastName),
		Email:    strings.ToLower(clean(in.Email)),
		Document: clean(in.Document),
		Position: clean(in.Position),
		Phone:    clean(in.Phone),
	}

	requireMax(fields, "name", cmd.Name, 200)
	requireMax(fields, "last_name", cmd.LastName, 200)
	requireMax(fields, "document", cmd.Document, 20)
	requireMax(fields, "position", cmd.Position, 100)

	if cmd.Email == "" {
		fields["email"] = "requerido"
	} else if addr, err := mail.ParseAddress(cmd.Email); err != nil || addr.Address != cmd.Email {
		fields["email"] = "formato inválido"
	}

	if utf8.RuneCountInString(cmd.Phone) > 20 {
		fields["phone"] = "máximo 20 caracteres"
	}

	if in.Salary != "" {
		salary, err := decimal.NewFromString(clean(in.Salary))
		switch {
		case err != nil:
			fields["salary"] = "debe ser un número decimal"
		case salary.IsNegative():
			fields["salary"] = "no puede ser negativo"
		default:
			cmd.Salary = salary
		}
	}

	if in.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", clean(in.HireDate))
		if err != nil {
			fields["hire_date"] = "formato esperado YYYY-MM-DD"
		} else {
			cmd.HireDate = hireDate
		}
	}

	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}
	return cmd, nil
}

// requireMax valida presencia y longitud en runas, no en bytes: los nombres
// con tildes no deben agotar el límite antes de tiempo.
func requireMax(fields map[string]string, name, value string, max int) {
	switch {
	case value == "":
		fields[name] = "requerido"
	case utf8.RuneCountInString(value) > max:
		fields[name] = "demasiado largo"
	}
}

// clean recorta espacios y normaliza a NFC (los nombres llegan con tildes
// compuestas distintas según el cliente).
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
