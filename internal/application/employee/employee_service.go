package employee

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ladrillera/empleados-api/internal/domain/entity"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
)

// EmployeeService crea y actualiza la fila de empleado. No valida la
// consistencia identity/profile: confía en el orden del coordinador.
type EmployeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService construye el servicio sobre el repositorio recibido.
func NewEmployeeService(repo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// Create inserta un Employee poblado desde el comando, enlazado a profile.ID.
func (s *EmployeeService) Create(ctx context.Context, cmd *Command, profile *entity.Profile) (*entity.Employee, error) {
	now := time.Now()
	hireDate := cmd.HireDate
	if hireDate.IsZero() {
		hireDate = now
	}
	emp := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      cmd.Name,
		LastName:  cmd.LastName,
		Document:  cmd.Document,
		Position:  cmd.Position,
		Phone:     cmd.Phone,
		Salary:    cmd.Salary,
		HireDate:  hireDate,
		ProfileID: profile.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// Update mezcla los atributos del comando sobre la fila existente.
// El enlace a Profile es inmutable después de la creación.
func (s *EmployeeService) Update(ctx context.Context, emp *entity.Employee, cmd *Command) (*entity.Employee, error) {
	emp.Name = cmd.Name
	emp.LastName = cmd.LastName
	emp.Document = cmd.Document
	emp.Position = cmd.Position
	emp.Phone = cmd.Phone
	emp.Salary = cmd.Salary
	if !cmd.HireDate.IsZero() {
		emp.HireDate = cmd.HireDate
	}
	emp.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}
