package repository

import (
	"context"

	"github.com/ladrillera/empleados-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Update y Delete devuelven domain.ErrNotFound si la fila ya no existe.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByProfileID(ctx context.Context, profileID string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	// Delete no cascada a Profile ni Identity (comportamiento observado del sistema original).
	Delete(ctx context.Context, id string) error
}
