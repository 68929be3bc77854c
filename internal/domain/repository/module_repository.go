package repository

import (
	"context"

	"github.com/ladrillera/empleados-api/internal/domain/entity"
)

// ModuleRepository puerto de lectura de módulos asociados a un empleado.
type ModuleRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Module, error)
}
