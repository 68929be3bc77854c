package postgres

import (
	"context"
	"fmt"

	"github.com/ladrillera/empleados-api/internal/domain/entity"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
)

var _ repository.ModuleRepository = (*ModuleRepo)(nil)

// ModuleRepo lectura de módulos asociados a empleados (muchos-a-muchos).
type ModuleRepo struct {
	q Querier
}

// NewModuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewModuleRepository(q Querier) *ModuleRepo {
	return &ModuleRepo{q: q}
}

// ListByEmployee lista los módulos del empleado vía la tabla puente employee_modules.
func (r *ModuleRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Module, error) {
	query := `
		SELECT m.id, m.name, COALESCE(m.description, '')
		FROM modules m
		JOIN employee_modules em ON em.module_id = m.id
		WHERE em.employee_id = $1
		ORDER BY m.name`
	rows, err := r.q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list modules by employee: %w", err)
	}
	defer rows.Close()
	var list []*entity.Module
	for rows.Next() {
		var m entity.Module
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, fmt.Errorf("scan module: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
