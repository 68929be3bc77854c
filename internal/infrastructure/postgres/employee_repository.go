package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ladrillera/empleados-api/internal/domain"
	"github.com/ladrillera/empleados-api/internal/domain/entity"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, name, last_name, document, position, phone, salary, hire_date, profile_id, created_at, updated_at`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado nuevo.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	phone := (*string)(nil)
	if e.Phone != "" {
		phone = &e.Phone
	}
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.LastName, e.Document, e.Position, phone,
		e.Salary, e.HireDate, e.ProfileID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. nil sin error si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(r.q.QueryRow(ctx, query, id), "get employee by id")
}

// GetByProfileID obtiene el empleado enlazado a un profile.
func (r *EmployeeRepo) GetByProfileID(ctx context.Context, profileID string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE profile_id = $1`
	return scanEmployee(r.q.QueryRow(ctx, query, profileID), "get employee by profile")
}

// Update actualiza los atributos del empleado. profile_id no se toca:
// el enlace es inmutable después de la creación. Fila ya inexistente
// (borrada entre la carga previa y la tx) -> domain.ErrNotFound, para que
// el coordinador aborte en vez de confirmar un update fantasma.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, last_name = $3, document = $4, position = $5, phone = $6,
		    salary = $7, hire_date = $8, updated_at = $9
		WHERE id = $1`
	phone := (*string)(nil)
	if e.Phone != "" {
		phone = &e.Phone
	}
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.Name, e.LastName, e.Document, e.Position, phone,
		e.Salary, e.HireDate, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista empleados con paginación.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + ` FROM employees
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina un empleado por ID. Las filas de profiles e identities quedan
// intactas. Fila ya inexistente -> domain.ErrNotFound.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row, op string) (*entity.Employee, error) {
	e, err := scanEmployeeRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

func scanEmployeeRow(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var phone *string
	err := row.Scan(
		&e.ID, &e.Name, &e.LastName, &e.Document, &e.Position, &phone,
		&e.Salary, &e.HireDate, &e.ProfileID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone != nil {
		e.Phone = *phone
	}
	return &e, nil
}
