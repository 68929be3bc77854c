package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ladrillera/empleados-api/internal/application/employee"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
)

// Ensure TxRunner implements employee.TxRunner.
var _ employee.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Es la frontera
// atómica del aprovisionamiento de empleados: identity + profile + employee + correo
// se confirman o se revierten juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// El Rollback diferido cubre también panics dentro de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(
	identityRepo repository.IdentityRepository,
	profileRepo repository.ProfileRepository,
	employeeRepo repository.EmployeeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	identityRepo := NewIdentityRepository(tx)
	profileRepo := NewProfileRepository(tx)
	employeeRepo := NewEmployeeRepository(tx)

	if err := fn(identityRepo, profileRepo, employeeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
