package employee

import (
	"context"

	"github.com/ladrillera/empleados-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Es la frontera atómica del aprovisionamiento: si fn devuelve error
// se hace Rollback de todo (identity, profile, employee); si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		identityRepo repository.IdentityRepository,
		profileRepo repository.ProfileRepository,
		employeeRepo repository.EmployeeRepository,
	) error) error
}

// Mailer envía la notificación de confirmación con la contraseña aprovisionada.
// Se invoca dentro de la transacción: un fallo de envío aborta la persistencia.
type Mailer interface {
	SendConfirmation(ctx context.Context, name, email, plainPassword string) error
}
