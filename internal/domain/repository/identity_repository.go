package repository

import (
	"context"

	"github.com/ladrillera/empleados-api/internal/domain/entity"
)

// IdentityRepository define el puerto de persistencia para Identity (DIP).
// Create y Update devuelven domain.ErrEmailAlreadyExists ante violación del
// constraint único de email; Update devuelve domain.ErrNotFound si la fila
// ya no existe.
type IdentityRepository interface {
	Create(ctx context.Context, identity *entity.Identity) error
	GetByID(ctx context.Context, id string) (*entity.Identity, error)
	GetByEmail(ctx context.Context, email string) (*entity.Identity, error)
	Update(ctx context.Context, identity *entity.Identity) error
}
