package repository

import (
	"context"

	"github.com/ladrillera/empleados-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para Profile (DIP).
// Update devuelve domain.ErrNotFound si la fila ya no existe.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByIdentityID(ctx context.Context, identityID string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
}
