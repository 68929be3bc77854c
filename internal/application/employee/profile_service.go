package employee

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ladrillera/empleados-api/internal/domain"
	"github.com/ladrillera/empleados-api/internal/domain/entity"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
)

// ProfileAttrs atributos de actualización parcial de un Profile:
// solo los punteros no nulos se aplican.
type ProfileAttrs struct {
	Email         *string
	PlainPassword *string
	IdentityID    *string
}

// ProfileService crea y actualiza el registro usuario enlazado a una Identity.
type ProfileService struct {
	repo         repository.ProfileRepository
	identityRepo repository.IdentityRepository
}

// NewProfileService construye el servicio sobre los repositorios recibidos.
func NewProfileService(repo repository.ProfileRepository, identityRepo repository.IdentityRepository) *ProfileService {
	return &ProfileService{repo: repo, identityRepo: identityRepo}
}

// Create inserta un Profile enlazado a identity.ID, registrando el email y el
// eco en claro de la contraseña aprovisionada.
func (s *ProfileService) Create(ctx context.Context, identity *entity.Identity, plainPassword string) (*entity.Profile, error) {
	now := time.Now()
	profile := &entity.Profile{
		ID:            uuid.New().String(),
		Email:         identity.Email,
		PlainPassword: plainPassword,
		IdentityID:    identity.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update mezcla los atributos dados sobre la fila existente (semántica de
// actualización parcial). Falla con domain.ErrNotFound si la Identity de
// respaldo ya no existe.
func (s *ProfileService) Update(ctx context.Context, profile *entity.Profile, attrs ProfileAttrs) (*entity.Profile, error) {
	if attrs.IdentityID != nil {
		backing, err := s.identityRepo.GetByID(ctx, *attrs.IdentityID)
		if err != nil {
			return nil, err
		}
		if backing == nil {
			return nil, domain.ErrNotFound
		}
		profile.IdentityID = *attrs.IdentityID
	}
	if attrs.Email != nil {
		profile.Email = *attrs.Email
	}
	if attrs.PlainPassword != nil {
		profile.PlainPassword = *attrs.PlainPassword
	}
	profile.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
