package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ladrillera/empleados-api/internal/domain/entity"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
)

// IdentityService crea y actualiza el registro de autenticación del empleado.
// Se construye sobre el repositorio atado a la transacción en curso.
type IdentityService struct {
	repo repository.IdentityRepository
}

// NewIdentityService construye el servicio sobre el repositorio recibido.
func NewIdentityService(repo repository.IdentityRepository) *IdentityService {
	return &IdentityService{repo: repo}
}

// Create inserta una Identity nueva con la contraseña hasheada (bcrypt).
// El repositorio devuelve domain.ErrEmailAlreadyExists si el email ya está registrado.
func (s *IdentityService) Create(ctx context.Context, name, email, plainPassword string) (*entity.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	identity := &entity.Identity{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Update actualiza nombre y email y reemplaza la credencial re-hasheada.
// Si el nuevo email colisiona con otra identidad, el repositorio devuelve
// domain.ErrEmailAlreadyExists.
func (s *IdentityService) Update(ctx context.Context, identity *entity.Identity, name, email, plainPassword string) (*entity.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	identity.Name = name
	identity.Email = email
	identity.PasswordHash = string(hash)
	identity.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}
