package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/ladrillera/empleados-api/internal/application/dto"
	"github.com/ladrillera/empleados-api/internal/domain"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
	"github.com/ladrillera/empleados-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login con la credencial aprovisionada. No hay registro público:
// las identidades las crea el flujo de alta de empleados.
type AuthUseCase struct {
	identityRepo repository.IdentityRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(identityRepo repository.IdentityRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{identityRepo: identityRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra la Identity, genera JWT y retorna el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, err := uc.identityRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, identity.ID, identity.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Email: identity.Email,
		Name:  identity.Name,
	}, nil
}
