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

var _ repository.IdentityRepository = (*IdentityRepo)(nil)

// IdentityRepo implementación del puerto IdentityRepository sobre PostgreSQL.
type IdentityRepo struct {
	q Querier
}

// NewIdentityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIdentityRepository(q Querier) *IdentityRepo {
	return &IdentityRepo{q: q}
}

// Create persiste una identidad nueva. Email duplicado -> domain.ErrEmailAlreadyExists.
func (r *IdentityRepo) Create(ctx context.Context, identity *entity.Identity) error {
	query := `
		INSERT INTO identities (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		identity.ID, identity.Name, identity.Email, identity.PasswordHash,
		identity.CreatedAt, identity.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}

// GetByID obtiene una identidad por ID. nil sin error si no existe.
func (r *IdentityRepo) GetByID(ctx context.Context, id string) (*entity.Identity, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM identities WHERE id = $1`
	var i entity.Identity
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.Email, &i.PasswordHash, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identity by id: %w", err)
	}
	return &i, nil
}

// GetByEmail obtiene una identidad por email. nil sin error si no existe.
func (r *IdentityRepo) GetByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM identities WHERE email = $1 LIMIT 1`
	var i entity.Identity
	err := r.q.QueryRow(ctx, query, email).Scan(
		&i.ID, &i.Name, &i.Email, &i.PasswordHash, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identity by email: %w", err)
	}
	return &i, nil
}

// Update actualiza nombre, email y credencial. Colisión de email -> domain.ErrEmailAlreadyExists;
// fila ya inexistente (borrada en carrera) -> domain.ErrNotFound.
func (r *IdentityRepo) Update(ctx context.Context, identity *entity.Identity) error {
	query := `
		UPDATE identities SET name = $2, email = $3, password_hash = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		identity.ID, identity.Name, identity.Email, identity.PasswordHash, identity.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update identity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
