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

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste el profile enlazado a su identity (constraint UNIQUE en identity_id).
func (r *ProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, normal_password, identity_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		profile.ID, profile.Email, profile.PlainPassword, profile.IdentityID,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un profile por ID. nil sin error si no existe.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	query := `
		SELECT id, email, normal_password, identity_id, created_at, updated_at
		FROM profiles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get profile by id")
}

// GetByIdentityID obtiene el profile de una identity (relación 1:1).
func (r *ProfileRepo) GetByIdentityID(ctx context.Context, identityID string) (*entity.Profile, error) {
	query := `
		SELECT id, email, normal_password, identity_id, created_at, updated_at
		FROM profiles WHERE identity_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, identityID), "get profile by identity")
}

// Update actualiza email, eco de contraseña y enlace de identidad.
// Fila ya inexistente -> domain.ErrNotFound.
func (r *ProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	query := `
		UPDATE profiles SET email = $2, normal_password = $3, identity_id = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		profile.ID, profile.Email, profile.PlainPassword, profile.IdentityID, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProfileRepo) scanOne(row pgx.Row, op string) (*entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(&p.ID, &p.Email, &p.PlainPassword, &p.IdentityID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
