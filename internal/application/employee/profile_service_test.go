package employee_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladrillera/empleados-api/internal/application/employee"
	"github.com/ladrillera/empleados-api/internal/domain"
)

// Si la Identity de respaldo ya no existe, la actualización del profile falla
// con NotFound sin tocar la fila.
func TestProfileUpdate_IdentityDeRespaldoInexistente_NotFound(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	emp := f.store.employees[created.ID]
	stored := f.store.profiles[emp.ProfileID]
	delete(f.store.identities, stored.IdentityID)

	svc := employee.NewProfileService(&profileRepoFake{f.store}, &identityRepoFake{f.store})
	ghostID := stored.IdentityID
	newEmail := "fantasma@x.com"
	profile := stored
	_, err = svc.Update(context.Background(), &profile, employee.ProfileAttrs{
		Email:      &newEmail,
		IdentityID: &ghostID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, "ana@x.com", f.store.profiles[emp.ProfileID].Email, "la fila no debe cambiar")
}
