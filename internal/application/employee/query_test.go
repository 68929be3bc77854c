package employee_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladrillera/empleados-api/internal/domain"
	"github.com/ladrillera/empleados-api/internal/domain/entity"
)

func TestGetByID_Inexistente_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.queryUC.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_DevuelveEmailDelProfile(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	got, err := f.queryUC.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "Ana", got.Name)
}

func TestList_DevuelveEmpleados(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	other := createRequest()
	other.Email = "beto@x.com"
	other.Name = "Beto"
	other.Document = "1122334455"
	_, err = f.uc.Create(context.Background(), other)
	require.NoError(t, err)

	list, err := f.queryUC.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// El borrado no cascada: profile e identity enlazados quedan intactos.
func TestDelete_SinCascada(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, f.queryUC.Delete(context.Background(), created.ID))

	assert.Empty(t, f.store.employees)
	assert.Len(t, f.store.profiles, 1, "el profile sobrevive al borrado del empleado")
	assert.Len(t, f.store.identities, 1, "la identity sobrevive al borrado del empleado")
}

func TestDelete_Inexistente_NotFound(t *testing.T) {
	f := newFixture()

	err := f.queryUC.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Resolución de módulos por la cadena email -> identity -> profile -> employee.
func TestModulesForEmail_CadenaCompleta(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	f.store.modules["m1"] = entity.Module{ID: "m1", Name: "empleados", Description: "Gestión de empleados"}
	f.store.modules["m2"] = entity.Module{ID: "m2", Name: "reportes", Description: "Reportes administrativos"}
	f.store.links[created.ID] = []string{"m1", "m2"}

	got, err := f.queryUC.ModulesForEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	require.Len(t, got.Modules, 2)
	assert.Equal(t, "empleados", got.Modules[0].Name)
	assert.Equal(t, "reportes", got.Modules[1].Name)
}

func TestModulesForEmail_SinEmpleado_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.queryUC.ModulesForEmail(context.Background(), "nadie@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
