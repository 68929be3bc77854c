package employee_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ladrillera/empleados-api/internal/application/dto"
	"github.com/ladrillera/empleados-api/internal/application/employee"
	"github.com/ladrillera/empleados-api/internal/domain"
	"github.com/ladrillera/empleados-api/internal/domain/entity"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
	"github.com/ladrillera/empleados-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos, tx runner con rollback por snapshot y mailer
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	identities map[string]entity.Identity
	profiles   map[string]entity.Profile
	employees  map[string]entity.Employee
	modules    map[string]entity.Module
	links      map[string][]string // employeeID -> moduleIDs
}

func newMemStore() *memStore {
	return &memStore{
		identities: map[string]entity.Identity{},
		profiles:   map[string]entity.Profile{},
		employees:  map[string]entity.Employee{},
		modules:    map[string]entity.Module{},
		links:      map[string][]string{},
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range s.identities {
		c.identities[k] = v
	}
	for k, v := range s.profiles {
		c.profiles[k] = v
	}
	for k, v := range s.employees {
		c.employees[k] = v
	}
	for k, v := range s.modules {
		c.modules[k] = v
	}
	for k, v := range s.links {
		c.links[k] = append([]string(nil), v...)
	}
	return c
}

func (s *memStore) restore(from *memStore) {
	s.identities = from.identities
	s.profiles = from.profiles
	s.employees = from.employees
	s.modules = from.modules
	s.links = from.links
}

type identityRepoFake struct{ s *memStore }

func (r *identityRepoFake) Create(_ context.Context, i *entity.Identity) error {
	for _, existing := range r.s.identities {
		if existing.Email == i.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.identities[i.ID] = *i
	return nil
}

func (r *identityRepoFake) GetByID(_ context.Context, id string) (*entity.Identity, error) {
	if i, ok := r.s.identities[id]; ok {
		out := i
		return &out, nil
	}
	return nil, nil
}

func (r *identityRepoFake) GetByEmail(_ context.Context, email string) (*entity.Identity, error) {
	for _, i := range r.s.identities {
		if i.Email == email {
			out := i
			return &out, nil
		}
	}
	return nil, nil
}

func (r *identityRepoFake) Update(_ context.Context, i *entity.Identity) error {
	if _, ok := r.s.identities[i.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.identities {
		if existing.Email == i.Email && id != i.ID {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.identities[i.ID] = *i
	return nil
}

type profileRepoFake struct{ s *memStore }

func (r *profileRepoFake) Create(_ context.Context, p *entity.Profile) error {
	r.s.profiles[p.ID] = *p
	return nil
}

func (r *profileRepoFake) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	if p, ok := r.s.profiles[id]; ok {
		out := p
		return &out, nil
	}
	return nil, nil
}

func (r *profileRepoFake) GetByIdentityID(_ context.Context, identityID string) (*entity.Profile, error) {
	for _, p := range r.s.profiles {
		if p.IdentityID == identityID {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *profileRepoFake) Update(_ context.Context, p *entity.Profile) error {
	if _, ok := r.s.profiles[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.profiles[p.ID] = *p
	return nil
}

type employeeRepoFake struct {
	s      *memStore
	failOn string // "create" o "update" fuerza un fallo de persistencia
}

func (r *employeeRepoFake) Create(_ context.Context, e *entity.Employee) error {
	if r.failOn == "create" {
		return fmt.Errorf("insert employee: disco lleno")
	}
	r.s.employees[e.ID] = *e
	return nil
}

func (r *employeeRepoFake) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	if e, ok := r.s.employees[id]; ok {
		out := e
		return &out, nil
	}
	return nil, nil
}

func (r *employeeRepoFake) GetByProfileID(_ context.Context, profileID string) (*entity.Employee, error) {
	for _, e := range r.s.employees {
		if e.ProfileID == profileID {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

func (r *employeeRepoFake) Update(_ context.Context, e *entity.Employee) error {
	if r.failOn == "update" {
		return fmt.Errorf("update employee: disco lleno")
	}
	if _, ok := r.s.employees[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.employees[e.ID] = *e
	return nil
}

func (r *employeeRepoFake) List(_ context.Context, limit, offset int) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for _, e := range r.s.employees {
		out := e
		list = append(list, &out)
	}
	return list, nil
}

func (r *employeeRepoFake) Delete(_ context.Context, id string) error {
	if _, ok := r.s.employees[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.employees, id)
	return nil
}

type moduleRepoFake struct{ s *memStore }

func (r *moduleRepoFake) ListByEmployee(_ context.Context, employeeID string) ([]*entity.Module, error) {
	var list []*entity.Module
	for _, mid := range r.s.links[employeeID] {
		if m, ok := r.s.modules[mid]; ok {
			out := m
			list = append(list, &out)
		}
	}
	return list, nil
}

// txRunnerFake imita la semántica de la transacción: snapshot antes de fn,
// restore completo si fn devuelve error. beforeTx simula una escritura
// concurrente confirmada justo antes de abrir la transacción.
type txRunnerFake struct {
	s        *memStore
	empFail  string
	runs     int
	beforeTx func()
}

func (t *txRunnerFake) Run(_ context.Context, fn func(
	identityRepo repository.IdentityRepository,
	profileRepo repository.ProfileRepository,
	employeeRepo repository.EmployeeRepository,
) error) error {
	t.runs++
	if t.beforeTx != nil {
		t.beforeTx()
	}
	snap := t.s.snapshot()
	err := fn(&identityRepoFake{t.s}, &profileRepoFake{t.s}, &employeeRepoFake{s: t.s, failOn: t.empFail})
	if err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

type mailerFake struct {
	failErr error
	sent    []sentMail
}

type sentMail struct {
	Name     string
	Email    string
	Password string
}

func (m *mailerFake) SendConfirmation(_ context.Context, name, email, plainPassword string) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.sent = append(m.sent, sentMail{Name: name, Email: email, Password: plainPassword})
	return nil
}

type fixture struct {
	store    *memStore
	txRunner *txRunnerFake
	mailer   *mailerFake
	uc       *employee.ProvisionUseCase
	queryUC  *employee.QueryUseCase
}

func newFixture() *fixture {
	store := newMemStore()
	txRunner := &txRunnerFake{s: store}
	mailer := &mailerFake{}
	empRepo := &employeeRepoFake{s: store}
	profRepo := &profileRepoFake{store}
	idRepo := &identityRepoFake{store}
	return &fixture{
		store:    store,
		txRunner: txRunner,
		mailer:   mailer,
		uc:       employee.NewProvisionUseCase(txRunner, mailer, empRepo, profRepo, idRepo, logger.Nop()),
		queryUC:  employee.NewQueryUseCase(empRepo, profRepo, idRepo, &moduleRepoFake{store}),
	}
}

func createRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:     "Ana",
		LastName: "García",
		Email:    "ana@x.com",
		Document: "1020304050",
		Position: "Operaria de horno",
		Phone:    "3001234567",
		Salary:   "2500000.00",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de creación
// ──────────────────────────────────────────────────────────────────────────────

// Alta exitosa: queda exactamente una cadena Identity -> Profile -> Employee
// enlazada y el correo sale con la contraseña aprovisionada.
func TestCreate_CadenaCompletaYCorreo(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)

	require.Len(t, f.store.identities, 1)
	require.Len(t, f.store.profiles, 1)
	require.Len(t, f.store.employees, 1)

	emp := f.store.employees[resp.ID]
	profile := f.store.profiles[emp.ProfileID]
	identity := f.store.identities[profile.IdentityID]

	assert.Equal(t, "ana@x.com", identity.Email)
	assert.Equal(t, identity.Email, profile.Email, "profile e identity deben compartir email al crear")
	assert.Equal(t, "Ana García", identity.Name)

	require.Len(t, f.mailer.sent, 1)
	mail := f.mailer.sent[0]
	assert.Equal(t, "ana@x.com", mail.Email)
	assert.Equal(t, profile.PlainPassword, mail.Password, "el eco del profile debe ser la contraseña notificada")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(mail.Password)),
		"el hash de la identity debe corresponder a la contraseña notificada")
}

// La respuesta serializada nunca contiene la contraseña en claro ni el hash.
func TestCreate_RespuestaSinMaterialDeContrasena(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	require.Len(t, f.mailer.sent, 1)
	assert.NotContains(t, string(body), f.mailer.sent[0].Password)
	assert.NotContains(t, string(body), "password")
}

// Email duplicado: segunda alta falla con conflicto y no deja filas nuevas.
func TestCreate_EmailDuplicado_RollbackSinFilas(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	second := createRequest()
	second.Name = "Otra"
	second.Document = "9988776655"
	_, err = f.uc.Create(context.Background(), second)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	assert.Len(t, f.store.identities, 1, "no debe quedar identity nueva")
	assert.Len(t, f.store.profiles, 1, "no debe quedar profile nuevo")
	assert.Len(t, f.store.employees, 1, "no debe quedar employee nuevo")
	assert.Len(t, f.mailer.sent, 1, "no debe salir un segundo correo")
}

// Fallo del correo: aborta toda la transacción, estado idéntico al previo.
func TestCreate_FalloDeCorreo_RevierteTodo(t *testing.T) {
	f := newFixture()
	f.mailer.failErr = fmt.Errorf("%w: conexión SMTP rechazada", domain.ErrNotificationFailed)

	_, err := f.uc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, domain.ErrNotificationFailed)

	assert.Empty(t, f.store.identities)
	assert.Empty(t, f.store.profiles)
	assert.Empty(t, f.store.employees)
}

// Fallo de persistencia en el último insert: identity y profile ya escritos se revierten.
func TestCreate_FalloPersistencia_SinFilasHuerfanas(t *testing.T) {
	f := newFixture()
	f.txRunner.empFail = "create"

	_, err := f.uc.Create(context.Background(), createRequest())
	require.Error(t, err)

	assert.Empty(t, f.store.identities, "la identity no debe sobrevivir al rollback")
	assert.Empty(t, f.store.profiles, "el profile no debe sobrevivir al rollback")
	assert.Empty(t, f.store.employees)
	assert.Empty(t, f.mailer.sent)
}

// Error de validación: ni siquiera se abre la transacción.
func TestCreate_ValidacionFalla_NoAbreTransaccion(t *testing.T) {
	f := newFixture()

	in := createRequest()
	in.Email = "no-es-un-email"
	_, err := f.uc.Create(context.Background(), in)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")
	assert.Zero(t, f.txRunner.runs, "la validación debe abortar antes de la tx")
	assert.Empty(t, f.mailer.sent)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de actualización
// ──────────────────────────────────────────────────────────────────────────────

// La actualización propaga el email nuevo a identity y profile, regenera la
// contraseña y reenvía la confirmación; id y enlace a profile no cambian.
func TestUpdate_PropagaEmailYRegeneraContrasena(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	firstPassword := f.mailer.sent[0].Password

	in := createRequest()
	in.Email = "ana2@x.com"
	in.Position = "Supervisora"
	updated, err := f.uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "el id del empleado no debe cambiar")
	assert.Equal(t, created.ProfileID, updated.ProfileID, "el enlace a profile es inmutable")

	emp := f.store.employees[created.ID]
	profile := f.store.profiles[emp.ProfileID]
	identity := f.store.identities[profile.IdentityID]
	assert.Equal(t, "ana2@x.com", identity.Email)
	assert.Equal(t, "ana2@x.com", profile.Email)
	assert.Equal(t, "Supervisora", emp.Position)

	require.Len(t, f.mailer.sent, 2, "debe salir una confirmación nueva")
	secondPassword := f.mailer.sent[1].Password
	assert.NotEqual(t, firstPassword, secondPassword, "la contraseña se regenera en cada flujo")
	assert.Equal(t, profile.PlainPassword, secondPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(secondPassword)))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(firstPassword)),
		"la credencial anterior queda invalidada")
}

// Actualizar un id inexistente responde NotFound sin abrir transacción.
func TestUpdate_IdInexistente_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Update(context.Background(), "no-existe", createRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, f.txRunner.runs)
}

// Empleado borrado por otra petición entre la carga previa y la transacción:
// el UPDATE afecta cero filas, el flujo aborta con NotFound, nada se confirma
// y no sale correo (sin updates fantasma).
func TestUpdate_EmpleadoBorradoEnCarrera_AbortaSinCorreo(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	firstPassword := f.mailer.sent[0].Password

	f.txRunner.beforeTx = func() { delete(f.store.employees, created.ID) }

	in := createRequest()
	in.Position = "Supervisora"
	_, err = f.uc.Update(context.Background(), created.ID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, f.store.employees, "la fila borrada en carrera sigue borrada")
	require.Len(t, f.store.profiles, 1)
	for _, profile := range f.store.profiles {
		assert.Equal(t, firstPassword, profile.PlainPassword, "el rollback descarta la contraseña nueva")
		assert.Equal(t, "ana@x.com", profile.Email)
	}
	assert.Len(t, f.mailer.sent, 1, "no sale correo por un update que no persistió")
}

// Identity borrada en carrera: mismo aborto, rollback completo, sin correo.
func TestUpdate_IdentityBorradaEnCarrera_AbortaSinCorreo(t *testing.T) {
	f := newFixture()

	created, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	emp := f.store.employees[created.ID]
	identityID := f.store.profiles[emp.ProfileID].IdentityID

	f.txRunner.beforeTx = func() { delete(f.store.identities, identityID) }

	_, err = f.uc.Update(context.Background(), created.ID, createRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "ana@x.com", f.store.profiles[emp.ProfileID].Email, "el rollback deja el profile como antes")
	assert.Equal(t, "Ana", f.store.employees[created.ID].Name, "el rollback deja el empleado como antes")
}

// Colisión de email con otra identidad en update: conflicto y rollback completo.
func TestUpdate_EmailDeOtraIdentidad_RollbackConflicto(t *testing.T) {
	f := newFixture()

	first, err := f.uc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	other := createRequest()
	other.Email = "beto@x.com"
	other.Document = "1122334455"
	_, err = f.uc.Create(context.Background(), other)
	require.NoError(t, err)

	in := createRequest()
	in.Email = "beto@x.com" // ya registrado por la otra identidad
	_, err = f.uc.Update(context.Background(), first.ID, in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	emp := f.store.employees[first.ID]
	profile := f.store.profiles[emp.ProfileID]
	identity := f.store.identities[profile.IdentityID]
	assert.Equal(t, "ana@x.com", identity.Email, "el update fallido no debe dejar cambios")
	assert.Equal(t, "ana@x.com", profile.Email)
	assert.Len(t, f.mailer.sent, 2, "el update fallido no envía correo")
}
