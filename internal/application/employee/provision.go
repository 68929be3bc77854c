package employee

import (
	"context"
	"errors"

	"github.com/ladrillera/empleados-api/internal/application/dto"
	"github.com/ladrillera/empleados-api/internal/domain"
	"github.com/ladrillera/empleados-api/internal/domain/entity"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
	"github.com/ladrillera/empleados-api/pkg/logger"
	"github.com/ladrillera/empleados-api/pkg/password"
)

// ProvisionUseCase coordina el alta y la actualización de empleados: dentro de una
// misma transacción crea/actualiza Identity, Profile y Employee, y envía el correo
// de confirmación con la contraseña aprovisionada. Cualquier fallo entre el primer
// insert y el envío del correo revierte todo (ninguna fila parcial sobrevive).
type ProvisionUseCase struct {
	txRunner     TxRunner
	mailer       Mailer
	employeeRepo repository.EmployeeRepository
	profileRepo  repository.ProfileRepository
	identityRepo repository.IdentityRepository
	log          *logger.Logger
}

// NewProvisionUseCase construye el coordinador. Los repositorios recibidos aquí
// van atados al pool (lecturas previas a la transacción); los de escritura los
// entrega el TxRunner atados a la tx.
func NewProvisionUseCase(
	txRunner TxRunner,
	mailer Mailer,
	employeeRepo repository.EmployeeRepository,
	profileRepo repository.ProfileRepository,
	identityRepo repository.IdentityRepository,
	log *logger.Logger,
) *ProvisionUseCase {
	return &ProvisionUseCase{
		txRunner:     txRunner,
		mailer:       mailer,
		employeeRepo: employeeRepo,
		profileRepo:  profileRepo,
		identityRepo: identityRepo,
		log:          log,
	}
}

// Create ejecuta el flujo de alta:
// validar → generar contraseña → tx { identity, profile, employee, correo } → commit.
// Un error de validación aborta antes de abrir la transacción.
func (uc *ProvisionUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	cmd, err := ValidateCreate(in)
	if err != nil {
		return nil, err
	}

	plain, err := password.Generate()
	if err != nil {
		return nil, uc.logged(err, "generar contraseña")
	}

	var created *entity.Employee
	err = uc.txRunner.Run(ctx, func(
		identityRepo repository.IdentityRepository,
		profileRepo repository.ProfileRepository,
		employeeRepo repository.EmployeeRepository,
	) error {
		identity, err := NewIdentityService(identityRepo).Create(ctx, cmd.FullName(), cmd.Email, plain)
		if err != nil {
			return err
		}
		profile, err := NewProfileService(profileRepo, identityRepo).Create(ctx, identity, plain)
		if err != nil {
			return err
		}
		created, err = NewEmployeeService(employeeRepo).Create(ctx, cmd, profile)
		if err != nil {
			return err
		}
		// El correo va dentro de la frontera atómica: si el envío falla no queda
		// ningún empleado persistido sin notificar (ver decisión en DESIGN.md).
		if err := uc.mailer.SendConfirmation(ctx, created.Name, profile.Email, plain); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, uc.classify(err, "crear empleado")
	}
	return toEmployeeResponse(created, cmd.Email), nil
}

// Update ejecuta el flujo de actualización con la misma forma que el alta.
// Siempre regenera la contraseña y reenvía la confirmación, aunque el caller no
// haya pedido cambio de credencial (comportamiento observado que se preserva).
func (uc *ProvisionUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	cmd, err := ValidateUpdate(in)
	if err != nil {
		return nil, err
	}

	// Cargar la cadena Employee -> Profile -> Identity antes de abrir la tx.
	emp, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, uc.logged(err, "cargar empleado")
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	profile, err := uc.profileRepo.GetByID(ctx, emp.ProfileID)
	if err != nil {
		return nil, uc.logged(err, "cargar profile")
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	identity, err := uc.identityRepo.GetByID(ctx, profile.IdentityID)
	if err != nil {
		return nil, uc.logged(err, "cargar identity")
	}
	if identity == nil {
		return nil, domain.ErrNotFound
	}

	plain, err := password.Generate()
	if err != nil {
		return nil, uc.logged(err, "generar contraseña")
	}

	var updated *entity.Employee
	err = uc.txRunner.Run(ctx, func(
		identityRepo repository.IdentityRepository,
		profileRepo repository.ProfileRepository,
		employeeRepo repository.EmployeeRepository,
	) error {
		freshIdentity, err := NewIdentityService(identityRepo).Update(ctx, identity, cmd.FullName(), cmd.Email, plain)
		if err != nil {
			return err
		}
		freshProfile, err := NewProfileService(profileRepo, identityRepo).Update(ctx, profile, ProfileAttrs{
			Email:         &cmd.Email,
			PlainPassword: &plain,
			IdentityID:    &freshIdentity.ID,
		})
		if err != nil {
			return err
		}
		updated, err = NewEmployeeService(employeeRepo).Update(ctx, emp, cmd)
		if err != nil {
			return err
		}
		if err := uc.mailer.SendConfirmation(ctx, updated.Name, freshProfile.Email, plain); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, uc.classify(err, "actualizar empleado")
	}
	return toEmployeeResponse(updated, cmd.Email), nil
}

// classify deja pasar sin log los errores esperados por el caller (validación,
// no encontrado) y loggea el resto antes de devolverlos con su tipo original.
func (uc *ProvisionUseCase) classify(err error, op string) error {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return uc.logged(err, op)
}

func (uc *ProvisionUseCase) logged(err error, op string) error {
	uc.log.Error().Err(err).Str("op", op).Msg("aprovisionamiento de empleado fallido")
	return err
}

func toEmployeeResponse(e *entity.Employee, email string) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		LastName:  e.LastName,
		Email:     email,
		Document:  e.Document,
		Position:  e.Position,
		Phone:     e.Phone,
		Salary:    e.Salary,
		HireDate:  e.HireDate,
		ProfileID: e.ProfileID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
