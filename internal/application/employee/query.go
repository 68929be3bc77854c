package employee

import (
	"context"

	"github.com/ladrillera/empleados-api/internal/application/dto"
	"github.com/ladrillera/empleados-api/internal/domain"
	"github.com/ladrillera/empleados-api/internal/domain/repository"
)

// QueryUseCase cubre el CRUD simple alrededor del aprovisionamiento:
// listado, consulta por id, borrado y módulos del empleado autenticado.
type QueryUseCase struct {
	employeeRepo repository.EmployeeRepository
	profileRepo  repository.ProfileRepository
	identityRepo repository.IdentityRepository
	moduleRepo   repository.ModuleRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	employeeRepo repository.EmployeeRepository,
	profileRepo repository.ProfileRepository,
	identityRepo repository.IdentityRepository,
	moduleRepo repository.ModuleRepository,
) *QueryUseCase {
	return &QueryUseCase{
		employeeRepo: employeeRepo,
		profileRepo:  profileRepo,
		identityRepo: identityRepo,
		moduleRepo:   moduleRepo,
	}
}

// List devuelve los empleados paginados.
func (uc *QueryUseCase) List(ctx context.Context, limit, offset int) ([]*dto.EmployeeResponse, error) {
	list, err := uc.employeeRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		email, err := uc.emailFor(ctx, e.ProfileID)
		if err != nil {
			return nil, err
		}
		out = append(out, toEmployeeResponse(e, email))
	}
	return out, nil
}

// GetByID obtiene un empleado; domain.ErrNotFound si no existe.
func (uc *QueryUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	email, err := uc.emailFor(ctx, e.ProfileID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(e, email), nil
}

// Delete elimina el empleado. No cascada: el Profile y la Identity enlazados
// quedan intactos (comportamiento observado del sistema original).
func (uc *QueryUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.employeeRepo.Delete(ctx, id)
}

// ModulesForEmail resuelve el empleado del caller autenticado por la cadena
// email -> identity -> profile -> employee y devuelve sus módulos.
func (uc *QueryUseCase) ModulesForEmail(ctx context.Context, email string) (*dto.ModulesResponse, error) {
	identity, err := uc.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrNotFound
	}
	profile, err := uc.profileRepo.GetByIdentityID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	emp, err := uc.employeeRepo.GetByProfileID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	modules, err := uc.moduleRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.ModulesResponse{Modules: make([]dto.ModuleResponse, 0, len(modules))}
	for _, m := range modules {
		out.Modules = append(out.Modules, dto.ModuleResponse{ID: m.ID, Name: m.Name, Description: m.Description})
	}
	return out, nil
}

func (uc *QueryUseCase) emailFor(ctx context.Context, profileID string) (string, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", nil
	}
	return profile.Email, nil
}
