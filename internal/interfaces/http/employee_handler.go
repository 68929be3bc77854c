package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ladrillera/empleados-api/internal/application/dto"
	"github.com/ladrillera/empleados-api/internal/application/employee"
	"github.com/ladrillera/empleados-api/internal/domain"
)

// EmployeeHandler maneja las peticiones HTTP de empleados (protegido).
type EmployeeHandler struct {
	provisionUC *employee.ProvisionUseCase
	queryUC     *employee.QueryUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(provisionUC *employee.ProvisionUseCase, queryUC *employee.QueryUseCase) *EmployeeHandler {
	return &EmployeeHandler{provisionUC: provisionUC, queryUC: queryUC}
}

// Create POST /api/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	emp, err := h.provisionUC.Create(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(emp)
}

// Update PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	emp, err := h.provisionUC.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(emp)
}

// List GET /api/employees?limit=20&offset=0
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	page.DefaultPage()
	list, err := h.queryUC.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	emp, err := h.queryUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(emp)
}

// Delete DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.queryUC.Delete(c.Context(), id); err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"msg": id + " eliminado"})
}

// Modules GET /api/employees/modules — módulos del empleado autenticado.
func (h *EmployeeHandler) Modules(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	modules, err := h.queryUC.ModulesForEmail(c.Context(), email)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(modules)
}

// mapError traduce la taxonomía de errores de dominio a respuestas HTTP.
func mapError(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de empleado inválidos", Fields: ve.Fields})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no se encontró el empleado"})
	case errors.Is(err, domain.ErrNotificationFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "NOTIFICATION", Message: "no se pudo enviar la confirmación; no se guardaron cambios"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
