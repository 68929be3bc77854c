package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ladrillera/empleados-api/internal/application/auth"
	"github.com/ladrillera/empleados-api/internal/application/employee"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProvisionUC *employee.ProvisionUseCase
	QueryUC     *employee.QueryUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Employees (protegido, requiere Bearer Token)
	employees := api.Group("/employees", AuthMiddleware(deps.JWTSecret))
	employeeHandler := NewEmployeeHandler(deps.ProvisionUC, deps.QueryUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	// /modules va antes de /:id para que Fiber no lo capture como parámetro.
	employees.Get("/modules", employeeHandler.Modules)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
}
