package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/ladrillera/empleados-api/internal/application/auth"
	"github.com/ladrillera/empleados-api/internal/application/employee"
	inframail "github.com/ladrillera/empleados-api/internal/infrastructure/mail"
	"github.com/ladrillera/empleados-api/internal/infrastructure/postgres"
	httpRouter "github.com/ladrillera/empleados-api/internal/interfaces/http"
	"github.com/ladrillera/empleados-api/pkg/config"
	"github.com/ladrillera/empleados-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	identityRepo := postgres.NewIdentityRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	moduleRepo := postgres.NewModuleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Mailer SMTP — en desarrollo sin SMTP_HOST se usa el mailer de log.
	var mailer employee.Mailer
	if cfg.SMTP.Host != "" {
		mailer = inframail.NewSMTPMailer(cfg.SMTP)
	} else {
		mailer = inframail.NewLogMailer(log)
	}

	provisionUC := employee.NewProvisionUseCase(txRunner, mailer, employeeRepo, profileRepo, identityRepo, log)
	queryUC := employee.NewQueryUseCase(employeeRepo, profileRepo, identityRepo, moduleRepo)
	authUC := appauth.NewAuthUseCase(identityRepo, appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empleados API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProvisionUC: provisionUC,
		QueryUC:     queryUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
