// Package migrate aplica las migraciones SQL embebidas usando golang-migrate.
package migrate

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/ladrillera/empleados-api/internal/db"
)

// Run aplica las migraciones en la dirección dada ("up" o "down") usando el DSN.
// Devuelve nil también cuando no hay nada que aplicar.
func Run(dsn, direction string) error {
	if dsn == "" {
		return errors.New("DATABASE_URL no definido")
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("direction debe ser up o down, llegó %q", direction)
	}

	sourceDriver, err := iofs.New(db.MigrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
