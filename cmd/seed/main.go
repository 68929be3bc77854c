package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/ladrillera/empleados-api/internal/infrastructure/postgres"
	"github.com/ladrillera/empleados-api/pkg/config"
)

// Catálogo base de módulos de la aplicación. Idempotente (ON CONFLICT DO NOTHING).
var modules = []struct {
	Name        string
	Description string
}{
	{"empleados", "Gestión de empleados"},
	{"documentos", "Gestión documental"},
	{"clientes", "Gestión de clientes"},
	{"pedidos", "Pedidos y despachos"},
	{"reportes", "Reportes administrativos"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "conexión a PostgreSQL:", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, m := range modules {
		_, err := pool.Exec(ctx,
			`INSERT INTO modules (id, name, description) VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			uuid.New().String(), m.Name, m.Description,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "seed módulo", m.Name, ":", err)
			os.Exit(1)
		}
	}
	fmt.Println("catálogo de módulos sembrado")
}
