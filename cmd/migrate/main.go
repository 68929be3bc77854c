package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ladrillera/empleados-api/internal/db/migrate"
	"github.com/ladrillera/empleados-api/pkg/config"
)

// Aplica las migraciones embebidas: go run ./cmd/migrate -direction up
func main() {
	direction := flag.String("direction", "up", "up o down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	if err := migrate.Run(cfg.DB.ConnectionString(), *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migración:", err)
		os.Exit(1)
	}
	fmt.Println("migraciones aplicadas:", *direction)
}
