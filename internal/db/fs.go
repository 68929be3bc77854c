// Package db expone los archivos SQL de migración embebidos en el binario.
package db

import "embed"

//go:embed migrations/*.sql
var MigrationFS embed.FS
