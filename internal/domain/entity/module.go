package entity

// Module módulo de la aplicación al que un empleado tiene acceso
// (relación muchos-a-muchos, solo lectura en este servicio).
type Module struct {
	ID          string
	Name        string
	Description string
}
