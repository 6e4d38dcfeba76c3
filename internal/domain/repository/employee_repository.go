package repository

import "github.com/jhoicas/Nomina-api/internal/domain/entity"

// LoadResult resultado de leer el archivo completo.
type LoadResult struct {
	Employees []*entity.Employee
	Skipped   int // filas mal formadas descartadas
}

// EmployeeStore define el puerto de persistencia del roster (DIP).
// Load devuelve domain.ErrDataFileMissing si el archivo no existe todavía.
// Save reescribe el archivo completo en el orden recibido.
type EmployeeStore interface {
	Load() (*LoadResult, error)
	Save(employees []*entity.Employee) error
	Path() string
}
