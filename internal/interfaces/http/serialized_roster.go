package http

import (
	"sync"
	"time"

	"github.com/jhoicas/Nomina-api/internal/application/roster"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// SerializedRoster serializa el acceso al roster desde los handlers concurrentes de Fiber.
// El roster no tiene bloqueo propio; todas las llamadas HTTP pasan por aquí.
// Las mutaciones devuelven el empleado resultante dentro del mismo bloqueo.
type SerializedRoster struct {
	mu sync.Mutex
	r  *roster.Roster
}

// NewSerializedRoster envuelve un roster ya cargado.
func NewSerializedRoster(r *roster.Roster) *SerializedRoster {
	return &SerializedRoster{r: r}
}

// AddAndGet agrega y devuelve el empleado creado. ID 0 si los atributos son inválidos;
// si solo falla el guardado, el empleado se devuelve junto al error.
func (s *SerializedRoster) AddAndGet(attrs entity.Attributes) (entity.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.r.Add(attrs)
	if id == 0 {
		return entity.Employee{}, err
	}
	e, _ := s.r.FindByID(id)
	return e, err
}

// RemoveByID elimina el empleado; false si no existía.
func (s *SerializedRoster) RemoveByID(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.RemoveByID(id)
}

// FindByName búsqueda exacta por nombre.
func (s *SerializedRoster) FindByName(name string) []entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.FindByName(name)
}

// FindByID copia del empleado con ese ID.
func (s *SerializedRoster) FindByID(id int) (entity.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.FindByID(id)
}

// UpdateAndGet reemplaza los atributos y devuelve el empleado actualizado; found=false si no existe.
func (s *SerializedRoster) UpdateAndGet(id int, attrs entity.Attributes) (entity.Employee, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found, err := s.r.Update(id, attrs)
	if !found {
		return entity.Employee{}, false, err
	}
	e, _ := s.r.FindByID(id)
	return e, true, err
}

// ListAll todos los empleados en orden de inserción.
func (s *SerializedRoster) ListAll() []entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.ListAll()
}

// PromoteAndGet promueve y devuelve el empleado con su nuevo nivel; found=false si no existe.
func (s *SerializedRoster) PromoteAndGet(id, by int) (entity.Employee, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found, err := s.r.Promote(id, by)
	if !found {
		return entity.Employee{}, false, err
	}
	e, _ := s.r.FindByID(id)
	return e, true, err
}

// PromoteAll devuelve también la cantidad de empleados promovidos.
func (s *SerializedRoster) PromoteAll(by int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Count(), s.r.PromoteAll(by)
}

// Ranking empleados por pago mensual descendente.
func (s *SerializedRoster) Ranking() []entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Ranking()
}

// Statistics pago total y desglose por rol.
func (s *SerializedRoster) Statistics() roster.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Statistics()
}

// BirthdayReminder cumpleaños dentro de la ventana a partir de ref.
func (s *SerializedRoster) BirthdayReminder(ref time.Time, windowDays int) []entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.BirthdayReminder(ref, windowDays)
}

// Count cantidad de empleados.
func (s *SerializedRoster) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Count()
}

// Path no cambia tras la construcción; no requiere bloqueo.
func (s *SerializedRoster) Path() string { return s.r.Path() }
