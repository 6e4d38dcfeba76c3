// Package roster orquesta el conjunto de empleados en memoria y su ciclo de
// carga/guardado contra el archivo de datos.
//
// Roster no es seguro para uso concurrente: quien lo comparta entre
// goroutines debe serializar todas las llamadas.
package roster

import (
	"errors"
	"sort"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/jhoicas/Nomina-api/pkg/logger"
)

// Roster colección ordenada (orden de inserción) de empleados más el contador de IDs.
type Roster struct {
	store     repository.EmployeeStore
	log       *logger.Logger
	employees []*entity.Employee
	nextID    int
}

// New construye un roster vacío; llamar Load para leer el archivo.
func New(store repository.EmployeeStore, log *logger.Logger) *Roster {
	if log == nil {
		log = logger.Nop()
	}
	return &Roster{store: store, log: log.Named("roster"), nextID: 1}
}

// Load reinicia el estado y lee el archivo. Un archivo inexistente no es error.
// Si el archivo no se puede leer, el roster queda vacío y se devuelve el error.
func (r *Roster) Load() error {
	r.employees = nil
	r.nextID = 1

	res, err := r.store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrDataFileMissing) {
			r.log.Info().Str("path", r.store.Path()).Msg("archivo de datos inexistente, se creará al guardar")
			return nil
		}
		r.log.Error().Err(err).Str("path", r.store.Path()).Msg("carga del roster")
		return err
	}

	for _, e := range res.Employees {
		r.employees = append(r.employees, e)
		if e.ID+1 > r.nextID {
			r.nextID = e.ID + 1
		}
	}
	r.log.Info().
		Int("employees", len(r.employees)).
		Int("skipped", res.Skipped).
		Str("path", r.store.Path()).
		Msg("roster cargado")
	return nil
}

// Save reescribe el archivo completo. Si falla, el estado en memoria no cambia.
func (r *Roster) Save() error {
	if err := r.store.Save(r.employees); err != nil {
		r.log.Error().Err(err).Str("path", r.store.Path()).Msg("guardado del roster")
		return err
	}
	r.log.Debug().Int("employees", len(r.employees)).Msg("roster guardado")
	return nil
}

// Add asigna el siguiente ID, agrega al final y guarda.
// Con atributos inválidos no agrega nada y devuelve id 0. Si solo falla el
// guardado, el empleado queda agregado en memoria y se devuelve su id junto al error.
func (r *Roster) Add(attrs entity.Attributes) (int, error) {
	e, err := entity.New(attrs)
	if err != nil {
		return 0, err
	}
	e.ID = r.nextID
	r.nextID++
	r.employees = append(r.employees, e)
	return e.ID, r.Save()
}

// RemoveByID elimina todos los registros con ese ID y guarda si hubo cambios.
func (r *Roster) RemoveByID(id int) (bool, error) {
	kept := r.employees[:0]
	removed := false
	for _, e := range r.employees {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}
	for i := len(kept); i < len(r.employees); i++ {
		r.employees[i] = nil
	}
	r.employees = kept
	return true, r.Save()
}

// FindByName búsqueda exacta (sensible a mayúsculas), en orden de inserción.
func (r *Roster) FindByName(name string) []entity.Employee {
	out := []entity.Employee{}
	for _, e := range r.employees {
		if e.Name == name {
			out = append(out, *e)
		}
	}
	return out
}

// FindByID devuelve una copia del empleado con ese ID.
func (r *Roster) FindByID(id int) (entity.Employee, bool) {
	if e := r.find(id); e != nil {
		return *e, true
	}
	return entity.Employee{}, false
}

// Update sobrescribe todos los atributos del empleado (sin mezcla parcial) y guarda.
func (r *Roster) Update(id int, attrs entity.Attributes) (bool, error) {
	if err := attrs.Validate(); err != nil {
		return false, err
	}
	e := r.find(id)
	if e == nil {
		return false, nil
	}
	e.Attributes = attrs
	return true, r.Save()
}

// ListAll copia de todos los empleados en el orden actual.
func (r *Roster) ListAll() []entity.Employee {
	out := make([]entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out
}

// Promote sube de nivel a un empleado y guarda.
func (r *Roster) Promote(id, by int) (bool, error) {
	e := r.find(id)
	if e == nil {
		return false, nil
	}
	e.Promote(by)
	r.log.Info().Int("id", e.ID).Int("level", e.Level).Msg("empleado promovido")
	return true, r.Save()
}

// PromoteAll sube de nivel a todos y guarda una sola vez al final.
func (r *Roster) PromoteAll(by int) error {
	for _, e := range r.employees {
		e.Promote(by)
	}
	r.log.Info().Int("employees", len(r.employees)).Msg("promoción general")
	return r.Save()
}

// Ranking empleados por pago mensual descendente. El orden es estable:
// empates conservan el orden de inserción.
func (r *Roster) Ranking() []entity.Employee {
	out := r.ListAll()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MonthlyPay().GreaterThan(out[j].MonthlyPay())
	})
	return out
}

// Count cantidad de empleados.
func (r *Roster) Count() int { return len(r.employees) }

// NextID ID que recibirá el próximo empleado.
func (r *Roster) NextID() int { return r.nextID }

// Path ruta del archivo de datos.
func (r *Roster) Path() string { return r.store.Path() }

func (r *Roster) find(id int) *entity.Employee {
	for _, e := range r.employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}
