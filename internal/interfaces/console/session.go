package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Nomina-api/internal/application/roster"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
)

// roleLabels nombres legibles por rol.
var roleLabels = map[payroll.RoleTag]string{
	payroll.TagManager:       "Gerente",
	payroll.TagPartTimeTech:  "Técnico medio tiempo",
	payroll.TagSalesManager:  "Gerente de ventas",
	payroll.TagPartTimeSales: "Vendedor medio tiempo",
}

const menu = `
==========================================
  Sistema de nómina
------------------------------------------
  1. Agregar empleado
  2. Eliminar empleado
  3. Buscar empleado
  4. Modificar empleado
  5. Listar empleados
  6. Estadísticas de pago
  7. Promover a todos
  8. Ranking por pago
  9. Cumpleaños próximos
  0. Salir
==========================================
`

// Options parámetros de la sesión.
type Options struct {
	BirthdayWindowDays int
	Now                func() time.Time
	Language           language.Tag
}

// Session bucle de menú sobre un roster. Es el único dueño del roster mientras corre.
type Session struct {
	roster *roster.Roster
	in     *Prompter
	out    io.Writer
	p      *message.Printer
	opts   Options
}

// NewSession construye la sesión; Now por defecto time.Now, idioma por defecto español.
func NewSession(r *roster.Roster, in io.Reader, out io.Writer, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Language == language.Und {
		opts.Language = language.Spanish
	}
	return &Session{
		roster: r,
		in:     NewPrompter(in, out),
		out:    out,
		p:      message.NewPrinter(opts.Language),
		opts:   opts,
	}
}

// Run muestra el menú hasta que el operador sale o se termina la entrada.
func (s *Session) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.in.Line("Seleccione (0-9): ")
		if err != nil {
			return ignoreEOF(err)
		}
		switch strings.TrimSpace(choice) {
		case "1":
			err = s.add()
		case "2":
			err = s.remove()
		case "3":
			err = s.find()
		case "4":
			err = s.update()
		case "5":
			s.list()
		case "6":
			s.statistics()
		case "7":
			s.promoteAll()
		case "8":
			s.ranking()
		case "9":
			s.birthdays()
		case "0", "q", "Q":
			fmt.Fprintln(s.out, "Hasta luego.")
			return nil
		default:
			fmt.Fprintln(s.out, "Opción inválida, intente de nuevo.")
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) add() error {
	tag, ok, err := s.in.RoleChoice()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Opción inválida.")
		return nil
	}
	attrs, err := s.in.Attributes(tag)
	if err != nil {
		return err
	}
	id, err := s.roster.Add(attrs)
	if id == 0 {
		fmt.Fprintf(s.out, "No se pudo agregar: %v\n", err)
		return nil
	}
	s.reportSave(err)
	fmt.Fprintf(s.out, "\nEmpleado agregado con ID %d\n", id)
	if e, found := s.roster.FindByID(id); found {
		s.show(e)
	}
	return nil
}

func (s *Session) remove() error {
	id, err := s.in.Int("ID del empleado a eliminar: ", 0)
	if err != nil {
		return err
	}
	removed, saveErr := s.roster.RemoveByID(id)
	if !removed {
		fmt.Fprintf(s.out, "No se encontró el empleado con ID %d.\n", id)
		return nil
	}
	s.reportSave(saveErr)
	fmt.Fprintf(s.out, "Empleado %d eliminado.\n", id)
	return nil
}

func (s *Session) find() error {
	mode, err := s.in.Line("Buscar por 1.Nombre 2.ID: ")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(mode) {
	case "1":
		name, err := s.in.Line("Nombre: ")
		if err != nil {
			return err
		}
		found := s.roster.FindByName(name)
		if len(found) == 0 {
			fmt.Fprintf(s.out, "No se encontró ningún empleado llamado %q.\n", name)
			return nil
		}
		for _, e := range found {
			s.show(e)
		}
	case "2":
		id, err := s.in.Int("ID: ", 0)
		if err != nil {
			return err
		}
		e, ok := s.roster.FindByID(id)
		if !ok {
			fmt.Fprintf(s.out, "No se encontró el empleado con ID %d.\n", id)
			return nil
		}
		s.show(e)
	default:
		fmt.Fprintln(s.out, "Opción inválida.")
	}
	return nil
}

func (s *Session) update() error {
	id, err := s.in.Int("ID del empleado a modificar: ", 0)
	if err != nil {
		return err
	}
	current, ok := s.roster.FindByID(id)
	if !ok {
		fmt.Fprintf(s.out, "No se encontró el empleado con ID %d.\n", id)
		return nil
	}
	fmt.Fprintln(s.out, "Datos actuales:")
	s.show(current)
	fmt.Fprintln(s.out, "\nIngrese todos los datos nuevamente (se sobrescriben):")

	attrs, err := s.in.Attributes(current.RoleTag())
	if err != nil {
		return err
	}
	updated, saveErr := s.roster.Update(id, attrs)
	if !updated {
		fmt.Fprintf(s.out, "No se pudo modificar: %v\n", saveErr)
		return nil
	}
	s.reportSave(saveErr)
	fmt.Fprintln(s.out, "Modificación completada.")
	if e, found := s.roster.FindByID(id); found {
		s.show(e)
	}
	return nil
}

func (s *Session) list() {
	all := s.roster.ListAll()
	if len(all) == 0 {
		fmt.Fprintln(s.out, "No hay empleados registrados.")
		return
	}
	fmt.Fprintf(s.out, "\n===== Empleados (%d) =====\n", len(all))
	for _, e := range all {
		s.show(e)
	}
}

func (s *Session) statistics() {
	if s.roster.Count() == 0 {
		fmt.Fprintln(s.out, "No hay empleados registrados.")
		return
	}
	st := s.roster.Statistics()
	fmt.Fprintln(s.out, "\n===== Estadísticas de pago =====")
	fmt.Fprintf(s.out, "Empleados: %d\n", st.Employees)
	fmt.Fprintf(s.out, "Pago total: %s\n", s.money(st.Total))
	for _, rs := range st.ByRole {
		fmt.Fprintf(s.out, "  %s: %d, total %s, %s%%\n",
			roleLabels[rs.Tag], rs.Count, s.money(rs.Total), s.money(rs.Percent))
	}
}

func (s *Session) promoteAll() {
	if s.roster.Count() == 0 {
		fmt.Fprintln(s.out, "No hay empleados registrados.")
		return
	}
	s.reportSave(s.roster.PromoteAll(1))
	fmt.Fprintln(s.out, "Todos los empleados subieron un nivel.")
}

func (s *Session) ranking() {
	ranked := s.roster.Ranking()
	if len(ranked) == 0 {
		fmt.Fprintln(s.out, "No hay empleados registrados.")
		return
	}
	fmt.Fprintln(s.out, "\n===== Ranking por pago mensual =====")
	for i, e := range ranked {
		fmt.Fprintf(s.out, "%d. %s (%s) - %s\n", i+1, e.Name, e.RoleTag(), s.money(e.MonthlyPay()))
	}
}

func (s *Session) birthdays() {
	now := s.opts.Now()
	list := s.roster.BirthdayReminder(now, s.opts.BirthdayWindowDays)
	if len(list) == 0 {
		fmt.Fprintf(s.out, "Nadie cumple años en los próximos %d días.\n", s.opts.BirthdayWindowDays)
		return
	}
	fmt.Fprintf(s.out, "\n===== Cumpleaños en los próximos %d días =====\n", s.opts.BirthdayWindowDays)
	for _, e := range list {
		fmt.Fprintf(s.out, "%d. %s - %s\n", e.ID, e.Name, e.Birthday)
	}
}

func (s *Session) show(e entity.Employee) {
	birthday := e.Birthday
	if birthday == "" {
		birthday = "-"
	}
	fmt.Fprintf(s.out, "----------------------------------\n"+
		"ID: %d\nNombre: %s\nGénero: %s\nNivel: %d\nNacimiento: %s\nPuesto: %s\n",
		e.ID, e.Name, e.Gender, e.Level, birthday, roleLabels[e.RoleTag()])
	s.showRole(e.Role)
	fmt.Fprintf(s.out, "Pago del mes: %s\n", s.money(e.MonthlyPay()))
}

func (s *Session) showRole(r payroll.Role) {
	switch v := r.(type) {
	case payroll.FixedSalary:
		fmt.Fprintf(s.out, "Sueldo fijo: %s\n", s.money(v.Amount))
	case payroll.HourlyTechnician:
		fmt.Fprintf(s.out, "Tarifa por hora: %s\nHoras: %s\n", s.money(v.Rate), s.money(v.HoursWorked))
	case payroll.SalaryPlusCommission:
		fmt.Fprintf(s.out, "Sueldo fijo: %s\nComisión: %s%%\nVentas: %s\n",
			s.money(v.Fixed), s.money(v.Rate.Mul(decimal.NewFromInt(100))), s.money(v.SalesAmount))
	case payroll.CommissionSalesperson:
		fmt.Fprintf(s.out, "Comisión: %s%%\nVentas: %s\n",
			s.money(v.Rate.Mul(decimal.NewFromInt(100))), s.money(v.SalesAmount))
	}
}

// money formatea con 2 decimales y separadores del idioma configurado.
func (s *Session) money(d decimal.Decimal) string {
	return s.p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func (s *Session) reportSave(err error) {
	if err != nil {
		fmt.Fprintf(s.out, "Atención: no se pudo guardar %s: %v\n", s.roster.Path(), err)
	}
}
