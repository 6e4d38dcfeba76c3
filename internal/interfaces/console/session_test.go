package console_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Nomina-api/internal/application/roster"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/jhoicas/Nomina-api/internal/interfaces/console"
)

type memStore struct{ saved []*entity.Employee }

func (m *memStore) Load() (*repository.LoadResult, error) { return &repository.LoadResult{}, nil }
func (m *memStore) Save(e []*entity.Employee) error       { m.saved = e; return nil }
func (m *memStore) Path() string                          { return "mem" }

func input(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func run(t *testing.T, r *roster.Roster, in *strings.Reader) string {
	t.Helper()
	var out bytes.Buffer
	s := console.NewSession(r, in, &out, console.Options{
		BirthdayWindowDays: 7,
		Now:                func() time.Time { return time.Date(2025, 12, 11, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, s.Run())
	return out.String()
}

func TestPrompter_ReglasDeEntrada(t *testing.T) {
	var out bytes.Buffer
	// nombre vacío y género inválido se repiten; nivel y tasa no numéricos
	// toman su valor por defecto; 1990-02-30 pasa el chequeo laxo de fecha.
	p := console.NewPrompter(input(
		"", "Ana",
		"mujer", "女",
		"no-numero",
		"1990-02-30",
		"abc", "80",
	), &out)

	a, err := p.Attributes(payroll.TagPartTimeTech)
	require.NoError(t, err)
	assert.Equal(t, "Ana", a.Name)
	assert.Equal(t, entity.GenderFemale, a.Gender)
	assert.Equal(t, 1, a.Level)
	assert.Equal(t, "1990-02-30", a.Birthday)
	role := a.Role.(payroll.HourlyTechnician)
	assert.True(t, role.Rate.IsZero())
	assert.True(t, role.HoursWorked.Equal(decimal.NewFromInt(80)))

	assert.Contains(t, out.String(), "El nombre no puede estar vacío")
	assert.Contains(t, out.String(), "Entrada inválida")
}

func TestPrompter_CumpleanosSeRepiteHastaValido(t *testing.T) {
	var out bytes.Buffer
	p := console.NewPrompter(input("1990-13-01", "19901201", ""), &out)
	b, err := p.Birthday()
	require.NoError(t, err)
	assert.Empty(t, b)
	assert.Equal(t, 2, strings.Count(out.String(), "Fecha inválida"))
}

func TestSession_AgregarListarYSalir(t *testing.T) {
	store := &memStore{}
	r := roster.New(store, nil)
	out := run(t, r, input(
		"1", "3", "Wang", "男", "2", "1990-12-15", "3000", "0.1", "20000",
		"8",
		"9",
		"0",
	))

	require.Equal(t, 1, r.Count())
	e, ok := r.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, payroll.TagSalesManager, e.RoleTag())
	assert.True(t, e.MonthlyPay().Equal(decimal.NewFromInt(5000)))
	assert.Len(t, store.saved, 1)

	assert.Contains(t, out, "Empleado agregado con ID 1")
	assert.Contains(t, out, "1. Wang (SalesManager)")
	assert.Contains(t, out, "Cumpleaños en los próximos 7 días")
	assert.Contains(t, out, "Hasta luego.")
}

func TestSession_BuscarEliminarYNoEncontrado(t *testing.T) {
	r := roster.New(&memStore{}, nil)
	_, err := r.Add(entity.Attributes{Name: "Li", Gender: entity.GenderFemale, Level: 1, Role: payroll.FixedSalary{}})
	require.NoError(t, err)

	out := run(t, r, input(
		"3", "1", "Nadie",
		"3", "2", "1",
		"2", "5",
		"2", "1",
		"5",
		"x",
		"q",
	))

	assert.Contains(t, out, `No se encontró ningún empleado llamado "Nadie"`)
	assert.Contains(t, out, "Nombre: Li")
	assert.Contains(t, out, "No se encontró el empleado con ID 5")
	assert.Contains(t, out, "Empleado 1 eliminado.")
	assert.Contains(t, out, "No hay empleados registrados.")
	assert.Contains(t, out, "Opción inválida")
	assert.Zero(t, r.Count())
}

func TestSession_ModificarYPromover(t *testing.T) {
	r := roster.New(&memStore{}, nil)
	_, err := r.Add(entity.Attributes{Name: "Li", Gender: entity.GenderFemale, Level: 1, Role: payroll.FixedSalary{}})
	require.NoError(t, err)

	out := run(t, r, input(
		"4", "1", "Li Na", "女", "4", "", "7000",
		"7",
		"6",
	))

	e, ok := r.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "Li Na", e.Name)
	assert.Equal(t, 5, e.Level)
	assert.True(t, e.MonthlyPay().Equal(decimal.NewFromInt(7000)))
	assert.Contains(t, out, "Modificación completada.")
	assert.Contains(t, out, "Estadísticas de pago")
}

func TestSession_FinDeEntradaTerminaSinError(t *testing.T) {
	r := roster.New(&memStore{}, nil)
	out := run(t, r, input("1", "1", "Zhao"))
	assert.Zero(t, r.Count())
	assert.Contains(t, out, "Género")
}
