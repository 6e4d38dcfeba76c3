package roster_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Nomina-api/internal/application/roster"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
	"github.com/jhoicas/Nomina-api/internal/domain/repository"
	"github.com/jhoicas/Nomina-api/internal/infrastructure/csvfile"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// memStore store en memoria que cuenta los guardados y puede fallar a pedido.
type memStore struct {
	rows    []*entity.Employee
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() (*repository.LoadResult, error) {
	if m.loadErr != nil {
		return &repository.LoadResult{}, m.loadErr
	}
	return &repository.LoadResult{Employees: m.rows}, nil
}

func (m *memStore) Save(employees []*entity.Employee) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.rows = make([]*entity.Employee, 0, len(employees))
	for _, e := range employees {
		c := *e
		m.rows = append(m.rows, &c)
	}
	return nil
}

func (m *memStore) Path() string { return "mem://employees.csv" }

func attrs(name string, role payroll.Role) entity.Attributes {
	return entity.Attributes{Name: name, Gender: entity.GenderMale, Level: 1, Role: role}
}

func withBirthday(a entity.Attributes, birthday string) entity.Attributes {
	a.Birthday = birthday
	return a
}

// scenario roster con los cuatro roles: pagos 5000, 4000, 5000, 500.
func scenario(t *testing.T) (*roster.Roster, *memStore) {
	t.Helper()
	store := &memStore{}
	r := roster.New(store, nil)
	require.NoError(t, r.Load())
	for _, a := range []entity.Attributes{
		attrs("Manager", payroll.FixedSalary{Amount: d("5000")}),
		attrs("Tecnico", payroll.HourlyTechnician{Rate: d("50"), HoursWorked: d("80")}),
		attrs("GerenteVentas", payroll.SalaryPlusCommission{Fixed: d("3000"), Rate: d("0.1"), SalesAmount: d("20000")}),
		attrs("Vendedor", payroll.CommissionSalesperson{Rate: d("0.05"), SalesAmount: d("10000")}),
	} {
		_, err := r.Add(a)
		require.NoError(t, err)
	}
	return r, store
}

func names(list []entity.Employee) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Name)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_AsignaIDsYGuarda(t *testing.T) {
	r, store := scenario(t)
	assert.Equal(t, 4, r.Count())
	assert.Equal(t, 5, r.NextID())
	assert.Equal(t, 4, store.saves, "cada alta guarda el archivo")

	e, ok := r.FindByID(3)
	require.True(t, ok)
	assert.Equal(t, "GerenteVentas", e.Name)
}

func TestAdd_RechazaAtributosInvalidos(t *testing.T) {
	r, store := scenario(t)
	a := attrs("X", payroll.FixedSalary{})
	a.Gender = "otro"
	id, err := r.Add(a)
	assert.ErrorIs(t, err, domain.ErrInvalidGender)
	assert.Zero(t, id)
	assert.Equal(t, 4, r.Count())
	assert.Equal(t, 5, r.NextID())
	assert.Equal(t, 4, store.saves)
}

func TestRemoveByID(t *testing.T) {
	r, store := scenario(t)

	removed, err := r.RemoveByID(99)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 4, store.saves, "sin cambios no se guarda")

	removed, err = r.RemoveByID(2)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 5, store.saves)
	_, ok := r.FindByID(2)
	assert.False(t, ok)

	// los IDs no se reutilizan dentro del proceso
	id, err := r.Add(attrs("Nuevo", payroll.FixedSalary{}))
	require.NoError(t, err)
	assert.Equal(t, 5, id)
}

func TestRemoveByID_RecargaRecalculaNextID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.csv")
	r := roster.New(csvfile.NewFileStore(path), nil)
	require.NoError(t, r.Load())
	for _, n := range []string{"A", "B", "C"} {
		_, err := r.Add(attrs(n, payroll.FixedSalary{Amount: d("1")}))
		require.NoError(t, err)
	}

	removed, err := r.RemoveByID(3)
	require.NoError(t, err)
	require.True(t, removed)

	reloaded := roster.New(csvfile.NewFileStore(path), nil)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, []string{"A", "B"}, names(reloaded.ListAll()))
	_, ok := reloaded.FindByID(3)
	assert.False(t, ok)
	assert.Equal(t, 3, reloaded.NextID(), "max(ids restantes)+1")
}

func TestFindByName_ExactoYEnOrden(t *testing.T) {
	r, _ := scenario(t)
	_, err := r.Add(attrs("Manager", payroll.FixedSalary{Amount: d("10")}))
	require.NoError(t, err)

	found := r.FindByName("Manager")
	require.Len(t, found, 2)
	assert.Equal(t, 1, found[0].ID)
	assert.Equal(t, 5, found[1].ID)

	assert.Empty(t, r.FindByName("manager"), "la búsqueda distingue mayúsculas")
	assert.NotNil(t, r.FindByName("nadie"))
}

func TestUpdate_SobrescribeTodo(t *testing.T) {
	r, store := scenario(t)
	a := withBirthday(attrs("Renombrado", payroll.HourlyTechnician{Rate: d("10"), HoursWorked: d("3")}), "1991-05-05")
	a.Level = 7

	ok, err := r.Update(1, a)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, store.saves)

	e, _ := r.FindByID(1)
	assert.Equal(t, "Renombrado", e.Name)
	assert.Equal(t, 7, e.Level)
	assert.Equal(t, payroll.TagPartTimeTech, e.RoleTag())
	assert.True(t, e.MonthlyPay().Equal(d("30")))

	ok, err = r.Update(42, a)
	require.NoError(t, err)
	assert.False(t, ok)

	a.Birthday = "1991-02-40"
	_, err = r.Update(1, a)
	assert.ErrorIs(t, err, domain.ErrInvalidBirthday)
}

func TestListAll_DevuelveCopias(t *testing.T) {
	r, _ := scenario(t)
	list := r.ListAll()
	list[0].Name = "modificado"
	e, _ := r.FindByID(1)
	assert.Equal(t, "Manager", e.Name)
}

func TestPromote(t *testing.T) {
	r, store := scenario(t)

	require.NoError(t, r.PromoteAll(1))
	assert.Equal(t, 5, store.saves, "promoción general guarda una sola vez")
	for _, e := range r.ListAll() {
		assert.Equal(t, 2, e.Level)
	}

	ok, err := r.Promote(4, 3)
	require.NoError(t, err)
	require.True(t, ok)
	e, _ := r.FindByID(4)
	assert.Equal(t, 5, e.Level)

	ok, err = r.Promote(99, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestRanking_EstableEnEmpates(t *testing.T) {
	r, _ := scenario(t)
	ranking := r.Ranking()
	assert.Equal(t, []string{"Manager", "GerenteVentas", "Tecnico", "Vendedor"}, names(ranking))
	assert.True(t, ranking[0].MonthlyPay().Equal(d("5000")))
	assert.True(t, ranking[1].MonthlyPay().Equal(d("5000")))
	assert.True(t, ranking[2].MonthlyPay().Equal(d("4000")))
	assert.True(t, ranking[3].MonthlyPay().Equal(d("500")))

	// el roster conserva el orden de inserción
	assert.Equal(t, []string{"Manager", "Tecnico", "GerenteVentas", "Vendedor"}, names(r.ListAll()))
}

func TestStatistics(t *testing.T) {
	r, _ := scenario(t)
	stats := r.Statistics()
	assert.Equal(t, 4, stats.Employees)
	assert.True(t, stats.Total.Equal(d("14500")))
	require.Len(t, stats.ByRole, 4)

	byTag := map[payroll.RoleTag]roster.RoleStats{}
	for _, rs := range stats.ByRole {
		byTag[rs.Tag] = rs
	}
	assert.Equal(t, 1, byTag[payroll.TagManager].Count)
	assert.True(t, byTag[payroll.TagPartTimeTech].Total.Equal(d("4000")))
	assert.Equal(t, "3.45", byTag[payroll.TagPartTimeSales].Percent.StringFixed(2))

	sum := decimal.Zero
	for _, rs := range stats.ByRole {
		sum = sum.Add(rs.Percent)
	}
	assert.Equal(t, "100.00", sum.StringFixed(2))
}

func TestStatistics_RosterVacio(t *testing.T) {
	r := roster.New(&memStore{}, nil)
	require.NoError(t, r.Load())
	stats := r.Statistics()
	assert.True(t, stats.Total.IsZero())
	require.Len(t, stats.ByRole, 4)
	for _, rs := range stats.ByRole {
		assert.Zero(t, rs.Count)
		assert.True(t, rs.Percent.IsZero())
	}
}

func TestStatistics_TotalCeroConEmpleados(t *testing.T) {
	r := roster.New(&memStore{}, nil)
	_, err := r.Add(attrs("Cero", payroll.FixedSalary{}))
	require.NoError(t, err)
	stats := r.Statistics()
	assert.Equal(t, 1, stats.ByRole[0].Count)
	assert.True(t, stats.ByRole[0].Percent.IsZero())
}

func TestBirthdayReminder(t *testing.T) {
	r := roster.New(&memStore{}, nil)
	for _, a := range []entity.Attributes{
		withBirthday(attrs("Cerca", payroll.FixedSalary{}), "1990-12-15"),
		withBirthday(attrs("Lejos", payroll.FixedSalary{}), "1990-12-25"),
		withBirthday(attrs("Hoy", payroll.FixedSalary{}), "1985-12-11"),
		attrs("SinFecha", payroll.FixedSalary{}),
		withBirthday(attrs("Pasado", payroll.FixedSalary{}), "1980-12-10"),
	} {
		_, err := r.Add(a)
		require.NoError(t, err)
	}

	ref := time.Date(2025, time.December, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"Cerca", "Hoy"}, names(r.BirthdayReminder(ref, 7)))
}

func TestBirthdayReminder_CruceDeAnio(t *testing.T) {
	r := roster.New(&memStore{}, nil)
	_, err := r.Add(withBirthday(attrs("Enero", payroll.FixedSalary{}), "1990-01-02"))
	require.NoError(t, err)

	// 30-dic: ordinal 12*31+30=402; 2-ene: 1*31+2=33, +365=398 < 402 → diferencia negativa, entra
	ref := time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC)
	assert.Len(t, r.BirthdayReminder(ref, 7), 1)

	// 25-dic: 397; 398-397=1
	ref = time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)
	assert.Len(t, r.BirthdayReminder(ref, 0), 0)
	assert.Len(t, r.BirthdayReminder(ref, 1), 1)
}

func TestBirthdayReminder_FechasInvalidasExcluidas(t *testing.T) {
	store := &memStore{rows: []*entity.Employee{
		{ID: 1, Attributes: entity.Attributes{Name: "Mala", Gender: entity.GenderMale, Level: 1, Birthday: "1990-13-15", Role: payroll.FixedSalary{}}},
		{ID: 2, Attributes: entity.Attributes{Name: "Corta", Gender: entity.GenderMale, Level: 1, Birthday: "1990-1-15", Role: payroll.FixedSalary{}}},
	}}
	r := roster.New(store, nil)
	require.NoError(t, r.Load())
	ref := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, r.BirthdayReminder(ref, 365))
}

// ──────────────────────────────────────────────────────────────────────────────
// Degradación ante errores de archivo
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_ErrorDeLecturaDejaRosterVacio(t *testing.T) {
	store := &memStore{
		rows:    []*entity.Employee{{ID: 10, Attributes: attrs("X", payroll.FixedSalary{})}},
		loadErr: domain.ErrDataFileRead,
	}
	r := roster.New(store, nil)
	err := r.Load()
	assert.ErrorIs(t, err, domain.ErrDataFileRead)
	assert.Zero(t, r.Count())
	assert.Equal(t, 1, r.NextID())
}

func TestLoad_ArchivoInexistenteNoEsError(t *testing.T) {
	r := roster.New(csvfile.NewFileStore(filepath.Join(t.TempDir(), "x.csv")), nil)
	assert.NoError(t, r.Load())
	assert.Zero(t, r.Count())
}

func TestLoad_RecalculaNextIDDesdeMaximo(t *testing.T) {
	store := &memStore{rows: []*entity.Employee{
		{ID: 7, Attributes: attrs("A", payroll.FixedSalary{})},
		{ID: 3, Attributes: attrs("B", payroll.FixedSalary{})},
	}}
	r := roster.New(store, nil)
	require.NoError(t, r.Load())
	assert.Equal(t, 8, r.NextID())
}

func TestSave_ErrorConservaEstado(t *testing.T) {
	store := &memStore{saveErr: errors.Join(domain.ErrDataFileWrite, errors.New("disco lleno"))}
	r := roster.New(store, nil)
	id, err := r.Add(attrs("A", payroll.FixedSalary{}))
	assert.ErrorIs(t, err, domain.ErrDataFileWrite)
	assert.Equal(t, 1, id)
	assert.Equal(t, 1, r.Count(), "el alta queda en memoria aunque falle el guardado")
}
