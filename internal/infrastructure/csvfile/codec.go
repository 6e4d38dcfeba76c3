// Package csvfile implementa la persistencia del roster en un archivo plano
// delimitado por comas (sin comillas ni escape).
//
// Layout actual (9 columnas):
//
//	id,name,role,level,gender,birthday,param1,param2,param3
//
// | role          | param1          | param2          | param3      |
// |---------------|-----------------|-----------------|-------------|
// | Manager       | sueldo fijo     | 0               | 0           |
// | PartTimeTech  | tarifa por hora | horas           | 0           |
// | SalesManager  | sueldo fijo     | tasa comisión   | ventas      |
// | PartTimeSales | tasa comisión   | 0               | ventas      |
//
// Montos a 2 decimales, tasas de comisión a 4.
// Se siguen leyendo los layouts anteriores: 5 columnas (sin cumpleaños ni
// parámetros), 6 columnas (con cumpleaños) y 8 columnas sin cumpleaños.
package csvfile

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
)

const (
	// Header primera línea del archivo.
	Header = "id,name,role,level,gender,birthday,param1,param2,param3"
	// Delimiter separador de columnas.
	Delimiter = ","

	moneyPlaces = 2
	ratePlaces  = 4

	minColumns    = 5
	legacyColumns = 8 // id,name,role,level,gender,p1,p2,p3 (antes de agregar birthday)
)

// SplitRow separa una línea en columnas.
func SplitRow(line string) []string {
	return strings.Split(line, Delimiter)
}

// IsHeader indica si la fila es el encabezado (primera columna literal "id").
func IsHeader(cols []string) bool {
	return len(cols) > 0 && cols[0] == "id"
}

// EncodeRow serializa un empleado en el orden fijo de columnas.
func EncodeRow(e *entity.Employee) string {
	p1, p2, p3 := encodeParams(e.Role)
	cols := []string{
		strconv.Itoa(e.ID),
		e.Name,
		string(e.RoleTag()),
		strconv.Itoa(e.Level),
		string(e.Gender),
		e.Birthday,
		p1, p2, p3,
	}
	return strings.Join(cols, Delimiter)
}

func encodeParams(r payroll.Role) (string, string, string) {
	const zero = "0"
	switch v := r.(type) {
	case payroll.FixedSalary:
		return money(v.Amount), zero, zero
	case payroll.HourlyTechnician:
		return money(v.Rate), money(v.HoursWorked), zero
	case payroll.SalaryPlusCommission:
		return money(v.Fixed), rate(v.Rate), money(v.SalesAmount)
	case payroll.CommissionSalesperson:
		return rate(v.Rate), zero, money(v.SalesAmount)
	}
	return zero, zero, zero
}

func money(d decimal.Decimal) string { return d.StringFixed(moneyPlaces) }
func rate(d decimal.Decimal) string  { return d.StringFixed(ratePlaces) }

// DecodeRow reconstruye un empleado a partir de las columnas de una fila.
// ok=false si la fila debe descartarse: menos de 5 columnas, id sin entero inicial o rol desconocido.
// Id y nivel toman el entero inicial de la columna ("2.5" es 2, "3abc" es 3).
// Nivel sin entero inicial queda en 1; parámetros ausentes o no numéricos quedan en 0.
func DecodeRow(cols []string) (*entity.Employee, bool) {
	if len(cols) < minColumns {
		return nil, false
	}
	id, ok := leadingInt(cols[0])
	if !ok {
		return nil, false
	}
	tag := payroll.RoleTag(cols[2])
	if !tag.Valid() {
		return nil, false
	}
	level, ok := leadingInt(cols[3])
	if !ok {
		level = entity.DefaultLevel
	}

	var (
		birthday string
		params   []string
	)
	switch {
	case len(cols) == minColumns:
		// layout mínimo: sin cumpleaños ni parámetros
	case len(cols) == legacyColumns && !looksLikeBirthday(cols[5]):
		params = cols[5:8]
	default:
		birthday = cols[5]
		params = cols[6:min(len(cols), 9)]
	}

	e := &entity.Employee{
		ID: id,
		Attributes: entity.Attributes{
			Name:     cols[1],
			Gender:   entity.Gender(cols[4]),
			Level:    level,
			Birthday: birthday,
			Role:     decodeParams(tag, params),
		},
	}
	return e, true
}

// leadingInt interpreta el entero al inicio de s: espacios iniciales, signo opcional y dígitos.
// El resto de la cadena se ignora. false si no hay dígitos o el valor desborda int.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// looksLikeBirthday distingue la columna 5 de una fila de 8 columnas:
// vacía o fecha válida es el layout nuevo truncado, cualquier otra cosa es el layout sin cumpleaños.
func looksLikeBirthday(s string) bool {
	return s == "" || entity.ValidBirthday(s)
}

func decodeParams(tag payroll.RoleTag, params []string) payroll.Role {
	p := func(i int) decimal.Decimal {
		if i >= len(params) {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(strings.TrimSpace(params[i]))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	switch tag {
	case payroll.TagManager:
		return payroll.FixedSalary{Amount: p(0)}
	case payroll.TagPartTimeTech:
		return payroll.HourlyTechnician{Rate: p(0), HoursWorked: p(1)}
	case payroll.TagSalesManager:
		return payroll.SalaryPlusCommission{Fixed: p(0), Rate: p(1), SalesAmount: p(2)}
	case payroll.TagPartTimeSales:
		return payroll.CommissionSalesperson{Rate: p(0), SalesAmount: p(2)}
	}
	return nil
}
