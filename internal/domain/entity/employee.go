package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
)

// Gender género del empleado; solo se aceptan dos tokens (los mismos de los archivos históricos).
type Gender string

const (
	GenderMale   Gender = "男"
	GenderFemale Gender = "女"
)

// ParseGender valida el texto ingresado contra los dos tokens aceptados.
func ParseGender(s string) (Gender, error) {
	switch g := Gender(s); g {
	case GenderMale, GenderFemale:
		return g, nil
	}
	return "", domain.ErrInvalidGender
}

// DefaultLevel nivel asignado cuando no se indica uno válido.
const DefaultLevel = 1

// Attributes datos mutables de un empleado (todo salvo el ID).
type Attributes struct {
	Name     string
	Gender   Gender
	Level    int
	Birthday string // YYYY-MM-DD o vacío
	Role     payroll.Role
}

// Validate aplica las reglas de construcción: nombre (no vacío, una sola línea), género, cumpleaños y rol.
func (a Attributes) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return domain.ErrEmptyName
	}
	if strings.ContainsAny(a.Name, "\r\n") {
		return fmt.Errorf("%w: el nombre no puede contener saltos de línea", domain.ErrInvalidInput)
	}
	if _, err := ParseGender(string(a.Gender)); err != nil {
		return err
	}
	if a.Birthday != "" && !ValidBirthday(a.Birthday) {
		return domain.ErrInvalidBirthday
	}
	if a.Role == nil {
		return domain.ErrUnknownRole
	}
	return nil
}

// Employee representa un registro del roster.
// El ID lo asigna el roster; el resto son atributos mutables.
type Employee struct {
	ID int
	Attributes
}

// New construye un empleado validado, sin ID asignado.
func New(attrs Attributes) (*Employee, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	return &Employee{Attributes: attrs}, nil
}

// RoleTag devuelve el identificador del rol ("Manager", "PartTimeTech", ...).
func (e *Employee) RoleTag() payroll.RoleTag {
	if e.Role == nil {
		return ""
	}
	return e.Role.Tag()
}

// MonthlyPay pago del mes según el rol.
func (e *Employee) MonthlyPay() decimal.Decimal {
	return payroll.ComputePay(e.Role)
}

// Promote sube el nivel en `by` (1 si by <= 0).
func (e *Employee) Promote(by int) {
	if by <= 0 {
		by = 1
	}
	e.Level += by
}

// ValidBirthday chequeo laxo de fecha: largo 10, guiones en 4 y 7,
// año 1900-2100, mes 1-12, día 1-31. No valida días por mes ni bisiestos.
func ValidBirthday(s string) bool {
	_, _, _, ok := splitBirthday(s)
	return ok
}

// BirthdayMonthDay devuelve mes y día del cumpleaños; ok=false si no está definido o es inválido.
func (e *Employee) BirthdayMonthDay() (month, day int, ok bool) {
	_, month, day, ok = splitBirthday(e.Birthday)
	return month, day, ok
}

func splitBirthday(s string) (year, month, day int, ok bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	y, errY := strconv.Atoi(s[0:4])
	m, errM := strconv.Atoi(s[5:7])
	d, errD := strconv.Atoi(s[8:10])
	if errY != nil || errM != nil || errD != nil {
		return 0, 0, 0, false
	}
	if y < 1900 || y > 2100 || m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	return y, m, d, true
}
