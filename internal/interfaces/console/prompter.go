// Package console implementa la sesión interactiva por líneas sobre el roster:
// lectura y validación de entradas, menú y presentación de resultados.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
)

// Prompter lee respuestas línea por línea y aplica las reglas de entrada:
// nombre no vacío y género/cumpleaños se repiten hasta ser válidos;
// nivel y parámetros numéricos toman su valor por defecto sin repetir.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewPrompter construye un Prompter sobre in/out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{sc: bufio.NewScanner(in), out: out}
}

// Line muestra el prompt y devuelve la línea leída (sin \r). io.EOF al terminar la entrada.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.sc.Text(), "\r"), nil
}

// Int lee un entero; def si no se puede interpretar.
func (p *Prompter) Int(prompt string, def int) (int, error) {
	s, err := p.Line(prompt)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(s))
	if convErr != nil {
		return def, nil
	}
	return n, nil
}

// Decimal lee un número decimal; 0 si no se puede interpretar.
func (p *Prompter) Decimal(prompt string) (decimal.Decimal, error) {
	s, err := p.Line(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	v, convErr := decimal.NewFromString(strings.TrimSpace(s))
	if convErr != nil {
		return decimal.Zero, nil
	}
	return v, nil
}

// Name repite hasta recibir un nombre no vacío.
func (p *Prompter) Name() (string, error) {
	for {
		s, err := p.Line("Nombre: ")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(s) != "" {
			return s, nil
		}
		fmt.Fprintln(p.out, "El nombre no puede estar vacío, intente de nuevo.")
	}
}

// Gender repite hasta recibir uno de los dos tokens aceptados.
func (p *Prompter) Gender() (entity.Gender, error) {
	for {
		s, err := p.Line(fmt.Sprintf("Género (%s/%s): ", entity.GenderMale, entity.GenderFemale))
		if err != nil {
			return "", err
		}
		g, vErr := entity.ParseGender(s)
		if vErr == nil {
			return g, nil
		}
		fmt.Fprintf(p.out, "Entrada inválida, el género solo puede ser %s o %s.\n", entity.GenderMale, entity.GenderFemale)
	}
}

// Birthday repite hasta recibir una fecha válida o vacío (sin definir).
func (p *Prompter) Birthday() (string, error) {
	for {
		s, err := p.Line("Fecha de nacimiento (YYYY-MM-DD, vacío para omitir): ")
		if err != nil {
			return "", err
		}
		s = strings.TrimSpace(s)
		if s == "" || entity.ValidBirthday(s) {
			return s, nil
		}
		fmt.Fprintln(p.out, "Fecha inválida, use el formato YYYY-MM-DD (año 1900-2100).")
	}
}

// RoleChoice lee la opción 1-4; ok=false si no es válida.
//
//	1 Manager, 2 PartTimeTech, 3 SalesManager, 4 PartTimeSales
func (p *Prompter) RoleChoice() (payroll.RoleTag, bool, error) {
	fmt.Fprint(p.out, "\nTipo de empleado:\n"+
		"1. Gerente (sueldo fijo)\n"+
		"2. Técnico medio tiempo (por hora)\n"+
		"3. Gerente de ventas (fijo + comisión)\n"+
		"4. Vendedor medio tiempo (comisión)\n")
	n, err := p.Int("Seleccione (1-4): ", 0)
	if err != nil {
		return "", false, err
	}
	switch n {
	case 1:
		return payroll.TagManager, true, nil
	case 2:
		return payroll.TagPartTimeTech, true, nil
	case 3:
		return payroll.TagSalesManager, true, nil
	case 4:
		return payroll.TagPartTimeSales, true, nil
	}
	return "", false, nil
}

// Attributes pide los datos comunes y luego los parámetros del rol.
func (p *Prompter) Attributes(tag payroll.RoleTag) (entity.Attributes, error) {
	var a entity.Attributes
	var err error
	if a.Name, err = p.Name(); err != nil {
		return a, err
	}
	if a.Gender, err = p.Gender(); err != nil {
		return a, err
	}
	if a.Level, err = p.Int("Nivel (entero, por defecto 1): ", entity.DefaultLevel); err != nil {
		return a, err
	}
	if a.Birthday, err = p.Birthday(); err != nil {
		return a, err
	}
	a.Role, err = p.Role(tag)
	return a, err
}

// Role pide los parámetros numéricos de la variante indicada.
func (p *Prompter) Role(tag payroll.RoleTag) (payroll.Role, error) {
	var vals []decimal.Decimal
	read := func(prompts ...string) error {
		for _, pr := range prompts {
			v, err := p.Decimal(pr)
			if err != nil {
				return err
			}
			vals = append(vals, v)
		}
		return nil
	}

	switch tag {
	case payroll.TagManager:
		if err := read("Sueldo fijo mensual: "); err != nil {
			return nil, err
		}
		return payroll.FixedSalary{Amount: vals[0]}, nil
	case payroll.TagPartTimeTech:
		if err := read("Tarifa por hora: ", "Horas trabajadas en el mes: "); err != nil {
			return nil, err
		}
		return payroll.HourlyTechnician{Rate: vals[0], HoursWorked: vals[1]}, nil
	case payroll.TagPartTimeSales:
		if err := read("Tasa de comisión (0.05 = 5%): ", "Ventas del mes: "); err != nil {
			return nil, err
		}
		return payroll.CommissionSalesperson{Rate: vals[0], SalesAmount: vals[1]}, nil
	case payroll.TagSalesManager:
		if err := read("Sueldo fijo mensual: ", "Tasa de comisión (0.05 = 5%): ", "Ventas del mes: "); err != nil {
			return nil, err
		}
		return payroll.SalaryPlusCommission{Fixed: vals[0], Rate: vals[1], SalesAmount: vals[2]}, nil
	}
	return nil, fmt.Errorf("rol %q: %w", tag, domain.ErrUnknownRole)
}
