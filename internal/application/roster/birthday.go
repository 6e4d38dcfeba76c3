package roster

import (
	"time"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

const (
	daysPerOrdinalMonth = 31
	daysPerOrdinalYear  = 365
)

// ordinal aproximación mes*31+día; no es el día del año real.
func ordinal(month, day int) int {
	return month*daysPerOrdinalMonth + day
}

// BirthdayReminder empleados cuyo cumpleaños cae dentro de windowDays a partir de ref.
// Usa la aritmética aproximada mes*31+día; si el cumpleaños ya pasó se suma 365.
// Cumpleaños vacíos o inválidos se excluyen sin error. Orden del roster.
func (r *Roster) BirthdayReminder(ref time.Time, windowDays int) []entity.Employee {
	today := ordinal(int(ref.Month()), ref.Day())
	out := []entity.Employee{}
	for _, e := range r.employees {
		month, day, ok := e.BirthdayMonthDay()
		if !ok {
			continue
		}
		bd := ordinal(month, day)
		if bd < today {
			bd += daysPerOrdinalYear
		}
		if bd-today <= windowDays {
			out = append(out, *e)
		}
	}
	return out
}
