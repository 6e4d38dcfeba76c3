package roster

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
)

var hundred = decimal.NewFromInt(100)

// RoleStats agregados de un rol.
type RoleStats struct {
	Tag     payroll.RoleTag
	Count   int
	Total   decimal.Decimal
	Percent decimal.Decimal // Total / total general * 100; 0 si el total general es 0
}

// Statistics totales del roster; ByRole siempre trae los cuatro roles en orden fijo.
type Statistics struct {
	Employees int
	Total     decimal.Decimal
	ByRole    []RoleStats
}

// Statistics calcula el pago total y el desglose por rol.
func (r *Roster) Statistics() Statistics {
	byTag := make(map[payroll.RoleTag]*RoleStats, len(payroll.Tags))
	stats := Statistics{Employees: len(r.employees), Total: decimal.Zero}
	for _, tag := range payroll.Tags {
		stats.ByRole = append(stats.ByRole, RoleStats{Tag: tag, Total: decimal.Zero, Percent: decimal.Zero})
	}
	for i := range stats.ByRole {
		byTag[stats.ByRole[i].Tag] = &stats.ByRole[i]
	}

	for _, e := range r.employees {
		pay := e.MonthlyPay()
		stats.Total = stats.Total.Add(pay)
		if rs, ok := byTag[e.RoleTag()]; ok {
			rs.Count++
			rs.Total = rs.Total.Add(pay)
		}
	}

	if stats.Total.IsZero() {
		return stats
	}
	for i := range stats.ByRole {
		stats.ByRole[i].Percent = stats.ByRole[i].Total.Div(stats.Total).Mul(hundred)
	}
	return stats
}
