package payroll

import "github.com/shopspring/decimal"

// ComputePay calcula el pago mensual de un rol (servicio de dominio puro).
//
//	Manager:       amount
//	PartTimeTech:  rate * hoursWorked
//	PartTimeSales: rate * salesAmount
//	SalesManager:  fixed + rate * salesAmount
//
// No hay validación ni recorte: parámetros negativos producen el resultado algebraico.
func ComputePay(r Role) decimal.Decimal {
	switch v := r.(type) {
	case FixedSalary:
		return v.Amount
	case HourlyTechnician:
		return v.Rate.Mul(v.HoursWorked)
	case CommissionSalesperson:
		return v.Rate.Mul(v.SalesAmount)
	case SalaryPlusCommission:
		return v.Fixed.Add(v.Rate.Mul(v.SalesAmount))
	default:
		return decimal.Zero
	}
}
