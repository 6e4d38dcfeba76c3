package payroll

import "github.com/shopspring/decimal"

// RoleTag identificador estable de cada rol; se usa al mostrar y como discriminante en el archivo.
type RoleTag string

const (
	TagManager       RoleTag = "Manager"
	TagPartTimeTech  RoleTag = "PartTimeTech"
	TagSalesManager  RoleTag = "SalesManager"
	TagPartTimeSales RoleTag = "PartTimeSales"
)

// Tags lista los roles en el orden fijo usado por reportes y estadísticas.
var Tags = []RoleTag{TagManager, TagPartTimeTech, TagSalesManager, TagPartTimeSales}

// Valid indica si el tag corresponde a uno de los cuatro roles.
func (t RoleTag) Valid() bool {
	switch t {
	case TagManager, TagPartTimeTech, TagSalesManager, TagPartTimeSales:
		return true
	}
	return false
}

// Role es la unión cerrada de variantes de rol. Solo los tipos de este paquete la implementan.
type Role interface {
	Tag() RoleTag
	sealed()
}

// FixedSalary gerente con sueldo fijo.
type FixedSalary struct {
	Amount decimal.Decimal
}

// HourlyTechnician técnico de medio tiempo pagado por hora.
type HourlyTechnician struct {
	Rate        decimal.Decimal
	HoursWorked decimal.Decimal
}

// CommissionSalesperson vendedor de medio tiempo a comisión (Rate como fracción: 0.05 = 5%).
type CommissionSalesperson struct {
	Rate        decimal.Decimal
	SalesAmount decimal.Decimal
}

// SalaryPlusCommission gerente de ventas: sueldo fijo + comisión sobre ventas.
type SalaryPlusCommission struct {
	Fixed       decimal.Decimal
	Rate        decimal.Decimal
	SalesAmount decimal.Decimal
}

func (FixedSalary) Tag() RoleTag           { return TagManager }
func (HourlyTechnician) Tag() RoleTag      { return TagPartTimeTech }
func (CommissionSalesperson) Tag() RoleTag { return TagPartTimeSales }
func (SalaryPlusCommission) Tag() RoleTag  { return TagSalesManager }

func (FixedSalary) sealed()           {}
func (HourlyTechnician) sealed()      {}
func (CommissionSalesperson) sealed() {}
func (SalaryPlusCommission) sealed()  {}

// ZeroRole devuelve la variante con parámetros en cero para un tag; ok=false si el tag es desconocido.
func ZeroRole(tag RoleTag) (Role, bool) {
	switch tag {
	case TagManager:
		return FixedSalary{}, true
	case TagPartTimeTech:
		return HourlyTechnician{}, true
	case TagSalesManager:
		return SalaryPlusCommission{}, true
	case TagPartTimeSales:
		return CommissionSalesperson{}, true
	}
	return nil, false
}
