package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/internal/domain/payroll"
)

// RoleParams parámetros numéricos del rol; cada rol usa solo los suyos:
//   - Manager:       amount
//   - PartTimeTech:  rate, hours_worked
//   - SalesManager:  fixed, rate, sales_amount
//   - PartTimeSales: rate, sales_amount
//
// Un parámetro ausente vale 0.
type RoleParams struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Fixed       *decimal.Decimal `json:"fixed,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	HoursWorked *decimal.Decimal `json:"hours_worked,omitempty"`
	SalesAmount *decimal.Decimal `json:"sales_amount,omitempty"`
}

// EmployeeRequest entrada para crear o reemplazar un empleado (PUT sobrescribe todo).
type EmployeeRequest struct {
	Name     string     `json:"name" validate:"required,notblank,singleline,max=200"`
	Gender   string     `json:"gender" validate:"required,oneof=男 女"`
	Level    *int       `json:"level"` // por defecto 1
	Birthday string     `json:"birthday" validate:"omitempty,birthday"`
	Role     string     `json:"role" validate:"required,oneof=Manager PartTimeTech SalesManager PartTimeSales"`
	Params   RoleParams `json:"params"`
}

// ToAttributes convierte la entrada (ya validada) en atributos de dominio.
func (r EmployeeRequest) ToAttributes() entity.Attributes {
	level := entity.DefaultLevel
	if r.Level != nil {
		level = *r.Level
	}
	return entity.Attributes{
		Name:     r.Name,
		Gender:   entity.Gender(r.Gender),
		Level:    level,
		Birthday: r.Birthday,
		Role:     r.Params.toRole(payroll.RoleTag(r.Role)),
	}
}

func (p RoleParams) toRole(tag payroll.RoleTag) payroll.Role {
	v := func(d *decimal.Decimal) decimal.Decimal {
		if d == nil {
			return decimal.Zero
		}
		return *d
	}
	switch tag {
	case payroll.TagManager:
		return payroll.FixedSalary{Amount: v(p.Amount)}
	case payroll.TagPartTimeTech:
		return payroll.HourlyTechnician{Rate: v(p.Rate), HoursWorked: v(p.HoursWorked)}
	case payroll.TagSalesManager:
		return payroll.SalaryPlusCommission{Fixed: v(p.Fixed), Rate: v(p.Rate), SalesAmount: v(p.SalesAmount)}
	case payroll.TagPartTimeSales:
		return payroll.CommissionSalesperson{Rate: v(p.Rate), SalesAmount: v(p.SalesAmount)}
	}
	return nil
}

func paramsFromRole(r payroll.Role) RoleParams {
	ptr := func(d decimal.Decimal) *decimal.Decimal { return &d }
	switch v := r.(type) {
	case payroll.FixedSalary:
		return RoleParams{Amount: ptr(v.Amount)}
	case payroll.HourlyTechnician:
		return RoleParams{Rate: ptr(v.Rate), HoursWorked: ptr(v.HoursWorked)}
	case payroll.SalaryPlusCommission:
		return RoleParams{Fixed: ptr(v.Fixed), Rate: ptr(v.Rate), SalesAmount: ptr(v.SalesAmount)}
	case payroll.CommissionSalesperson:
		return RoleParams{Rate: ptr(v.Rate), SalesAmount: ptr(v.SalesAmount)}
	}
	return RoleParams{}
}

// EmployeeResponse salida de un empleado con su pago calculado.
type EmployeeResponse struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Gender     string          `json:"gender"`
	Level      int             `json:"level"`
	Birthday   string          `json:"birthday,omitempty"`
	Role       string          `json:"role"`
	Params     RoleParams      `json:"params"`
	MonthlyPay decimal.Decimal `json:"monthly_pay"`
}

// ToEmployeeResponse mapea la entidad a la salida HTTP.
func ToEmployeeResponse(e entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Gender:     string(e.Gender),
		Level:      e.Level,
		Birthday:   e.Birthday,
		Role:       string(e.RoleTag()),
		Params:     paramsFromRole(e.Role),
		MonthlyPay: e.MonthlyPay(),
	}
}

// ToEmployeeList mapea una lista conservando el orden.
func ToEmployeeList(list []entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToEmployeeResponse(e))
	}
	return out
}

// EmployeeListResponse lista de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Total int                `json:"total"`
}

// CreatedResponse salida de un alta.
type CreatedResponse struct {
	ID       int              `json:"id"`
	Employee EmployeeResponse `json:"employee"`
}

// PromoteResponse salida de una promoción.
type PromoteResponse struct {
	Promoted int `json:"promoted"`
	By       int `json:"by"`
}
