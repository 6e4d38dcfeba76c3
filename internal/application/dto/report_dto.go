package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Nomina-api/internal/application/roster"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

// RankingItemDTO posición en el ranking por pago (1 = mayor pago).
type RankingItemDTO struct {
	Rank       int             `json:"rank"`
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	MonthlyPay decimal.Decimal `json:"monthly_pay"`
}

// RankingResponse ranking completo.
type RankingResponse struct {
	Items []RankingItemDTO `json:"items"`
}

// ToRankingResponse numera el ranking en el orden recibido.
func ToRankingResponse(ranked []entity.Employee) RankingResponse {
	items := make([]RankingItemDTO, 0, len(ranked))
	for i, e := range ranked {
		items = append(items, RankingItemDTO{
			Rank:       i + 1,
			ID:         e.ID,
			Name:       e.Name,
			Role:       string(e.RoleTag()),
			MonthlyPay: e.MonthlyPay(),
		})
	}
	return RankingResponse{Items: items}
}

// RoleStatsDTO agregados por rol.
type RoleStatsDTO struct {
	Role    string          `json:"role"`
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Percent decimal.Decimal `json:"percent"` // participación % en el pago total
}

// StatisticsResponse pago total y desglose por rol.
type StatisticsResponse struct {
	Employees int             `json:"employees"`
	Total     decimal.Decimal `json:"total"`
	ByRole    []RoleStatsDTO  `json:"by_role"`
}

// ToStatisticsResponse mapea las estadísticas del roster.
func ToStatisticsResponse(st roster.Statistics) StatisticsResponse {
	out := StatisticsResponse{Employees: st.Employees, Total: st.Total, ByRole: make([]RoleStatsDTO, 0, len(st.ByRole))}
	for _, rs := range st.ByRole {
		out.ByRole = append(out.ByRole, RoleStatsDTO{
			Role:    string(rs.Tag),
			Count:   rs.Count,
			Total:   rs.Total,
			Percent: rs.Percent.Round(4),
		})
	}
	return out
}

// BirthdayResponse empleados con cumpleaños dentro de la ventana.
type BirthdayResponse struct {
	Date  string             `json:"date"`
	Days  int                `json:"days"`
	Items []EmployeeResponse `json:"items"`
}
