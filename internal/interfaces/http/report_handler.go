package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/application/report"
	"github.com/jhoicas/Nomina-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// ReportHandler expone ranking, estadísticas, cumpleaños y el PDF mensual.
type ReportHandler struct {
	roster     *SerializedRoster
	reports    *report.ReportUseCase
	windowDays int
	now        func() time.Time
	log        *logger.Logger
}

// NewReportHandler construye el handler. windowDays es la ventana por defecto de cumpleaños.
func NewReportHandler(r *SerializedRoster, reports *report.ReportUseCase, windowDays int, now func() time.Time, log *logger.Logger) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	return &ReportHandler{roster: r, reports: reports, windowDays: windowDays, now: now, log: log}
}

// Ranking godoc
// @Summary      Ranking por pago mensual
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.RankingResponse
// @Router       /api/reports/ranking [get]
func (h *ReportHandler) Ranking(c *fiber.Ctx) error {
	return c.JSON(dto.ToRankingResponse(h.roster.Ranking()))
}

// Statistics godoc
// @Summary      Pago total y desglose por rol
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/reports/statistics [get]
func (h *ReportHandler) Statistics(c *fiber.Ctx) error {
	return c.JSON(dto.ToStatisticsResponse(h.roster.Statistics()))
}

// Birthdays godoc
// @Summary      Cumpleaños próximos
// @Tags         reports
// @Produce      json
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Param        days  query  int     false  "Ventana en días"
// @Success      200   {object}  dto.BirthdayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/birthdays [get]
func (h *ReportHandler) Birthdays(c *fiber.Ctx) error {
	ref := h.now()
	if s := c.Query("date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date debe tener formato YYYY-MM-DD"})
		}
		ref = t
	}
	days := c.QueryInt("days", h.windowDays)
	if days < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DAYS", Message: "days no puede ser negativo"})
	}
	list := h.roster.BirthdayReminder(ref, days)
	return c.JSON(dto.BirthdayResponse{
		Date:  ref.Format(dateLayout),
		Days:  days,
		Items: dto.ToEmployeeList(list),
	})
}

// PayrollPDF godoc
// @Summary      Reporte de nómina en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/payroll.pdf [get]
func (h *ReportHandler) PayrollPDF(c *fiber.Ctx) error {
	out, filename, err := h.reports.DownloadPDF(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("generación del PDF de nómina")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Attachment(filename)
	return c.Send(out)
}
