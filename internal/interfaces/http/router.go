package http

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Nomina-api/internal/application/report"
	"github.com/jhoicas/Nomina-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Roster             *SerializedRoster
	Reports            *report.ReportUseCase
	BirthdayWindowDays int
	Now                func() time.Time // por defecto time.Now
	Log                *logger.Logger
}

// NewApp crea la aplicación Fiber con codificación JSON goccy/go-json,
// recuperación de pánicos, request id y log de peticiones.
func NewApp(name string, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:               name,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	api := app.Group("/api")

	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.Roster, deps.Log)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Post("/promote", employeeHandler.PromoteAll)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/promote", employeeHandler.Promote)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Roster, deps.Reports, deps.BirthdayWindowDays, deps.Now, deps.Log)
	reports.Get("/ranking", reportHandler.Ranking)
	reports.Get("/statistics", reportHandler.Statistics)
	reports.Get("/birthdays", reportHandler.Birthdays)
	reports.Get("/payroll.pdf", reportHandler.PayrollPDF)
}
