package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Nomina-api/internal/application/dto"
	"github.com/jhoicas/Nomina-api/internal/domain"
	"github.com/jhoicas/Nomina-api/internal/domain/entity"
	"github.com/jhoicas/Nomina-api/pkg/logger"
)

// EmployeeHandler maneja las peticiones HTTP del roster de empleados.
type EmployeeHandler struct {
	roster *SerializedRoster
	log    *logger.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(r *SerializedRoster, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{roster: r, log: log}
}

// List godoc
// @Summary      Listar empleados
// @Description  Sin filtro devuelve todos en orden de inserción; con name hace búsqueda exacta.
// @Tags         employees
// @Produce      json
// @Param        name  query  string  false  "Nombre exacto"
// @Success      200   {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var list []entity.Employee
	if name := c.Query("name"); name != "" {
		list = h.roster.FindByName(name)
	} else {
		list = h.roster.ListAll()
	}
	items := dto.ToEmployeeList(list)
	return c.JSON(dto.EmployeeListResponse{Items: items, Total: len(items)})
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Produce      json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	e, ok := h.roster.FindByID(id)
	if !ok {
		return notFound(c)
	}
	return c.JSON(dto.ToEmployeeResponse(e))
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: dto.ValidationMessage(err)})
	}
	e, err := h.roster.AddAndGet(in.ToAttributes())
	if err != nil {
		if e.ID == 0 {
			return validationError(c, err)
		}
		return h.saveFailed(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: e.ID, Employee: dto.ToEmployeeResponse(e)})
}

// Update godoc
// @Summary      Reemplazar empleado
// @Description  Sobrescribe todos los atributos; no hay actualización parcial.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "Datos del empleado"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: dto.ValidationMessage(err)})
	}
	e, found, err := h.roster.UpdateAndGet(id, in.ToAttributes())
	if err != nil && !found {
		return validationError(c, err)
	}
	if !found {
		return notFound(c)
	}
	if err != nil {
		return h.saveFailed(c, err)
	}
	return c.JSON(dto.ToEmployeeResponse(e))
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Param        id   path  int  true  "ID del empleado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	removed, err := h.roster.RemoveByID(id)
	if !removed {
		return notFound(c)
	}
	if err != nil {
		return h.saveFailed(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Promote godoc
// @Summary      Promover empleado
// @Tags         employees
// @Produce      json
// @Param        id  path   int  true   "ID del empleado"
// @Param        by  query  int  false  "Niveles a subir" default(1)
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/promote [post]
func (h *EmployeeHandler) Promote(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badID(c)
	}
	by := c.QueryInt("by", 1)
	e, found, err := h.roster.PromoteAndGet(id, by)
	if !found {
		return notFound(c)
	}
	if err != nil {
		return h.saveFailed(c, err)
	}
	return c.JSON(dto.ToEmployeeResponse(e))
}

// PromoteAll godoc
// @Summary      Promover a todos los empleados
// @Tags         employees
// @Produce      json
// @Param        by  query  int  false  "Niveles a subir" default(1)
// @Success      200  {object}  dto.PromoteResponse
// @Router       /api/employees/promote [post]
func (h *EmployeeHandler) PromoteAll(c *fiber.Ctx) error {
	by := c.QueryInt("by", 1)
	if by <= 0 {
		by = 1
	}
	n, err := h.roster.PromoteAll(by)
	if err != nil {
		return h.saveFailed(c, err)
	}
	return c.JSON(dto.PromoteResponse{Promoted: n, By: by})
}

// ── helpers ───────────────────────────────────────────────────────────────────

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
}

func validationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidGender),
		errors.Is(err, domain.ErrInvalidBirthday),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// saveFailed el cambio quedó aplicado en memoria pero no se pudo persistir.
func (h *EmployeeHandler) saveFailed(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("persistencia del roster")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SAVE_FAILED", Message: err.Error()})
}
