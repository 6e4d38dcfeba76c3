package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Nomina-api/internal/domain/entity"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})
	_ = v.RegisterValidation("birthday", func(fl validator.FieldLevel) bool {
		return entity.ValidBirthday(fl.Field().String())
	})
	return v
}

// Validate valida la entrada de un empleado.
func (r *EmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// ValidationMessage mensaje legible del primer error de validación.
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fmt.Sprintf("campo %s inválido (%s)", ve[0].Field(), ve[0].Tag())
	}
	return err.Error()
}
