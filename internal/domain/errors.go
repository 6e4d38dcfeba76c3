package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("empleado no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrEmptyName       = errors.New("el nombre no puede estar vacío")
	ErrInvalidGender   = errors.New("género inválido, solo se acepta 男 o 女")
	ErrInvalidBirthday = errors.New("fecha de nacimiento inválida, formato YYYY-MM-DD")
	ErrUnknownRole     = errors.New("rol desconocido")
	ErrDataFileMissing = errors.New("archivo de datos inexistente")
	ErrDataFileRead    = errors.New("no se pudo leer el archivo de datos")
	ErrDataFileWrite   = errors.New("no se pudo escribir el archivo de datos")
)
