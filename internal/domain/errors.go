package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrUsernameTaken   = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrOrderFinalized  = errors.New("la orden ya está finalizada")
	ErrConfirmRequired = errors.New("la operación requiere confirmación explícita")
)
