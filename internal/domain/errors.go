package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidCredential     = errors.New("contraseña incorrecta")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrForbidden             = errors.New("acceso denegado")
	ErrAdminNotDeletable     = errors.New("las cuentas de administrador no se pueden eliminar")
)
