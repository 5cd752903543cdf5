package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrSelfDelete         = errors.New("no puedes eliminar tu propia cuenta")
	ErrCurrentPassword    = errors.New("la contraseña actual es incorrecta")
)

// ValidationError error de validación de campos. El mensaje es apto para
// mostrarse al cliente tal cual; no se registra como error del servidor.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError construye un error de validación con mensaje para el cliente.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation verifica si un error es de validación.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
