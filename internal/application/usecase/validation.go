package usecase

import (
	"regexp"
	"strings"

	"github.com/jhoicas/pos-admin-api/internal/domain"
	"github.com/jhoicas/pos-admin-api/internal/domain/entity"
)

// Reglas de validación de cuentas. El mínimo de contraseña vive aquí para poder
// endurecer la política en un solo punto.
const (
	minNameLength     = 2
	minPasswordLength = 4
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// userFields campos normalizados tras validar: nombre sin espacios sobrantes,
// email en minúsculas.
type userFields struct {
	Name  string
	Email string
	Role  entity.Role
}

// validateUserFields aplica las reglas en orden fijo: nombre → formato de email →
// contraseña → rol, y devuelve el mensaje de la primera regla que falla. Los
// clientes dependen de esa precedencia para recibir mensajes idénticos.
// passwordOptional permite omitir la contraseña (updates); si viene, se valida igual.
func validateUserFields(name, email, password, role string, passwordOptional bool) (userFields, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return userFields{}, domain.NewValidationError("el nombre es requerido")
	}
	if len([]rune(name)) < minNameLength {
		return userFields{}, domain.NewValidationError("el nombre debe tener al menos 2 caracteres")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return userFields{}, domain.NewValidationError("el email es requerido")
	}
	if !emailRegex.MatchString(email) {
		return userFields{}, domain.NewValidationError("formato de email inválido")
	}

	if password == "" && !passwordOptional {
		return userFields{}, domain.NewValidationError("la contraseña es requerida")
	}
	if password != "" && len(password) < minPasswordLength {
		return userFields{}, domain.NewValidationError("la contraseña debe tener al menos 4 caracteres")
	}

	r := entity.Role(role)
	if !r.Valid() {
		return userFields{}, domain.NewValidationError("rol inválido")
	}

	return userFields{
		Name:  name,
		Email: strings.ToLower(email),
		Role:  r,
	}, nil
}
