package usecase

import (
	"github.com/jhoicas/pos-admin-api/internal/application/dto"
	"github.com/jhoicas/pos-admin-api/internal/domain"
	"github.com/jhoicas/pos-admin-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// ProfileUseCase operaciones del usuario autenticado sobre su propia cuenta.
// La identidad proviene siempre del claim del token, nunca de un id del cliente.
type ProfileUseCase struct {
	repo repository.UserRepository
}

// NewProfileUseCase construye el caso de uso de perfil.
func NewProfileUseCase(repo repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get devuelve la cuenta del solicitante, sin hash.
func (uc *ProfileUseCase) Get(callerID int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(user), nil
}

// Update modifica nombre y email propios; el rol no es editable desde aquí.
// El cambio de contraseña exige la contraseña actual verificable: si no
// verifica, el hash almacenado queda intacto. CurrentPassword sin NewPassword
// se ignora. El token activo no se reemite: los cambios de claim se ven en el
// próximo login.
func (uc *ProfileUseCase) Update(callerID int64, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	// El rol del propio usuario no cambia; la validación cubre nombre y email.
	fields, err := validateUserFields(in.Name, in.Email, "", string(user.Role), true)
	if err != nil {
		return nil, err
	}

	// Al cambiar contraseña: primero exigir la actual, después la longitud de
	// la nueva. La verificación contra el hash ocurre más abajo, tras el chequeo
	// de colisión de email.
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, domain.NewValidationError("la contraseña actual es requerida para cambiar la contraseña")
		}
		if len(in.NewPassword) < minPasswordLength {
			return nil, domain.NewValidationError("la contraseña debe tener al menos 4 caracteres")
		}
	}

	exists, err := uc.repo.EmailExists(fields.Email, callerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	user.Name = fields.Name
	user.Email = fields.Email
	if in.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return nil, domain.ErrCurrentPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}
