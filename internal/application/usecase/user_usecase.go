package usecase

import (
	"github.com/jhoicas/pos-admin-api/internal/application/dto"
	"github.com/jhoicas/pos-admin-api/internal/domain"
	"github.com/jhoicas/pos-admin-api/internal/domain/entity"
	"github.com/jhoicas/pos-admin-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost costo del hash de contraseñas para altas y cambios vía admin.
const bcryptCost = 12

// UserUseCase ciclo de vida de cuentas, restringido al rol admin.
// Todas las operaciones reciben el Caller de forma explícita; la verificación
// de rol ocurre aquí además del middleware, para que las reglas sean
// comprobables sin servidor HTTP.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios, sin hash de contraseña.
func (uc *UserUseCase) List(caller dto.Caller) ([]dto.UserResponse, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// Create valida, verifica unicidad de email (case-insensitive), hashea la
// contraseña y persiste. Toda la validación ocurre antes de cualquier mutación.
func (uc *UserUseCase) Create(caller dto.Caller, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	fields, err := validateUserFields(in.Name, in.Email, in.Password, in.Role, false)
	if err != nil {
		return nil, err
	}
	exists, err := uc.repo.EmailExists(fields.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        fields.Email,
		Name:         fields.Name,
		PasswordHash: string(hash),
		Role:         fields.Role,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Update modifica nombre, email y rol de la cuenta destino. La contraseña solo
// se re-hashea si viene en la petición; vacía conserva el hash anterior.
func (uc *UserUseCase) Update(caller dto.Caller, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	fields, err := validateUserFields(in.Name, in.Email, in.Password, in.Role, true)
	if err != nil {
		return nil, err
	}
	// Rechazar solo colisiones con una cuenta distinta; conservar el propio email es válido.
	exists, err := uc.repo.EmailExists(fields.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	user.Name = fields.Name
	user.Email = fields.Email
	user.Role = fields.Role
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
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

// Delete elimina la cuenta destino y devuelve un resumen para auditoría.
// La auto-eliminación se rechaza incondicionalmente, incluso para un admin
// borrándose a sí mismo, y antes de consultar si el destino existe.
func (uc *UserUseCase) Delete(caller dto.Caller, id int64) (*dto.DeletedUserResponse, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if id == caller.ID {
		return nil, domain.ErrSelfDelete
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.DeletedUserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
