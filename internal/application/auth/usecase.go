package auth

import (
	"strings"

	"github.com/jhoicas/pos-admin-api/internal/application/dto"
	"github.com/jhoicas/pos-admin-api/internal/domain"
	"github.com/jhoicas/pos-admin-api/internal/domain/entity"
	"github.com/jhoicas/pos-admin-api/internal/domain/repository"
	"github.com/jhoicas/pos-admin-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost costo del hash de contraseñas en el registro.
const bcryptCost = 12

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, verificación de
// credenciales y emisión de token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Authenticate verifica email/password contra el almacén de credenciales.
// Todos los fallos (campos vacíos, email inexistente, contraseña incorrecta)
// colapsan en ErrInvalidCredentials, indistinguibles entre sí, para no
// permitir enumeración de cuentas. Cada llamada es un intento fresco; no hay
// reintentos ni efectos colaterales más allá de la lectura.
func (uc *AuthUseCase) Authenticate(email, password string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login verifica credenciales y genera el JWT con el rol embebido.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Email, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Register crea una cuenta por auto-registro: hashea la contraseña con bcrypt
// y persiste. El rol es opcional y por defecto cashier; si viene, debe
// pertenecer al conjunto cerrado. Devuelve ErrEmailAlreadyExists si el email
// ya está tomado (sin distinguir mayúsculas).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if in.Role == "" {
		role = entity.DefaultRole
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("rol inválido")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := uc.userRepo.EmailExists(email, 0)
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
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
