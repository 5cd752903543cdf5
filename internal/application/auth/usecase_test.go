package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-admin-api/internal/application/auth"
	"github.com/jhoicas/pos-admin-api/internal/application/dto"
	"github.com/jhoicas/pos-admin-api/internal/domain"
	"github.com/jhoicas/pos-admin-api/internal/domain/entity"
	"github.com/jhoicas/pos-admin-api/internal/domain/repository"
	"github.com/jhoicas/pos-admin-api/pkg/jwt"
)

const testSecret = "clave-de-prueba-para-tests"

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if exists, _ := f.EmailExists(u.Email, 0); exists {
		return domain.ErrEmailAlreadyExists
	}
	u.ID = f.nextID
	f.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) EmailExists(email string, excludeID int64) (bool, error) {
	for _, u := range f.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func newAuthUseCase(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pos-admin-api",
	})
}

func seedUser(t *testing.T, repo *fakeUserRepo, name, email, password string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Email: strings.ToLower(email), Name: name, PasswordHash: string(hash), Role: role}
	require.NoError(t, repo.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	jane := seedUser(t, repo, "Jane Doe", "jane@x.com", "abcd", entity.RoleCashier)
	uc := newAuthUseCase(repo)

	user, err := uc.Authenticate("jane@x.com", "abcd")
	require.NoError(t, err)
	assert.Equal(t, jane.ID, user.ID)
	assert.Equal(t, entity.RoleCashier, user.Role)
}

func TestAuthenticate_EmailSinDistinguirMayusculas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "Jane Doe", "jane@x.com", "abcd", entity.RoleCashier)
	uc := newAuthUseCase(repo)

	_, err := uc.Authenticate("JANE@X.COM", "abcd")
	assert.NoError(t, err)
}

// Todo fallo de autenticación colapsa en el mismo error: campos vacíos, email
// inexistente y contraseña incorrecta son indistinguibles para el cliente.
func TestAuthenticate_FallosIndistinguibles(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "Jane Doe", "jane@x.com", "abcd", entity.RoleCashier)
	uc := newAuthUseCase(repo)

	cases := []struct {
		name            string
		email, password string
	}{
		{"email vacío", "", "abcd"},
		{"password vacía", "jane@x.com", ""},
		{"ambos vacíos", "", ""},
		{"email inexistente", "nadie@x.com", "abcd"},
		{"password incorrecta", "jane@x.com", "incorrecta"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := uc.Authenticate(tc.email, tc.password)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	repo := newFakeUserRepo()
	jane := seedUser(t, repo, "Jane Doe", "jane@x.com", "abcd", entity.RoleManager)
	uc := newAuthUseCase(repo)

	out, err := uc.Login(dto.LoginRequest{Email: "jane@x.com", Password: "abcd"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, jane.ID, out.User.ID)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "jane@x.com", claims.Email)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, jane.ID, id)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti único")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	out, err := uc.Login(dto.LoginRequest{Email: "nadie@x.com", Password: "abcd"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolPorDefectoCashier(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Jane Doe", Email: "Jane@X.com", Password: "abcd",
	})
	require.NoError(t, err)
	assert.Equal(t, "cashier", out.Role)
	// El email se almacena normalizado a minúsculas.
	assert.Equal(t, "jane@x.com", out.Email)
}

func TestRegister_RolExplicito(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Inven Tario", Email: "inv@x.com", Password: "abcd", Role: "inventory",
	})
	require.NoError(t, err)
	assert.Equal(t, "inventory", out.Role)
}

func TestRegister_RolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{
		Name: "Jane Doe", Email: "jane@x.com", Password: "abcd", Role: "superuser",
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "rol inválido", err.Error())
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "Jane Doe", "jane@x.com", "abcd", entity.RoleCashier)
	uc := newAuthUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{
		Name: "Jane Clone", Email: "JANE@x.com", Password: "abcd",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordHasheada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Jane Doe", Email: "jane@x.com", Password: "abcd",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "abcd", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("abcd")))

	// Tras el registro, las mismas credenciales autentican.
	_, err = uc.Authenticate("jane@x.com", "abcd")
	assert.NoError(t, err)
}
