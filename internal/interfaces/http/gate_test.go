package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-admin-api/internal/domain/entity"
	apphttp "github.com/jhoicas/pos-admin-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Allowed — matriz prefijo × rol
// ──────────────────────────────────────────────────────────────────────────────

func TestAllowed_MatrizDeRoles(t *testing.T) {
	cases := []struct {
		path string
		role entity.Role
		want bool
	}{
		// /admin: solo admin
		{"/admin", entity.RoleAdmin, true},
		{"/admin/users", entity.RoleAdmin, true},
		{"/admin", entity.RoleManager, false},
		{"/admin", entity.RoleCashier, false},
		{"/admin", entity.RoleInventory, false},

		// /manager: admin y manager
		{"/manager", entity.RoleAdmin, true},
		{"/manager", entity.RoleManager, true},
		{"/manager", entity.RoleCashier, false},
		{"/manager", entity.RoleInventory, false},

		// /cashier: admin, manager y cashier
		{"/cashier", entity.RoleAdmin, true},
		{"/cashier", entity.RoleManager, true},
		{"/cashier", entity.RoleCashier, true},
		{"/cashier", entity.RoleInventory, false},

		// /inventory: admin, manager e inventory
		{"/inventory", entity.RoleAdmin, true},
		{"/inventory", entity.RoleManager, true},
		{"/inventory", entity.RoleInventory, true},
		{"/inventory", entity.RoleCashier, false},

		// /dashboard: cualquier rol autenticado
		{"/dashboard", entity.RoleAdmin, true},
		{"/dashboard", entity.RoleManager, true},
		{"/dashboard", entity.RoleCashier, true},
		{"/dashboard", entity.RoleInventory, true},

		// Rol vacío o desconocido: denegado en todo prefijo protegido
		{"/admin", "", false},
		{"/dashboard", "", false},
		{"/cashier", "superuser", false},

		// Rutas fuera del gate: siempre permitidas
		{"/login", "", true},
		{"/", entity.RoleCashier, true},
		{"/health", "", true},

		// El match es por segmento, no por substring
		{"/administration", entity.RoleCashier, true},
		{"/admin/settings/deep", entity.RoleManager, false},
	}
	for _, tc := range cases {
		got := apphttp.Allowed(tc.path, tc.role)
		assert.Equal(t, tc.want, got, "Allowed(%q, %q)", tc.path, tc.role)
	}
}

func TestProtectedPrefix(t *testing.T) {
	assert.True(t, apphttp.ProtectedPrefix("/admin"))
	assert.True(t, apphttp.ProtectedPrefix("/admin/users"))
	assert.True(t, apphttp.ProtectedPrefix("/dashboard"))
	assert.False(t, apphttp.ProtectedPrefix("/administration"))
	assert.False(t, apphttp.ProtectedPrefix("/login"))
	assert.False(t, apphttp.ProtectedPrefix("/"))
}

// ──────────────────────────────────────────────────────────────────────────────
// PageGate — redirecciones
// ──────────────────────────────────────────────────────────────────────────────

// buildGateApp monta el gate global y un par de rutas de página detrás de él.
func buildGateApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.PageGate(testJWTSecret, testCookieName))

	page := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": apphttp.GetRole(c)})
	}
	app.Get("/dashboard", page)
	app.Get("/admin", page)
	app.Get("/admin/settings", page)
	app.Get("/cashier", page)
	app.Get("/public", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func gateRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestPageGate_SinToken_RedirigeALogin(t *testing.T) {
	app := buildGateApp()

	for _, path := range []string{"/dashboard", "/admin", "/cashier"} {
		resp := gateRequest(t, app, path, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusFound, resp.StatusCode, "ruta %s", path)
		assert.Equal(t, apphttp.LoginPath, resp.Header.Get("Location"))
	}
}

func TestPageGate_TokenInvalido_RedirigeALogin(t *testing.T) {
	app := buildGateApp()

	resp := gateRequest(t, app, "/dashboard", "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.LoginPath, resp.Header.Get("Location"),
		"token inválido recibe el mismo destino que sin token")
}

func TestPageGate_RolInsuficiente_RedirigeAUnauthorized(t *testing.T) {
	app := buildGateApp()

	resp := gateRequest(t, app, "/admin", tokenForRole(t, "cashier"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.UnauthorizedPath, resp.Header.Get("Location"))
}

func TestPageGate_RolPermitido_Pasa(t *testing.T) {
	app := buildGateApp()

	cases := []struct {
		path string
		role string
	}{
		{"/admin", "admin"},
		{"/admin/settings", "admin"},
		{"/cashier", "manager"},
		{"/dashboard", "inventory"},
	}
	for _, tc := range cases {
		resp := gateRequest(t, app, tc.path, tokenForRole(t, tc.role))
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "rol %s en %s debe pasar", tc.role, tc.path)
	}
}

func TestPageGate_RutaNoProtegida_NoExigeToken(t *testing.T) {
	app := buildGateApp()

	resp := gateRequest(t, app, "/public", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El gate también acepta el token por header Bearer, no solo por cookie.
func TestPageGate_TokenPorHeader(t *testing.T) {
	app := buildGateApp()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
