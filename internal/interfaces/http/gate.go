package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-admin-api/internal/domain/entity"
	"github.com/jhoicas/pos-admin-api/pkg/jwt"
)

// Destinos de redirección del gate para rutas de página.
const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

// gateRule prefijo de ruta y roles que pueden entrar. roles vacío significa
// cualquier rol autenticado.
type gateRule struct {
	prefix string
	roles  []entity.Role
}

// gateRules tabla declarativa (prefijo → roles permitidos) consumida por
// Allowed. Agregar un prefijo protegido es una línea aquí, sin tocar el router.
var gateRules = []gateRule{
	{prefix: "/admin", roles: []entity.Role{entity.RoleAdmin}},
	{prefix: "/manager", roles: []entity.Role{entity.RoleAdmin, entity.RoleManager}},
	{prefix: "/cashier", roles: []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleCashier}},
	{prefix: "/inventory", roles: []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleInventory}},
	{prefix: "/dashboard"}, // cualquier rol autenticado
}

// matchPrefix true si path cae bajo prefix (/admin cubre /admin y /admin/x,
// pero no /administration).
func matchPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// ProtectedPrefix indica si la ruta cae bajo algún prefijo protegido.
func ProtectedPrefix(path string) bool {
	for _, rule := range gateRules {
		if matchPrefix(path, rule.prefix) {
			return true
		}
	}
	return false
}

// Allowed decide si un rol puede entrar a una ruta. Es una función pura y
// total de (ruta, rol): sin estado oculto, evaluable en tests de tabla.
// Un rol vacío o fuera del conjunto cerrado (sin token, token inválido) se
// deniega siempre en prefijos protegidos. Las rutas fuera de todo prefijo
// protegido no pasan por el gate y se permiten.
func Allowed(path string, role entity.Role) bool {
	for _, rule := range gateRules {
		if !matchPrefix(path, rule.prefix) {
			continue
		}
		if !role.Valid() {
			return false
		}
		if len(rule.roles) == 0 {
			return true
		}
		for _, r := range rule.roles {
			if role == r {
				return true
			}
		}
		return false
	}
	return true
}

// PageGate protege las rutas de página por prefijo. Sin token (o token
// inválido, tratado igual) redirige a la página de login; con token pero rol
// insuficiente redirige a la página de no autorizado. Nunca deja pasar en
// silencio. En caso de permitir, deja los claims en c.Locals como
// AuthMiddleware.
func PageGate(jwtSecret, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if !ProtectedPrefix(path) {
			return c.Next()
		}

		tokenString := tokenFromRequest(c, cookieName)
		if tokenString == "" {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}
		userID, err := claims.UserID()
		if err != nil {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}

		if !Allowed(path, entity.Role(claims.Role)) {
			return c.Redirect(UnauthorizedPath, fiber.StatusFound)
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}
