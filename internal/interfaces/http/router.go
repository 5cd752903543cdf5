package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-admin-api/internal/application/auth"
	"github.com/jhoicas/pos-admin-api/internal/application/usecase"
	"github.com/jhoicas/pos-admin-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProfileUC    *usecase.ProfileUseCase
	JWTSecret    string
	CookieName   string
	TokenMinutes int
}

// Router registra las rutas de la aplicación.
//
// Orden importante: las rutas API (/admin/users, /profile) se registran antes
// que PageGate para que respondan JSON (401/403) y nunca redirect; todo lo que
// caiga después bajo un prefijo protegido recibe el tratamiento de página
// (redirect a login / unauthorized).
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.TokenMinutes)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Administración de cuentas (API, solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	users := app.Group("/admin/users",
		AuthMiddleware(deps.JWTSecret, deps.CookieName),
		RequireRole(entity.RoleAdmin),
	)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Perfil propio (API, cualquier rol autenticado)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile := app.Group("/profile", AuthMiddleware(deps.JWTSecret, deps.CookieName))
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)

	// Páginas protegidas por prefijo
	app.Use(PageGate(deps.JWTSecret, deps.CookieName))
	dash := NewDashboardHandler()
	app.Get("/dashboard", dash.Show("dashboard"))
	app.Get("/admin", dash.Show("admin"))
	app.Get("/manager", dash.Show("manager"))
	app.Get("/cashier", dash.Show("cashier"))
	app.Get("/inventory", dash.Show("inventory"))
}
