package http

import (
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler entrega los datos de los paneles por rol. El acceso ya fue
// decidido por PageGate; aquí solo se responde con la identidad de la sesión
// para que el frontend pinte el panel.
type DashboardHandler struct{}

// NewDashboardHandler construye el handler de paneles.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Show devuelve un handler para el panel indicado.
func (h *DashboardHandler) Show(page string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"page": page,
			"user": fiber.Map{
				"id":   GetUserID(c),
				"name": GetUserName(c),
				"role": GetRole(c),
			},
		})
	}
}
