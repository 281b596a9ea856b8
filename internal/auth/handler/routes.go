package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pranav4002/ACADEMIX/internal/auth/domain"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/v1/auth")
	auth.Post("/sendotp", h.SendOTP)
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Post("/changepassword", h.RequireAuth, h.ChangePassword)
	auth.Get("/me", h.RequireAuth, h.Me)

	// Role-gated entry points for the downstream catalog handlers.
	app.Get("/api/v1/student/dashboard", h.RequireAuth, h.RequireRole(domain.RoleStudent), dashboard("student"))
	app.Get("/api/v1/instructor/dashboard", h.RequireAuth, h.RequireRole(domain.RoleInstructor), dashboard("instructor"))
	app.Get("/api/v1/admin/dashboard", h.RequireAuth, h.RequireRole(domain.RoleAdmin), dashboard("admin"))
}

func dashboard(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "welcome to the " + name + " dashboard"})
	}
}
