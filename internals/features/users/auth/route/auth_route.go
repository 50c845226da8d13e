package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "campusreach_backend/internals/features/users/auth/controller"
	authService "campusreach_backend/internals/features/users/auth/service"
	"campusreach_backend/internals/middlewares"
	authMw "campusreach_backend/internals/middlewares/auth"
)

// AuthRoutes: public auth endpoints plus the authenticated /me + logout.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	auth := app.Group("/api/auth")

	auth.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	auth.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	auth.Post("/login-google", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.LoginGoogle(db, c)
	})
	auth.Post("/refresh-token", func(c *fiber.Ctx) error {
		return authService.RefreshToken(db, c)
	})

	protected := auth.Group("", authMw.AuthMiddleware(db))
	protected.Post("/logout", func(c *fiber.Ctx) error {
		return authService.Logout(db, c)
	})
	protected.Post("/change-password", func(c *fiber.Ctx) error {
		return authService.ChangePassword(db, c)
	})

	me := authController.NewMeController(db)
	app.Get("/api/u/me", authMw.AuthMiddleware(db), me.Me)
}
