package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the app-wide middleware chain. Order matters:
// recovery first so panics in anything below still produce a 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
