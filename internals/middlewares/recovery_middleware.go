package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"campusreach_backend/internals/configs"
)

// RecoveryMiddleware catches panics and turns them into a 500. Stack traces
// are printed outside production only.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: !configs.IsProduction(),
	})
}
