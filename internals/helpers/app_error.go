// file: internals/helpers/app_error.go
package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"campusreach_backend/internals/apperr"
)

// JsonAppError maps the service-layer error taxonomy onto HTTP statuses.
// Controllers call this for every non-nil service error so the mapping
// lives in exactly one place.
func JsonAppError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			return JsonError(c, fiber.StatusBadRequest, ae.Message)
		case apperr.KindAuthorization:
			return JsonError(c, fiber.StatusForbidden, ae.Message)
		case apperr.KindNotFound:
			return JsonError(c, fiber.StatusNotFound, ae.Message)
		case apperr.KindConflict:
			return JsonError(c, fiber.StatusConflict, ae.Message)
		case apperr.KindPeriodResolution:
			// date arithmetic failure is an invariant violation, never defaulted
			log.Printf("[ERROR] period resolution: %s", ae.Message)
			return JsonError(c, fiber.StatusInternalServerError, ae.Message)
		}
	}
	log.Printf("[ERROR] unhandled: %v", err)
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
