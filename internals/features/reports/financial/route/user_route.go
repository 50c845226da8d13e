package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	financialController "campusreach_backend/internals/features/reports/financial/controller"
)

// FinancialReportRoutes: the whole family is mounted under the
// authenticated group; the workflow decides per-operation who may do what,
// so there is no separate admin mount.
func FinancialReportRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := financialController.NewFinancialReportController(db)

	reports := user.Group("/financial-reports")
	reports.Post("/", ctrl.Submit)
	reports.Get("/", ctrl.List)
	reports.Get("/:id", ctrl.GetByID)
	reports.Put("/:id", ctrl.Update)
	reports.Patch("/:id/decision", ctrl.Decide)
	reports.Delete("/:id", ctrl.Delete)
}
