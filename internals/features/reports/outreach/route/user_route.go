package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	outreachController "campusreach_backend/internals/features/reports/outreach/controller"
)

func OutreachReportRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := outreachController.NewOutreachReportController(db)

	reports := user.Group("/outreach-reports")
	reports.Post("/", ctrl.Submit)
	reports.Get("/", ctrl.List)
	reports.Get("/:id", ctrl.GetByID)
	reports.Put("/:id", ctrl.Update)
	reports.Patch("/:id/decision", ctrl.Decide)
	reports.Delete("/:id", ctrl.Delete)
}
