package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	foController "campusreach_backend/internals/features/reports/fellowship_outreach/controller"
)

func FellowshipOutreachReportRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := foController.NewFellowshipOutreachReportController(db)

	reports := user.Group("/fellowship-outreach-reports")
	reports.Post("/", ctrl.Submit)
	reports.Get("/", ctrl.List)
	reports.Get("/:id", ctrl.GetByID)
	reports.Put("/:id", ctrl.Update)
	reports.Patch("/:id/decision", ctrl.Decide)
	reports.Delete("/:id", ctrl.Delete)
}
