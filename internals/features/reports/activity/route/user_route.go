package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "campusreach_backend/internals/features/reports/activity/controller"
)

func ActivityReportRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityReportController(db)

	reports := user.Group("/activity-reports")
	reports.Post("/", ctrl.Submit)
	reports.Get("/", ctrl.List)
	reports.Get("/:id", ctrl.GetByID)
	reports.Put("/:id", ctrl.Update)
	reports.Patch("/:id/decision", ctrl.Decide)
	reports.Delete("/:id", ctrl.Delete)
}
