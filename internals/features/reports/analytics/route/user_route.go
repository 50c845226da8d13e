package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "campusreach_backend/internals/features/reports/analytics/controller"
)

func AnalyticsRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := analyticsController.NewAnalyticsController(db)

	analytics := user.Group("/analytics")
	analytics.Get("/monthly-summary", ctrl.MonthlySummary)
	analytics.Get("/national-dashboard", ctrl.NationalDashboard)
}
