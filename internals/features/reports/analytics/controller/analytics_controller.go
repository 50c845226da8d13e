// 📁 controller/analytics_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusreach_backend/internals/features/organization/fellowships/repository"
	analyticsRepo "campusreach_backend/internals/features/reports/analytics/repository"
	"campusreach_backend/internals/features/reports/analytics/service"
	helper "campusreach_backend/internals/helpers"
	authHelper "campusreach_backend/internals/middlewares/auth"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{
		Service: service.NewAnalyticsService(
			analyticsRepo.NewAnalyticsRepository(db),
			repository.NewDirectoryRepository(db),
		),
	}
}

// 🟢 MONTHLY SUMMARY (scoped to the actor's visibility)
func (ctrl *AnalyticsController) MonthlySummary(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	summary, err := ctrl.Service.MonthlySummary(c.Context(), actor, c.QueryInt("year"), c.QueryInt("month"))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Monthly summary fetched", summary)
}

// 🟢 NATIONAL DASHBOARD (admin only)
func (ctrl *AnalyticsController) NationalDashboard(c *fiber.Ctx) error {
	actor, err := authHelper.ActorFromLocals(c)
	if err != nil {
		return err
	}
	dashboard, err := ctrl.Service.NationalDashboard(c.Context(), actor, c.QueryInt("year"), c.QueryInt("month"))
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "National dashboard fetched", dashboard)
}
