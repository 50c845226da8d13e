// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fellowshipRoute "campusreach_backend/internals/features/organization/fellowships/route"
	zoneRoute "campusreach_backend/internals/features/organization/zones/route"
	activityRoute "campusreach_backend/internals/features/reports/activity/route"
	analyticsRoute "campusreach_backend/internals/features/reports/analytics/route"
	fellowshipOutreachRoute "campusreach_backend/internals/features/reports/fellowship_outreach/route"
	financialRoute "campusreach_backend/internals/features/reports/financial/route"
	outreachRoute "campusreach_backend/internals/features/reports/outreach/route"
	authRoute "campusreach_backend/internals/features/users/auth/route"
	userRoute "campusreach_backend/internals/features/users/user/route"
	authMw "campusreach_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("📁 Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("📁 Setting up PRIVATE group (/api/u)...")
	user := app.Group("/api/u", authMw.AuthMiddleware(db))

	zoneRoute.ZoneUserRoutes(user, db)
	fellowshipRoute.FellowshipUserRoutes(user, db)

	financialRoute.FinancialReportRoutes(user, db)
	activityRoute.ActivityReportRoutes(user, db)
	fellowshipOutreachRoute.FellowshipOutreachReportRoutes(user, db)
	outreachRoute.OutreachReportRoutes(user, db)

	analyticsRoute.AnalyticsRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("📁 Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a", authMw.AuthMiddleware(db))

	userRoute.UserAdminRoutes(admin, db)
	zoneRoute.ZoneAdminRoutes(admin, db)
	fellowshipRoute.FellowshipAdminRoutes(admin, db)

	log.Println("✅ Routes ready")
}
