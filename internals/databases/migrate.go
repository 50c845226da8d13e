package database

import (
	"log"

	fellowshipModel "campusreach_backend/internals/features/organization/fellowships/model"
	zoneModel "campusreach_backend/internals/features/organization/zones/model"
	activityModel "campusreach_backend/internals/features/reports/activity/model"
	foModel "campusreach_backend/internals/features/reports/fellowship_outreach/model"
	financialModel "campusreach_backend/internals/features/reports/financial/model"
	outreachModel "campusreach_backend/internals/features/reports/outreach/model"
	authModel "campusreach_backend/internals/features/users/auth/model"
	userModel "campusreach_backend/internals/features/users/user/model"
)

// AutoMigrate keeps the schema aligned with the models. Order matters:
// organization tables first, then users, then the report families that
// reference them.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&zoneModel.ZoneModel{},
		&fellowshipModel.FellowshipModel{},
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.RefreshTokenModel{},
		&financialModel.FinancialReportModel{},
		&activityModel.ActivityReportModel{},
		&foModel.FellowshipOutreachReportModel{},
		&outreachModel.OutreachReportModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Migrations applied.")
}
