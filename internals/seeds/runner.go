package seeds

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campusreach_backend/internals/constants"
	fellowshipModel "campusreach_backend/internals/features/organization/fellowships/model"
	zoneModel "campusreach_backend/internals/features/organization/zones/model"
	userModel "campusreach_backend/internals/features/users/user/model"
)

// RunAllSeeds is idempotent: every seed checks for its marker row first so
// the runner can be called on every boot.
func RunAllSeeds(db *gorm.DB) {
	SeedAdminUser(db)
	SeedSampleOrganization(db)
}

// SeedAdminUser creates the bootstrap admin account when no admin exists.
// Credentials come from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("role = ?", constants.RoleAdmin).Count(&count).Error; err != nil {
		log.Printf("❌ admin seed count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ admin seed hash failed: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserName: "national_admin",
		FullName: "National Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     constants.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ admin seed failed: %v", err)
		return
	}
	log.Printf("✅ Seeded admin user %s", email)
}

// SeedSampleOrganization creates two starter zones with one fellowship each
// so a fresh install has an org tree to report against.
func SeedSampleOrganization(db *gorm.DB) {
	var count int64
	if err := db.Model(&zoneModel.ZoneModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ zone seed count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	zones := []struct {
		zone       zoneModel.ZoneModel
		fellowship fellowshipModel.FellowshipModel
	}{
		{
			zone: zoneModel.ZoneModel{ZoneName: "Lagos Zone", ZoneCode: "LAG"},
			fellowship: fellowshipModel.FellowshipModel{
				FellowshipName:        "Unilag Fellowship",
				FellowshipCampus:      "University of Lagos",
				FellowshipMeetingDays: []string{"Sunday", "Wednesday"},
			},
		},
		{
			zone: zoneModel.ZoneModel{ZoneName: "Ibadan Zone", ZoneCode: "IBD"},
			fellowship: fellowshipModel.FellowshipModel{
				FellowshipName:        "UI Fellowship",
				FellowshipCampus:      "University of Ibadan",
				FellowshipMeetingDays: []string{"Sunday", "Thursday"},
			},
		},
	}

	for _, entry := range zones {
		zone := entry.zone
		if err := db.Create(&zone).Error; err != nil {
			log.Printf("❌ zone seed failed (%s): %v", zone.ZoneCode, err)
			continue
		}
		fellowship := entry.fellowship
		fellowship.FellowshipZoneID = zone.ZoneID
		if err := db.Create(&fellowship).Error; err != nil {
			log.Printf("❌ fellowship seed failed (%s): %v", fellowship.FellowshipName, err)
		}
	}
	log.Println("✅ Seeded sample zones and fellowships")
}
