package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "campusreach_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler prunes expired blacklist entries and stale
// refresh tokens on an interval so the tables stay small.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			res := db.Where("expired_at < NOW()").Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP] blacklist prune failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] pruned %d expired blacklist tokens", res.RowsAffected)
			}

			res = db.Where("expires_at < NOW() OR revoked_at IS NOT NULL").Delete(&authModel.RefreshTokenModel{})
			if res.Error != nil {
				log.Printf("[CLEANUP] refresh prune failed: %v", res.Error)
			}
		}
	}()
}
