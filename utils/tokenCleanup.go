package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/PiotrO9/elearning/models"
)

// logCleanup logs cleanup job events with timestamp
func logCleanup(message string) {
	log.Printf("[TOKEN-CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredTokens deletes refresh-token rows whose expiry has passed.
// Expired tokens are already rejected at use; this keeps the table from
// growing without bound.
func purgeExpiredTokens(db *gorm.DB) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{})
	if result.Error != nil {
		logCleanup("Error purging expired refresh tokens: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logCleanup("Purged expired refresh tokens")
	}
}

// StartTokenCleanup schedules the hourly purge and returns the runner so the
// caller owns its lifecycle.
func StartTokenCleanup(db *gorm.DB) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() { purgeExpiredTokens(db) }); err != nil {
		log.Fatalf("Failed to schedule token cleanup: %v", err)
	}
	c.Start()
	logCleanup("Scheduler started")
	return c
}
