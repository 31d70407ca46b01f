package jobs

import (
	"log"
	"time"

	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
)

// PurgeExpiredResetTokens removes password reset tokens older than 24 hours.
func PurgeExpiredResetTokens() {
	log.Println("Running job: PurgeExpiredResetTokens...")

	cutoff := time.Now().Add(-24 * time.Hour)

	result := database.DB.
		Where("created_at < ?", cutoff).
		Delete(&models.PasswordResetToken{})
	if result.Error != nil {
		log.Printf("Error purging expired reset tokens: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Purged %d expired reset token(s).", result.RowsAffected)
	}
}
