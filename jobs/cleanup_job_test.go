package jobs_test

import (
	"testing"
	"time"

	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/jobs"
	"github.com/mwangiben/skill_share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPurgeExpiredResetTokens(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:jobsdb?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PasswordResetToken{}))
	database.DB = db

	fresh := models.PasswordResetToken{Email: "fresh@example.com", TokenHash: "h1"}
	require.NoError(t, db.Create(&fresh).Error)

	stale := models.PasswordResetToken{Email: "stale@example.com", TokenHash: "h2"}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&stale).Update("created_at", time.Now().Add(-25*time.Hour)).Error)

	jobs.PurgeExpiredResetTokens()

	var emails []string
	require.NoError(t, db.Model(&models.PasswordResetToken{}).Pluck("email", &emails).Error)
	assert.Equal(t, []string{"fresh@example.com"}, emails)
}
