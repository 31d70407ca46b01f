package jobs

import (
	"testing"
	"time"

	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestUpcomingExchangesWindow(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:reminderdb?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Skill{}, &models.Exchange{}))
	database.DB = db

	now := time.Now()
	create := func(status string, startsIn time.Duration) *models.Exchange {
		exchange := &models.Exchange{
			SkillID:   1,
			LearnerID: 1,
			TeacherID: 2,
			Status:    status,
			StartDate: now.Add(startsIn),
			EndDate:   now.Add(startsIn + time.Hour),
		}
		require.NoError(t, db.Create(exchange).Error)
		return exchange
	}

	lowerEdge := create(models.ExchangeAccepted, 60*time.Minute)
	inside := create(models.ExchangeAccepted, 63*time.Minute)
	// The upper bound belongs to the next run, not this one.
	create(models.ExchangeAccepted, 65*time.Minute)
	create(models.ExchangeAccepted, 59*time.Minute)
	create(models.ExchangePending, 62*time.Minute)

	exchanges, err := upcomingExchanges(now)
	require.NoError(t, err)

	ids := make([]uint, 0, len(exchanges))
	for _, e := range exchanges {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []uint{lowerEdge.ID, inside.ID}, ids)
}
