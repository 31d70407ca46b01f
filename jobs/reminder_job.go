package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/mwangiben/skill_share/database"
	"github.com/mwangiben/skill_share/models"
	"github.com/mwangiben/skill_share/notifications"
)

// upcomingExchanges returns accepted exchanges starting in [now+60m, now+65m).
// The half-open window matches the cron cadence so an exchange landing on a
// run boundary is picked up by exactly one run.
func upcomingExchanges(now time.Time) ([]models.Exchange, error) {
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var exchanges []models.Exchange
	err := database.DB.
		Preload("Skill").
		Preload("Learner").
		Preload("Teacher").
		Where("status = ? AND start_date >= ? AND start_date < ?", models.ExchangeAccepted, lowerBound, upperBound).
		Find(&exchanges).Error
	return exchanges, err
}

// SendExchangeReminders mails both participants of accepted exchanges
// starting within the next hour.
func SendExchangeReminders() {
	log.Println("Running job: SendExchangeReminders...")

	exchanges, err := upcomingExchanges(time.Now())
	if err != nil {
		log.Printf("Error checking for upcoming exchanges: %v", err)
		return
	}

	for _, exchange := range exchanges {
		log.Printf("Sending reminder for exchange ID: %d", exchange.ID)

		subject := "Reminder: Your Skill Exchange Starts in 1 Hour!"
		body := fmt.Sprintf(
			"<h1>Exchange Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your exchange for <b>%s</b> is scheduled to start in one hour at %s.</p>",
			exchange.Skill.Title,
			exchange.StartDate.Format(time.Kitchen),
		)

		notifications.Enqueue(notifications.Email{
			ToName:  exchange.Learner.Name,
			ToEmail: exchange.Learner.Email,
			Subject: subject,
			HTML:    body,
		})
		notifications.Enqueue(notifications.Email{
			ToName:  exchange.Teacher.Name,
			ToEmail: exchange.Teacher.Email,
			Subject: subject,
			HTML:    body,
		})
	}
}
