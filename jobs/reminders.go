package jobs

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/models"
	"github.com/SuryaShibin2198/Surya/notifications"
)

// StartDailyAtFixedTime runs job every day at the given wall-clock time.
// Blocks; run it on its own goroutine.
func StartDailyAtFixedTime(name string, hour, min int, job func()) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Infof("Next %s run scheduled at: %s", name, next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		job()
	}
}

// SendCartReminders emails every user whose cart has active items and has not
// been touched for at least an hour. Read-only; failures are logged.
func SendCartReminders(db *gorm.DB, mailer notifications.EmailSender) {
	oneHourAgo := time.Now().Add(-time.Hour)

	var carts []models.Cart
	if err := db.Scopes(models.Active).Where("updated_at <= ?", oneHourAgo).Find(&carts).Error; err != nil {
		log.WithError(err).Error("Error checking for cart reminders")
		return
	}

	for _, cart := range carts {
		var count int64
		if err := db.Model(&models.CartItem{}).
			Where("user_id = ? AND deleted = ?", cart.UserID, false).
			Count(&count).Error; err != nil || count == 0 {
			continue
		}

		var user models.User
		if err := db.Scopes(models.Active).First(&user, cart.UserID).Error; err != nil {
			continue
		}

		msg := notifications.EmailMessage{
			To:      user.Email,
			Subject: "Reminder: Items in Your Cart",
			Body:    "You have items in your cart that haven't been purchased yet.",
			HTMLBody: fmt.Sprintf("<p>Dear %s,</p>"+
				"<p>You have items in your cart that haven't been purchased yet. Don't miss out on these items</p>"+
				"<p>Best regards,<br>Your Shop Team</p>", user.Name),
		}
		if err := mailer.Send(msg); err != nil {
			log.WithError(err).WithField("email", user.Email).Error("Error sending cart reminder email")
		} else {
			log.Infof("Reminder email sent to %s", user.Email)
		}
	}
}

// SendOfferReminders emails all users about offers starting tomorrow, in
// twelve hours, and today.
func SendOfferReminders(db *gorm.DB, mailer notifications.EmailSender) {
	now := time.Now()

	// Windows must not overlap or one offer mails every user twice.
	windows := []struct {
		from    time.Time
		to      time.Time
		message string
	}{
		{now.Add(24 * time.Hour), now.Add(25 * time.Hour), "Your offer starts tomorrow:"},
		{now.Add(12 * time.Hour), now.Add(13 * time.Hour), "Your offer starts in 12 hours:"},
		{now, now.Add(12 * time.Hour), "Your offer starts today:"},
	}

	var users []models.User
	if err := db.Scopes(models.Active).Find(&users).Error; err != nil {
		log.WithError(err).Error("Error loading users for offer reminders")
		return
	}

	for _, window := range windows {
		var offers []models.Offer
		if err := db.Where("start_date >= ? AND start_date < ?", window.from, window.to).
			Find(&offers).Error; err != nil {
			log.WithError(err).Error("Error loading upcoming offers")
			continue
		}

		for _, offer := range offers {
			for _, user := range users {
				msg := notifications.EmailMessage{
					To:      user.Email,
					Subject: "Upcoming Offer Notification",
					Body:    fmt.Sprintf("Reminder: %s %q.", window.message, offer.OfferName),
				}
				if err := mailer.Send(msg); err != nil {
					log.WithError(err).WithField("email", user.Email).Error("Error sending offer reminder email")
				}
			}
		}
	}
}
