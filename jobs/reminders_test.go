package jobs

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SuryaShibin2198/Surya/models"
	"github.com/SuryaShibin2198/Surya/notifications"
)

type recordingMailer struct {
	sent []notifications.EmailMessage
}

func (m *recordingMailer) Send(msg notifications.EmailMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Cart{}, &models.CartItem{}, &models.Offer{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Asha", Email: email, Pincode: 682001}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedOfferAt(t *testing.T, db *gorm.DB, name string, start time.Time) {
	t.Helper()
	offer := models.Offer{
		OfferName:       name,
		OfferCode:       strings.ToUpper(name),
		StartDate:       start,
		EndDate:         start.Add(48 * time.Hour),
		OfferPercentage: 10,
	}
	if err := db.Create(&offer).Error; err != nil {
		t.Fatalf("failed to seed offer: %v", err)
	}
}

// Each upcoming offer lands in at most one reminder window, so a single sweep
// mails each user at most once per offer.
func TestSendOfferRemindersWindows(t *testing.T) {
	tests := []struct {
		name      string
		startsIn  time.Duration
		wantMails int
		wantText  string
	}{
		{"starts in two hours", 2 * time.Hour, 1, "today"},
		{"starts in twelve and a half hours", 12*time.Hour + 30*time.Minute, 1, "12 hours"},
		{"starts tomorrow", 24*time.Hour + 30*time.Minute, 1, "tomorrow"},
		{"starts in eighteen hours", 18 * time.Hour, 0, ""},
		{"already started", -time.Hour, 0, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			seedUser(t, db, "asha@example.com")
			seedOfferAt(t, db, "flash-sale", time.Now().Add(tc.startsIn))

			mailer := &recordingMailer{}
			SendOfferReminders(db, mailer)

			if len(mailer.sent) != tc.wantMails {
				t.Fatalf("emails sent = %d, want %d", len(mailer.sent), tc.wantMails)
			}
			if tc.wantMails > 0 && !strings.Contains(mailer.sent[0].Body, tc.wantText) {
				t.Errorf("email body %q does not mention %q", mailer.sent[0].Body, tc.wantText)
			}
		})
	}
}

func TestSendCartRemindersOnlyStaleCartsWithItems(t *testing.T) {
	db := newTestDB(t)
	stale := seedUser(t, db, "stale@example.com")
	empty := seedUser(t, db, "empty@example.com")

	twoHoursAgo := time.Now().Add(-2 * time.Hour)
	for _, userID := range []uint{stale.ID, empty.ID} {
		cart := models.Cart{UserID: userID, QuantityInCart: 1, FinalPrice: 100}
		if err := db.Create(&cart).Error; err != nil {
			t.Fatalf("failed to seed cart: %v", err)
		}
		if err := db.Model(&cart).UpdateColumn("updated_at", twoHoursAgo).Error; err != nil {
			t.Fatalf("failed to age cart: %v", err)
		}
	}
	item := models.CartItem{UserID: stale.ID, ProductID: 1, QuantityAdded: 1, TotalPrice: 100}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed cart item: %v", err)
	}

	mailer := &recordingMailer{}
	SendCartReminders(db, mailer)

	if len(mailer.sent) != 1 {
		t.Fatalf("emails sent = %d, want 1", len(mailer.sent))
	}
	if mailer.sent[0].To != stale.Email {
		t.Errorf("email sent to %s, want %s", mailer.sent[0].To, stale.Email)
	}
}
