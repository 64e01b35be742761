package orderControllers

import (
	"errors"
	"time"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/models"
	"gorm.io/gorm"
)

// ExpectedDeliveryDate advances one calendar day at a time from start,
// counting only Monday–Friday, until deliveryDays business days have been
// counted. The date the loop stops on is the expected delivery date.
func ExpectedDeliveryDate(start time.Time, deliveryDays int) time.Time {
	expected := start
	for deliveryDays > 0 {
		expected = expected.AddDate(0, 0, 1)
		if wd := expected.Weekday(); wd != time.Saturday && wd != time.Sunday {
			deliveryDays--
		}
	}
	return expected
}

// resolvePincode looks up the destination postal code and checks
// deliverability.
func resolvePincode(db *gorm.DB, pincode int) (*models.Pincode, error) {
	var p models.Pincode
	if err := db.Scopes(models.Active).Where("pincode = ?", pincode).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helpers.NotFound("pincode not found")
		}
		return nil, helpers.Internal(err)
	}
	if !p.Deliverable {
		return nil, helpers.BadRequest("delivery not available for this pincode")
	}
	return &p, nil
}
