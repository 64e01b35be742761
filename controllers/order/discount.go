package orderControllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/models"
	"gorm.io/gorm"
)

type discountResult struct {
	Amount        float64
	CouponApplied bool
	OfferApplied  bool
}

// applyDiscount validates and applies at most one of coupon/offer against the
// recomputed subtotal. Mutual exclusion is rejected before either code is
// evaluated, so a rejected request never moves a usage counter. The usage
// increments are conditional UPDATEs so concurrent placements cannot exceed a
// coupon's limit.
func applyDiscount(tx *gorm.DB, subtotal float64, couponCode, offerCode string, now time.Time) (discountResult, error) {
	var res discountResult

	if couponCode != "" && offerCode != "" {
		return res, helpers.BadRequest("only one discount code (coupon or offer) can be applied")
	}

	switch {
	case couponCode != "":
		var coupon models.Coupon
		if err := tx.Where("code = ?", couponCode).First(&coupon).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return res, helpers.BadRequest("invalid coupon code")
			}
			return res, helpers.Internal(err)
		}
		if coupon.ExpiryDate.Before(now) {
			return res, helpers.BadRequest("coupon has expired")
		}
		if coupon.UsageCount >= coupon.UsageLimit {
			return res, helpers.Conflict("coupon usage limit exceeded")
		}
		inc := tx.Model(&models.Coupon{}).
			Where("id = ? AND usage_count < usage_limit", coupon.ID).
			UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
		if inc.Error != nil {
			return res, helpers.Internal(inc.Error)
		}
		if inc.RowsAffected == 0 {
			return res, helpers.Conflict("coupon usage limit exceeded")
		}
		res.Amount = coupon.Discount / 100 * subtotal
		res.CouponApplied = true

	case offerCode != "":
		var offer models.Offer
		if err := tx.Where("offer_code = ?", offerCode).First(&offer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return res, helpers.BadRequest("invalid offer code")
			}
			return res, helpers.Internal(err)
		}
		if offer.EndDate.Before(now) {
			return res, helpers.BadRequest("offer has expired")
		}
		if subtotal < offer.PriceRange {
			return res, helpers.BadRequest(fmt.Sprintf("total amount must be at least %v to apply this offer", offer.PriceRange))
		}
		inc := tx.Model(&models.Offer{}).
			Where("id = ?", offer.ID).
			UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
		if inc.Error != nil {
			return res, helpers.Internal(inc.Error)
		}
		res.Amount = offer.OfferPercentage / 100 * subtotal
		res.OfferApplied = true
	}

	return res, nil
}
