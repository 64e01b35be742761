package orderControllers

import (
	"fmt"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/models"
	"gorm.io/gorm"
)

// deductStock removes qty units from a product's inventory. Unless backorder
// is allowed, the decrement is guarded by the current quantity in the UPDATE
// itself, so concurrent placements cannot drive stock negative.
func deductStock(tx *gorm.DB, productID uint, qty int, allowBackorder bool) error {
	if allowBackorder {
		if err := tx.Model(&models.Product{}).
			Where("id = ?", productID).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", qty)).Error; err != nil {
			return helpers.Internal(err)
		}
		return nil
	}

	res := tx.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", productID, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return helpers.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return helpers.Conflict(fmt.Sprintf("insufficient stock for product %d", productID))
	}
	return nil
}

// restoreStock returns qty units to a product's inventory on cancellation.
func restoreStock(tx *gorm.DB, productID uint, qty int) error {
	if err := tx.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", qty)).Error; err != nil {
		return helpers.Internal(err)
	}
	return nil
}
