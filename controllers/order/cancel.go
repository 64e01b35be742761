package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/middleware"
	"github.com/SuryaShibin2198/Surya/models"
	"github.com/SuryaShibin2198/Surya/notifications"
)

// CancelOrder voids an order owned by the user: every active item's quantity
// goes back to its product and the order and items are marked deleted, all in
// one transaction. The restored amounts are exactly the amounts deducted at
// placement.
func CancelOrder(db *gorm.DB, userID, orderID uint) (*notifications.OrderCancelledEvent, error) {
	var order models.Order
	if err := db.Scopes(models.Active).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helpers.NotFound("order not found")
		}
		return nil, helpers.Internal(err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		if err := tx.Scopes(models.Active).Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return helpers.Internal(err)
		}
		for _, item := range items {
			if err := restoreStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			if err := tx.Model(&models.OrderItem{}).
				Where("id = ?", item.ID).
				Update("deleted", true).Error; err != nil {
				return helpers.Internal(err)
			}
		}
		if err := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{"status": models.OrderStatusCancelled, "deleted": true}).Error; err != nil {
			return helpers.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event := &notifications.OrderCancelledEvent{
		OrderID:   order.ID,
		OrderRef:  order.OrderRef,
		UserID:    userID,
		EventTime: time.Now(),
	}
	var user models.User
	if err := db.First(&user, userID).Error; err == nil {
		event.FirebaseToken = user.FirebaseToken
	}
	return event, nil
}

// Cancel order (user)
func CancelOrderHandler(db *gorm.DB, pub EventPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			helpers.ResponseError(c, helpers.BadRequest("orderID is required"))
			return
		}

		event, err := CancelOrder(db, userID, uint(orderID))
		if err != nil {
			middleware.RecordOrderOperation("cancel", false)
			helpers.ResponseError(c, err)
			return
		}
		middleware.RecordOrderOperation("cancel", true)

		if pub != nil {
			if err := pub.PublishOrderCancelled(*event); err != nil {
				log.WithError(err).WithField("order_ref", event.OrderRef).
					Error("Failed to publish order cancelled event")
			}
		}

		helpers.ResponseSuccess(c, nil, http.StatusOK, "Order cancelled successfully")
	}
}
