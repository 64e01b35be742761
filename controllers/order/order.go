package orderControllers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/middleware"
	"github.com/SuryaShibin2198/Surya/models"
	"github.com/SuryaShibin2198/Surya/notifications"
)

// EventPublisher hands committed order events to the notification pipeline.
// Publish failures are logged and swallowed; they never affect the response.
type EventPublisher interface {
	PublishOrderPlaced(event notifications.OrderPlacedEvent) error
	PublishOrderCancelled(event notifications.OrderCancelledEvent) error
}

type PlaceOrderRequest struct {
	CouponCode string `json:"couponCode"`
	OfferCode  string `json:"offerCode"`
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder converts the user's cart into a committed order. Persistence
// side effects (order + items insert, stock decrements, discount counter
// increment, cart clearing) run in one transaction; partial failure rolls
// everything back. On success it returns the order and the event to publish.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest, allowBackorder bool) (*models.Order, *notifications.OrderPlacedEvent, error) {
	var user models.User
	if err := db.Scopes(models.Active).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helpers.NotFound("user not found")
		}
		return nil, nil, helpers.Internal(err)
	}

	pincode, err := resolvePincode(db, user.Pincode)
	if err != nil {
		return nil, nil, err
	}
	expectedDeliveryDate := ExpectedDeliveryDate(time.Now(), pincode.DeliveryDays)

	var cart models.Cart
	if err := db.Scopes(models.Active).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helpers.NotFound("cart not found")
		}
		return nil, nil, helpers.Internal(err)
	}

	var cartItems []models.CartItem
	if err := db.Scopes(models.Active).Where("user_id = ?", userID).Order("id").Find(&cartItems).Error; err != nil {
		return nil, nil, helpers.Internal(err)
	}
	if len(cartItems) == 0 {
		return nil, nil, helpers.BadRequest("cart is empty")
	}

	// The subtotal comes from the line items, never from the cart aggregate
	// or anything client-supplied.
	var subtotal float64
	for _, item := range cartItems {
		subtotal += item.TotalPrice
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		discount, err := applyDiscount(tx, subtotal, req.CouponCode, req.OfferCode, time.Now())
		if err != nil {
			return err
		}

		order = models.Order{
			OrderRef:             generateOrderRef(),
			UserID:               userID,
			TotalAmount:          subtotal - discount.Amount,
			Status:               models.OrderStatusPending,
			CouponApplied:        discount.CouponApplied,
			OfferApplied:         discount.OfferApplied,
			DiscountAmount:       discount.Amount,
			ExpectedDeliveryDate: expectedDeliveryDate,
			CreatedBy:            userID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return helpers.Internal(err)
		}

		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.QuantityAdded,
				Price:     item.TotalPrice,
				CreatedBy: userID,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return helpers.Internal(err)
			}
			if err := deductStock(tx, item.ProductID, item.QuantityAdded, allowBackorder); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND deleted = ?", userID, false).
			Update("deleted", true).Error; err != nil {
			return helpers.Internal(err)
		}
		if err := tx.Model(&models.Cart{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{"quantity_in_cart": 0, "final_price": 0}).Error; err != nil {
			return helpers.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	event := &notifications.OrderPlacedEvent{
		OrderID:              order.ID,
		OrderRef:             order.OrderRef,
		UserID:               userID,
		TotalAmount:          order.TotalAmount,
		ExpectedDeliveryDate: expectedDeliveryDate,
		UserName:             user.Name,
		UserEmail:            user.Email,
		UserMobile:           user.MobileNumber,
		EventTime:            time.Now(),
	}
	for _, item := range cartItems {
		event.Items = append(event.Items, notifications.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.QuantityAdded,
			Price:     item.TotalPrice,
		})
	}
	return &order, event, nil
}

// Place order (user)
func PlaceOrderHandler(db *gorm.DB, pub EventPublisher, allowBackorder bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			helpers.ResponseError(c, helpers.BadRequest("invalid request body"))
			return
		}

		order, event, err := PlaceOrder(db, userID, req, allowBackorder)
		if err != nil {
			middleware.RecordOrderOperation("place", false)
			helpers.ResponseError(c, err)
			return
		}
		middleware.RecordOrderOperation("place", true)

		if pub != nil {
			if err := pub.PublishOrderPlaced(*event); err != nil {
				log.WithError(err).WithField("order_ref", order.OrderRef).
					Error("Failed to publish order placed event")
			}
		}

		helpers.ResponseSuccess(c, order, http.StatusOK, "Order placed successfully")
	}
}
