package orderControllers

import (
	"net/http"
	"testing"

	"github.com/SuryaShibin2198/Surya/helpers"
	"github.com/SuryaShibin2198/Surya/models"
)

func TestPlaceOrder(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)

	order, event, err := PlaceOrder(db, user.ID, PlaceOrderRequest{}, false)
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	if order.TotalAmount != 250 {
		t.Errorf("total amount = %v, want 250", order.TotalAmount)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want %q", order.Status, models.OrderStatusPending)
	}
	if order.CouponApplied || order.OfferApplied {
		t.Errorf("discount flags = coupon:%v offer:%v, want neither", order.CouponApplied, order.OfferApplied)
	}
	if order.OrderRef == "" {
		t.Error("order ref is empty")
	}

	// Line items snapshot the cart's quantities and prices.
	var items []models.OrderItem
	if err := db.Where("order_id = ?", order.ID).Order("id").Find(&items).Error; err != nil {
		t.Fatalf("failed to load order items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("order items = %d, want 2", len(items))
	}
	var itemTotal float64
	for _, item := range items {
		itemTotal += item.Price
	}
	if order.TotalAmount != itemTotal {
		t.Errorf("total %v != sum of item prices %v", order.TotalAmount, itemTotal)
	}

	// Stock decremented by the ordered quantities.
	if got := productQuantity(t, db, items[0].ProductID); got != 8 {
		t.Errorf("product 1 quantity = %d, want 8", got)
	}
	if got := productQuantity(t, db, items[1].ProductID); got != 4 {
		t.Errorf("product 2 quantity = %d, want 4", got)
	}

	// Cart cleared: items soft-deleted, aggregates zeroed.
	var activeItems int64
	if err := db.Model(&models.CartItem{}).
		Where("user_id = ? AND deleted = ?", user.ID, false).
		Count(&activeItems).Error; err != nil {
		t.Fatalf("failed to count cart items: %v", err)
	}
	if activeItems != 0 {
		t.Errorf("active cart items = %d, want 0", activeItems)
	}
	var cart models.Cart
	if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
		t.Fatalf("failed to load cart: %v", err)
	}
	if cart.QuantityInCart != 0 || cart.FinalPrice != 0 {
		t.Errorf("cart aggregates = %d/%v, want 0/0", cart.QuantityInCart, cart.FinalPrice)
	}

	// The event carries what the notification channels need.
	if event.OrderID != order.ID || event.UserEmail != user.Email || event.UserMobile != user.MobileNumber {
		t.Errorf("event = %+v, want order %d for %s", event, order.ID, user.Email)
	}
	if len(event.Items) != 2 {
		t.Errorf("event items = %d, want 2", len(event.Items))
	}
}

func TestPlaceOrderWithCoupon(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	seedCoupon(t, db, "SAVE10", 10, 5)

	order, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{CouponCode: "SAVE10"}, false)
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if order.TotalAmount != 225 {
		t.Errorf("total amount = %v, want 225", order.TotalAmount)
	}
	if order.DiscountAmount != 25 {
		t.Errorf("discount amount = %v, want 25", order.DiscountAmount)
	}
	if !order.CouponApplied || order.OfferApplied {
		t.Errorf("discount flags = coupon:%v offer:%v, want coupon only", order.CouponApplied, order.OfferApplied)
	}
}

func TestPlaceOrderBothCodesRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	coupon := seedCoupon(t, db, "SAVE10", 10, 5)
	seedOffer(t, db, "SEASON20", 20, 100)

	_, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{CouponCode: "SAVE10", OfferCode: "SEASON20"}, false)
	if helpers.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (err: %v)", helpers.StatusOf(err), err)
	}

	// Nothing happened: no order, counters untouched, cart intact.
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("orders = %d, want 0", orders)
	}
	var reloaded models.Coupon
	if err := db.First(&reloaded, coupon.ID).Error; err != nil {
		t.Fatalf("failed to reload coupon: %v", err)
	}
	if reloaded.UsageCount != 0 {
		t.Errorf("coupon usage count = %d, want 0", reloaded.UsageCount)
	}
	var activeItems int64
	db.Model(&models.CartItem{}).Where("user_id = ? AND deleted = ?", user.ID, false).Count(&activeItems)
	if activeItems != 2 {
		t.Errorf("active cart items = %d, want 2", activeItems)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Update("deleted", true).Error; err != nil {
		t.Fatalf("failed to empty cart: %v", err)
	}

	_, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{}, false)
	if helpers.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (err: %v)", helpers.StatusOf(err), err)
	}

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("orders = %d, want 0", orders)
	}
}

func TestPlaceOrderMissingUser(t *testing.T) {
	db := newTestDB(t)

	_, _, err := PlaceOrder(db, 42, PlaceOrderRequest{}, false)
	if helpers.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (err: %v)", helpers.StatusOf(err), err)
	}
}

func TestPlaceOrderUndeliverablePincode(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	if err := db.Model(&models.Pincode{}).Where("pincode = ?", user.Pincode).
		Update("deliverable", false).Error; err != nil {
		t.Fatalf("failed to update pincode: %v", err)
	}

	_, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{}, false)
	if helpers.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (err: %v)", helpers.StatusOf(err), err)
	}
}

func TestPlaceOrderUnknownPincode(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("pincode", 999999).Error; err != nil {
		t.Fatalf("failed to update user pincode: %v", err)
	}

	_, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{}, false)
	if helpers.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (err: %v)", helpers.StatusOf(err), err)
	}
}

func TestPlaceOrderCouponUsageLimitAcrossPlacements(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	coupon := seedCoupon(t, db, "ONEUSE", 10, 1)

	// Second user with an identical cart against the same products.
	other := models.User{Name: "Binu", Email: "binu@example.com", MobileNumber: "+15550002222", Pincode: user.Pincode}
	mustCreate(t, db, &other)
	mustCreate(t, db, &models.Cart{UserID: other.ID, QuantityInCart: 1, FinalPrice: 100, CreatedBy: other.ID})
	var product models.Product
	if err := db.First(&product).Error; err != nil {
		t.Fatalf("failed to load product: %v", err)
	}
	mustCreate(t, db, &models.CartItem{UserID: other.ID, ProductID: product.ID, QuantityAdded: 1, TotalPrice: 100, CreatedBy: other.ID})

	if _, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{CouponCode: "ONEUSE"}, false); err != nil {
		t.Fatalf("first placement failed: %v", err)
	}
	_, _, err := PlaceOrder(db, other.ID, PlaceOrderRequest{CouponCode: "ONEUSE"}, false)
	if helpers.StatusOf(err) != http.StatusConflict {
		t.Fatalf("second placement status = %d, want 409 (err: %v)", helpers.StatusOf(err), err)
	}

	var reloaded models.Coupon
	if err := db.First(&reloaded, coupon.ID).Error; err != nil {
		t.Fatalf("failed to reload coupon: %v", err)
	}
	if reloaded.UsageCount != 1 {
		t.Errorf("coupon usage count = %d, want exactly 1", reloaded.UsageCount)
	}
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	if err := db.Model(&models.Product{}).Where("code = ?", "PN-1").
		Update("quantity", 0).Error; err != nil {
		t.Fatalf("failed to drain stock: %v", err)
	}

	_, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{}, false)
	if helpers.StatusOf(err) != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (err: %v)", helpers.StatusOf(err), err)
	}

	// The whole placement rolled back: no order, no stock movement on the
	// other product, cart intact.
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("orders = %d, want 0", orders)
	}
	var notebook models.Product
	if err := db.Where("code = ?", "NB-1").First(&notebook).Error; err != nil {
		t.Fatalf("failed to load product: %v", err)
	}
	if notebook.Quantity != 10 {
		t.Errorf("notebook quantity = %d, want 10", notebook.Quantity)
	}
	var activeItems int64
	db.Model(&models.CartItem{}).Where("user_id = ? AND deleted = ?", user.ID, false).Count(&activeItems)
	if activeItems != 2 {
		t.Errorf("active cart items = %d, want 2", activeItems)
	}
}

func TestPlaceOrderInsufficientStockRollsBackCouponUsage(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	coupon := seedCoupon(t, db, "SAVE10", 10, 5)
	if err := db.Model(&models.Product{}).Where("code = ?", "PN-1").
		Update("quantity", 0).Error; err != nil {
		t.Fatalf("failed to drain stock: %v", err)
	}

	_, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{CouponCode: "SAVE10"}, false)
	if helpers.StatusOf(err) != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (err: %v)", helpers.StatusOf(err), err)
	}

	// The coupon increment happened before the stock failure inside the same
	// transaction, so it must roll back with everything else.
	var reloaded models.Coupon
	if err := db.First(&reloaded, coupon.ID).Error; err != nil {
		t.Fatalf("failed to load coupon: %v", err)
	}
	if reloaded.UsageCount != 0 {
		t.Errorf("coupon usage count = %d, want 0", reloaded.UsageCount)
	}
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	if orders != 0 {
		t.Errorf("orders = %d, want 0", orders)
	}
}

func TestPlaceOrderBackorderAllowed(t *testing.T) {
	db := newTestDB(t)
	user := seedCheckout(t, db)
	if err := db.Model(&models.Product{}).Where("code = ?", "PN-1").
		Update("quantity", 0).Error; err != nil {
		t.Fatalf("failed to drain stock: %v", err)
	}

	_, _, err := PlaceOrder(db, user.ID, PlaceOrderRequest{}, true)
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}

	var pen models.Product
	if err := db.Where("code = ?", "PN-1").First(&pen).Error; err != nil {
		t.Fatalf("failed to load product: %v", err)
	}
	if pen.Quantity != -1 {
		t.Errorf("pen quantity = %d, want -1 under backorder policy", pen.Quantity)
	}
}
