package orderControllers

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SuryaShibin2198/Surya/models"
)

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

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Offer{},
		&models.Pincode{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedCheckout creates a user with a deliverable pincode, two products, and a
// cart holding both. Product 1: 2 units at 100 each; product 2: 1 unit at 50.
// Subtotal 250.
func seedCheckout(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		Name:         "Asha",
		Email:        "asha@example.com",
		MobileNumber: "+15550001111",
		Pincode:      682001,
	}
	mustCreate(t, db, &user)

	mustCreate(t, db, &models.Pincode{Pincode: 682001, DeliveryDays: 3, Deliverable: true})

	products := []models.Product{
		{Name: "Notebook", Code: "NB-1", Quantity: 10, InStock: true, OriginalPrice: 120, DiscountedPrice: 100},
		{Name: "Pen", Code: "PN-1", Quantity: 5, InStock: true, OriginalPrice: 60, DiscountedPrice: 50},
	}
	for i := range products {
		mustCreate(t, db, &products[i])
	}

	mustCreate(t, db, &models.Cart{UserID: user.ID, QuantityInCart: 3, FinalPrice: 250, CreatedBy: user.ID})
	mustCreate(t, db, &models.CartItem{
		UserID: user.ID, ProductID: products[0].ID, QuantityAdded: 2, TotalPrice: 200, CreatedBy: user.ID,
	})
	mustCreate(t, db, &models.CartItem{
		UserID: user.ID, ProductID: products[1].ID, QuantityAdded: 1, TotalPrice: 50, CreatedBy: user.ID,
	})

	return user
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to seed %T: %v", value, err)
	}
}

func seedCoupon(t *testing.T, db *gorm.DB, code string, discount float64, usageLimit int) models.Coupon {
	t.Helper()
	coupon := models.Coupon{
		Code:       code,
		Discount:   discount,
		ExpiryDate: time.Now().Add(24 * time.Hour),
		UsageLimit: usageLimit,
		Status:     true,
	}
	mustCreate(t, db, &coupon)
	return coupon
}

func seedOffer(t *testing.T, db *gorm.DB, code string, percentage, priceRange float64) models.Offer {
	t.Helper()
	offer := models.Offer{
		OfferName:       "Season Sale",
		OfferCode:       code,
		StartDate:       time.Now().Add(-24 * time.Hour),
		EndDate:         time.Now().Add(24 * time.Hour),
		OfferPercentage: percentage,
		PriceRange:      priceRange,
	}
	mustCreate(t, db, &offer)
	return offer
}

func productQuantity(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		t.Fatalf("failed to load product %d: %v", productID, err)
	}
	return product.Quantity
}
