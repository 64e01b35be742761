package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // placed, awaiting fulfilment
	OrderStatusCancelled OrderStatus = "Cancelled" // voided by the user before fulfilment
)

type Order struct {
	ID                   uint        `gorm:"primaryKey" json:"id"`
	OrderRef             string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID               uint        `gorm:"index;not null" json:"user_id"`
	Items                []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	TotalAmount          float64     `gorm:"not null" json:"total_amount"`
	Status               OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CouponApplied        bool        `gorm:"default:false" json:"coupon_applied"`
	OfferApplied         bool        `gorm:"default:false" json:"offer_applied"`
	DiscountAmount       float64     `gorm:"default:0" json:"discount_amount"`
	ExpectedDeliveryDate time.Time   `json:"expected_delivery_date"`
	Deleted              bool        `gorm:"default:false" json:"-"`
	CreatedBy            uint        `json:"created_by"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"` // line total snapshot, never recomputed
	Deleted   bool      `gorm:"default:false" json:"-"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
