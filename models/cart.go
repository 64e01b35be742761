package models

import "time"

type Cart struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"` // one cart per user
	QuantityInCart int       `gorm:"not null;default:0" json:"quantity_in_cart"`
	FinalPrice     float64   `gorm:"not null;default:0" json:"final_price"`
	Deleted        bool      `gorm:"default:false" json:"-"`
	CreatedBy      uint      `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CartItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	ProductID     uint      `gorm:"index;not null" json:"product_id"`
	QuantityAdded int       `gorm:"not null;default:1" json:"quantity_added"`
	TotalPrice    float64   `gorm:"not null;default:0" json:"total_price"` // quantity × discounted price at time of addition
	Deleted       bool      `gorm:"default:false" json:"-"`
	CreatedBy     uint      `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
