package models

import "time"

type Coupon struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"uniqueIndex;not null" json:"code"`
	Discount    float64   `gorm:"not null" json:"discount"` // percentage off the subtotal
	ExpiryDate  time.Time `gorm:"not null" json:"expiry_date"`
	UsageLimit  int       `gorm:"not null" json:"usage_limit"`
	UsageCount  int       `gorm:"default:0" json:"usage_count"`
	Description string    `json:"description"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
