package models

import "time"

type Offer struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OfferName       string    `gorm:"not null" json:"offer_name"`
	OfferCode       string    `gorm:"uniqueIndex;not null" json:"offer_code"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	OfferPercentage float64   `gorm:"not null" json:"offer_percentage"`
	CategoryID      uint      `gorm:"index" json:"category_id"`
	PriceRange      float64   `gorm:"not null" json:"price_range"` // minimum qualifying subtotal
	UsageCount      int       `gorm:"default:0" json:"usage_count"`
	CreatedBy       uint      `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
