package models

import "time"

// Pincode maps a postal code to deliverability and a business-day delivery
// window. Read-only to the order workflow.
type Pincode struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Pincode      int       `gorm:"uniqueIndex;not null" json:"pincode"`
	DeliveryDays int       `gorm:"not null" json:"delivery_days"`
	Deliverable  bool      `gorm:"not null" json:"deliverable"`
	Deleted      bool      `gorm:"default:false" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
