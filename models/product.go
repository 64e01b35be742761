package models

import "time"

type Product struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Code            string    `gorm:"uniqueIndex;not null" json:"code"`
	CategoryID      uint      `gorm:"index" json:"category_id"`
	SubCategoryID   uint      `gorm:"index" json:"sub_category_id"`
	Quantity        int       `json:"quantity"` // stock on hand; only the inventory ledger mutates this
	InStock         bool      `json:"in_stock"`
	OriginalPrice   float64   `gorm:"not null" json:"original_price"`
	DiscountedPrice float64   `gorm:"not null" json:"discounted_price"`
	Deleted         bool      `gorm:"default:false" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
