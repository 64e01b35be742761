package models

import "time"

type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"uniqueIndex;not null" json:"email"`
	MobileNumber  string    `gorm:"not null" json:"mobile_number"`
	Pincode       int       `gorm:"not null" json:"pincode"`
	FirebaseToken string    `json:"-"` // device token for push notifications, may be empty
	Deleted       bool      `gorm:"default:false" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
