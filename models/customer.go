package models

import "time"

type Customer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:15;index"`
	Email       string    `json:"email" gorm:"size:100"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Bookings []Booking `json:"-" gorm:"foreignKey:CustomerID"`
}
