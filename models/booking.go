package models

import (
	"time"
)

// Booking gom một hoặc nhiều phòng được đặt trong cùng một khung giờ.
// TotalAmount là cache dẫn xuất từ tổng tiền các dòng phòng, phải được
// tính lại mỗi khi các dòng thay đổi.
type Booking struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	CustomerID     uint          `json:"customerId" gorm:"index"`
	Customer       *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	BookingGroupID *uint         `json:"bookingGroupId,omitempty" gorm:"index"`
	RoomID         *uint         `json:"roomId,omitempty"` // dạng cũ: booking một phòng trực tiếp
	StartTime      time.Time     `json:"startTime"`
	EndTime        time.Time     `json:"endTime"`
	Status         string        `json:"status" gorm:"size:20;index;default:pending"`
	TotalAmount    float64       `json:"totalAmount"`
	Notes          string        `json:"notes"`
	Rooms          []BookingRoom `json:"rooms" gorm:"foreignKey:BookingID"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}
