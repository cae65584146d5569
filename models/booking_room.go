package models

import (
	"time"
)

// BookingRoom là một dòng đặt phòng trong Booking, mang trạng thái và
// trạng thái thanh toán riêng. Bất biến: StartTime < EndTime; hai dòng
// cùng phòng không được chồng khoảng [start, end) trừ khi một dòng đã
// bị hủy.
type BookingRoom struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	BookingID     uint       `json:"bookingId" gorm:"index"`
	RoomID        uint       `json:"roomId" gorm:"index"`
	Room          *Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	StartTime     time.Time  `json:"startTime" gorm:"index"`
	EndTime       time.Time  `json:"endTime" gorm:"index"`
	PricePerHour  float64    `json:"pricePerHour"`
	Status        string     `json:"status" gorm:"size:20;index;default:pending"`
	PaymentStatus string     `json:"paymentStatus" gorm:"size:20;default:unpaid"`
	CheckInTime   *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime  *time.Time `json:"checkOutTime,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
