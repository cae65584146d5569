package models

import "time"

// BookingGroup gom nhiều booking được tạo cùng lúc; thay đổi trạng thái
// của group lan xuống các booking thành viên.
type BookingGroup struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CustomerID    uint      `json:"customerId" gorm:"index"`
	Customer      *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Status        string    `json:"status" gorm:"size:20;default:pending"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentStatus string    `json:"paymentStatus" gorm:"size:20;default:unpaid"`
	Bookings      []Booking `json:"bookings" gorm:"foreignKey:BookingGroupID"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
