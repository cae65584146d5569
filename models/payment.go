package models

import (
	"time"
)

// Payment là bản ghi thanh toán bất biến sau khi tạo. Mỗi payment phải
// có số tiền dương và tham chiếu ít nhất một trong booking /
// booking_group / booking_room.
type Payment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	BookingID      *uint     `json:"bookingId,omitempty" gorm:"index"`
	BookingGroupID *uint     `json:"bookingGroupId,omitempty" gorm:"index"`
	BookingRoomID  *uint     `json:"bookingRoomId,omitempty" gorm:"index"`
	CustomerID     uint      `json:"customerId" gorm:"index"`
	Amount         float64   `json:"amount"`
	PaymentMethod  string    `json:"paymentMethod" gorm:"size:20"` // cash, card, transfer, e_wallet
	TransactionID  string    `json:"transactionId,omitempty" gorm:"size:64"`
	PaymentDate    time.Time `json:"paymentDate"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
