package dto

import "time"

// PaymentRequest là DTO cho request thanh toán đơn lẻ
type PaymentRequest struct {
	BookingID      *uint   `json:"booking_id,omitempty"`
	BookingGroupID *uint   `json:"booking_group_id,omitempty"`
	BookingRoomID  *uint   `json:"booking_room_id,omitempty"`
	CustomerID     uint    `json:"customer_id"`
	Amount         float64 `json:"amount"`
	PaymentMethod  string  `json:"payment_method"`
	TransactionID  string  `json:"transaction_id,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

// PaymentItem là một mục trong request thanh toán nhiều phòng
type PaymentItem struct {
	BookingID     uint    `json:"booking_id"`
	BookingRoomID *uint   `json:"booking_room_id,omitempty"`
	Amount        float64 `json:"amount"`
}

// MultiplePaymentRequest là DTO cho request thanh toán theo lô
type MultiplePaymentRequest struct {
	Items         []PaymentItem `json:"items"`
	PaymentMethod string        `json:"payment_method"`
	Notes         string        `json:"notes,omitempty"`
}

// PaymentResponse là DTO cho response thanh toán
type PaymentResponse struct {
	ID             uint      `json:"id"`
	BookingID      *uint     `json:"booking_id,omitempty"`
	BookingGroupID *uint     `json:"booking_group_id,omitempty"`
	BookingRoomID  *uint     `json:"booking_room_id,omitempty"`
	CustomerID     uint      `json:"customer_id"`
	Amount         float64   `json:"amount"`
	PaymentMethod  string    `json:"payment_method"`
	TransactionID  string    `json:"transaction_id,omitempty"`
	PaymentDate    time.Time `json:"payment_date"`
	Notes          string    `json:"notes,omitempty"`
}

// UnpaidRoom là một dòng phòng chưa thanh toán, với tiền tính lại trực
// tiếp từ giờ sử dụng thay vì đọc total_amount đã lưu
type UnpaidRoom struct {
	BookingRoomID uint      `json:"booking_room_id"`
	RoomID        uint      `json:"room_id"`
	RoomName      string    `json:"room_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Hours         int       `json:"hours"`
	PricePerHour  float64   `json:"price_per_hour"`
	Subtotal      float64   `json:"subtotal"`
}

// UnpaidBookingResponse là một booking còn phòng chưa thanh toán
type UnpaidBookingResponse struct {
	BookingID    uint              `json:"booking_id"`
	CustomerID   uint              `json:"customer_id"`
	Customer     *CustomerResponse `json:"customer,omitempty"`
	Status       string            `json:"status"`
	UnpaidRooms  []UnpaidRoom      `json:"unpaid_rooms"`
	UnpaidAmount float64           `json:"unpaid_amount"`
}
