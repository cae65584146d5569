package dto

import "time"

// AvailabilityRequest là DTO cho request tìm phòng trống
type AvailabilityRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AvailabilityMeta là metadata trả kèm danh sách phòng trống
type AvailabilityMeta struct {
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	TotalRooms int    `json:"total_rooms"`
}

// BookingRoomRequest là một dòng phòng trong request tạo booking
type BookingRoomRequest struct {
	RoomID       uint     `json:"room_id"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
}

// CreateBookingRequest là DTO cho request tạo booking
type CreateBookingRequest struct {
	CustomerID  uint                 `json:"customer_id"`
	Rooms       []BookingRoomRequest `json:"rooms"`
	TotalAmount *float64             `json:"total_amount,omitempty"`
	Notes       string               `json:"notes,omitempty"`
}

// ExtendBookingRequest là DTO cho request gia hạn booking
type ExtendBookingRequest struct {
	NewEndTime string `json:"new_end_time"`
}

// CompleteWithPaymentRequest là DTO cho request trả phòng kèm thanh toán
type CompleteWithPaymentRequest struct {
	EndTime       string   `json:"end_time,omitempty"`
	TotalAmount   *float64 `json:"total_amount,omitempty"`
	PaymentMethod string   `json:"payment_method"`
	Notes         string   `json:"notes,omitempty"`
}

// BookingRoomResponse là một dòng phòng trong response booking
type BookingRoomResponse struct {
	ID            uint       `json:"id"`
	RoomID        uint       `json:"room_id"`
	RoomName      string     `json:"room_name,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	PricePerHour  float64    `json:"price_per_hour"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	CheckInTime   *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
}

// BookingResponse là DTO cho response booking
type BookingResponse struct {
	ID             uint                  `json:"id"`
	CustomerID     uint                  `json:"customer_id"`
	Customer       *CustomerResponse     `json:"customer,omitempty"`
	BookingGroupID *uint                 `json:"booking_group_id,omitempty"`
	StartTime      time.Time             `json:"start_time"`
	EndTime        time.Time             `json:"end_time"`
	Status         string                `json:"status"`
	TotalAmount    float64               `json:"total_amount"`
	Notes          string                `json:"notes,omitempty"`
	Rooms          []BookingRoomResponse `json:"rooms"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// CreateBookingGroupRequest là DTO cho request tạo nhóm booking
type CreateBookingGroupRequest struct {
	CustomerID uint                   `json:"customer_id"`
	Bookings   []CreateBookingRequest `json:"bookings"`
	Notes      string                 `json:"notes,omitempty"`
}

// UpdateGroupStatusRequest là DTO cho request đổi trạng thái nhóm booking
type UpdateGroupStatusRequest struct {
	Status string `json:"status"`
}

// BookingGroupResponse là DTO cho response nhóm booking
type BookingGroupResponse struct {
	ID            uint              `json:"id"`
	CustomerID    uint              `json:"customer_id"`
	Status        string            `json:"status"`
	TotalAmount   float64           `json:"total_amount"`
	PaymentStatus string            `json:"payment_status"`
	Bookings      []BookingResponse `json:"bookings"`
}
