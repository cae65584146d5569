package dto

import "time"

// RoomRequest là DTO cho request tạo/cập nhật phòng
type RoomRequest struct {
	ID           uint    `json:"id,omitempty"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	PricePerHour float64 `json:"price_per_hour"`
	Capacity     int     `json:"capacity"`
	Description  string  `json:"description,omitempty"`
	Avatar       string  `json:"avatar,omitempty"`
}

// RoomResponse là DTO cho response phòng
type RoomResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	PricePerHour float64   `json:"price_per_hour"`
	Capacity     int       `json:"capacity"`
	Description  string    `json:"description,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ScoredRoom là phòng kèm điểm phù hợp khi tìm kiếm gần đúng
type ScoredRoom struct {
	Room  RoomResponse `json:"room"`
	Score int          `json:"score"`
}
