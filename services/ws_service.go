package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/olahol/melody"
)

// BookingEvent là sự kiện phát cho bảng theo dõi phòng ở quầy lễ tân
type BookingEvent struct {
	Type      string    `json:"type"` // booking_created, booking_status, payment_recorded
	BookingID uint      `json:"booking_id,omitempty"`
	RoomIDs   []uint    `json:"room_ids,omitempty"`
	Status    string    `json:"status,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	At        time.Time `json:"at"`
}

// BroadcastBookingEvent phát sự kiện booking tới tất cả client websocket
func BroadcastBookingEvent(m *melody.Melody, event BookingEvent) {
	if m == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Lỗi khi marshal sự kiện booking: %v", err)
		return
	}

	if err := m.Broadcast(data); err != nil {
		log.Printf("Lỗi khi broadcast sự kiện booking: %v", err)
	}
}
