package builders

import (
	"time"

	"ktv/constants"
	"ktv/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			Status: constants.BookingStatusPending,
		},
	}
}

// WithCustomer thêm thông tin khách hàng
func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	b.booking.CustomerID = customerID
	return b
}

// WithGroup gắn booking vào một nhóm
func (b *BookingBuilder) WithGroup(groupID uint) *BookingBuilder {
	b.booking.BookingGroupID = &groupID
	return b
}

// WithTimeRange thêm khung giờ của booking
func (b *BookingBuilder) WithTimeRange(start, end time.Time) *BookingBuilder {
	b.booking.StartTime = start
	b.booking.EndTime = end
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithRoom thêm một dòng phòng
func (b *BookingBuilder) WithRoom(roomID uint, start, end time.Time, pricePerHour float64) *BookingBuilder {
	b.booking.Rooms = append(b.booking.Rooms, models.BookingRoom{
		RoomID:        roomID,
		StartTime:     start,
		EndTime:       end,
		PricePerHour:  pricePerHour,
		Status:        constants.BookingStatusPending,
		PaymentStatus: constants.PaymentStatusUnpaid,
	})
	return b
}

// WithTotalAmount thêm tổng tiền
func (b *BookingBuilder) WithTotalAmount(totalAmount float64) *BookingBuilder {
	b.booking.TotalAmount = totalAmount
	return b
}

// WithNotes thêm ghi chú
func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.booking.Notes = notes
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
