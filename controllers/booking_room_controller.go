package controllers

import (
	"strconv"

	"ktv/constants"
	"ktv/response"
	"ktv/services"

	"github.com/gin-gonic/gin"
)

func parseBookingRoomID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

// ConfirmBookingRoom xác nhận một dòng đặt phòng
func ConfirmBookingRoom(c *gin.Context) {
	id, ok := parseBookingRoomID(c)
	if !ok {
		return
	}

	if err := bookingService().ConfirmBookingRoom(id); err != nil {
		response.FromError(c, err)
		return
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:   "booking_status",
		Status: constants.BookingStatusConfirmed,
	})

	response.Success(c, gin.H{"id": id, "status": constants.BookingStatusConfirmed})
}

// CancelBookingRoom hủy một dòng đặt phòng
func CancelBookingRoom(c *gin.Context) {
	id, ok := parseBookingRoomID(c)
	if !ok {
		return
	}

	if err := bookingService().CancelBookingRoom(id); err != nil {
		response.FromError(c, err)
		return
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:   "booking_status",
		Status: constants.BookingStatusCancelled,
	})

	response.Success(c, gin.H{"id": id, "status": constants.BookingStatusCancelled})
}

// CheckInBookingRoom ghi nhận khách nhận phòng
func CheckInBookingRoom(c *gin.Context) {
	id, ok := parseBookingRoomID(c)
	if !ok {
		return
	}

	if err := bookingService().CheckInBookingRoom(id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"id": id, "checked_in": true})
}

// CheckOutBookingRoom ghi nhận khách trả phòng
func CheckOutBookingRoom(c *gin.Context) {
	id, ok := parseBookingRoomID(c)
	if !ok {
		return
	}

	if err := bookingService().CheckOutBookingRoom(id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"id": id, "status": constants.BookingStatusCompleted})
}
