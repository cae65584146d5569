package controllers

import (
	"ktv/config"
	"ktv/dto"
	"ktv/models"
	"ktv/services"
	"ktv/services/logger"

	"github.com/olahol/melody"
)

// Melody được gán từ routes khi khởi động, dùng để phát sự kiện cho
// bảng theo dõi phòng
var Melody *melody.Melody

var appLogger = logger.NewDefaultLogger(logger.InfoLevel)

func bookingService() *services.BookingService {
	return services.NewBookingService(services.BookingServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})
}

func paymentService() *services.PaymentService {
	return services.NewPaymentService(services.PaymentServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})
}

func availabilityService() *services.AvailabilityService {
	return services.NewAvailabilityService(config.DB)
}

func revenueService() *services.RevenueService {
	return services.NewRevenueService(config.DB)
}

func roomSearchService() *services.RoomSearchService {
	return services.NewRoomSearchService(config.DB)
}

func authService() *services.AuthService {
	return services.NewAuthService(config.DB)
}

func toCustomerResponse(customer *models.Customer) *dto.CustomerResponse {
	if customer == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		PhoneNumber: customer.PhoneNumber,
		Email:       customer.Email,
	}
}

func toBookingRoomResponse(line *models.BookingRoom) dto.BookingRoomResponse {
	resp := dto.BookingRoomResponse{
		ID:            line.ID,
		RoomID:        line.RoomID,
		StartTime:     line.StartTime,
		EndTime:       line.EndTime,
		PricePerHour:  line.PricePerHour,
		Status:        line.Status,
		PaymentStatus: line.PaymentStatus,
		CheckInTime:   line.CheckInTime,
		CheckOutTime:  line.CheckOutTime,
	}
	if line.Room != nil {
		resp.RoomName = line.Room.Name
	}
	return resp
}

func toBookingResponse(booking *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:             booking.ID,
		CustomerID:     booking.CustomerID,
		Customer:       toCustomerResponse(booking.Customer),
		BookingGroupID: booking.BookingGroupID,
		StartTime:      booking.StartTime,
		EndTime:        booking.EndTime,
		Status:         booking.Status,
		TotalAmount:    booking.TotalAmount,
		Notes:          booking.Notes,
		Rooms:          make([]dto.BookingRoomResponse, 0, len(booking.Rooms)),
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}
	for i := range booking.Rooms {
		resp.Rooms = append(resp.Rooms, toBookingRoomResponse(&booking.Rooms[i]))
	}
	return resp
}

func toRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:           room.ID,
		Name:         room.Name,
		Type:         room.Type,
		PricePerHour: room.PricePerHour,
		Capacity:     room.Capacity,
		Description:  room.Description,
		Avatar:       room.Avatar,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}

func toPaymentResponse(payment *models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:             payment.ID,
		BookingID:      payment.BookingID,
		BookingGroupID: payment.BookingGroupID,
		BookingRoomID:  payment.BookingRoomID,
		CustomerID:     payment.CustomerID,
		Amount:         payment.Amount,
		PaymentMethod:  payment.PaymentMethod,
		TransactionID:  payment.TransactionID,
		PaymentDate:    payment.PaymentDate,
		Notes:          payment.Notes,
	}
}

func roomIDsOf(booking *models.Booking) []uint {
	ids := make([]uint, 0, len(booking.Rooms))
	for _, line := range booking.Rooms {
		ids = append(ids, line.RoomID)
	}
	return ids
}
