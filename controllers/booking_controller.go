package controllers

import (
	"net/http"
	"strconv"

	"ktv/config"
	"ktv/constants"
	"ktv/dto"
	"ktv/models"
	"ktv/response"
	"ktv/services"
	"ktv/validator"

	"github.com/gin-gonic/gin"
)

// CheckAvailability trả về danh sách phòng trống trong khung giờ yêu
// cầu. Nhận khung giờ qua query string hoặc JSON body.
func CheckAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Dữ liệu không hợp lệ")
			return
		}
	} else {
		req.StartTime = c.Query("start_time")
		req.EndTime = c.Query("end_time")
	}

	start, err := validator.ParseTimestamp(req.StartTime, "start_time")
	if err != nil {
		response.FromError(c, err)
		return
	}
	end, err := validator.ParseTimestamp(req.EndTime, "end_time")
	if err != nil {
		response.FromError(c, err)
		return
	}

	rooms, err := availabilityService().AvailableRooms(start, end)
	if err != nil {
		response.FromError(c, err)
		return
	}

	results := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		results = append(results, toRoomResponse(&rooms[i]))
	}

	response.SuccessWithMeta(c, results, dto.AvailabilityMeta{
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalRooms: len(results),
	})
}

// CreateBooking tạo booking mới cho một hoặc nhiều phòng
func CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateBookingRequest(&req); err != nil {
		response.FromError(c, err)
		return
	}

	input, err := parseBookingInput(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	booking, err := bookingService().CreateBooking(*input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:      "booking_created",
		BookingID: booking.ID,
		RoomIDs:   roomIDsOf(booking),
		Status:    booking.Status,
	})

	response.Created(c, toBookingResponse(booking))
}

func parseBookingInput(req *dto.CreateBookingRequest) (*services.CreateBookingInput, error) {
	input := services.CreateBookingInput{
		CustomerID:  req.CustomerID,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}
	for _, room := range req.Rooms {
		start, err := validator.ParseTimestamp(room.StartTime, "start_time")
		if err != nil {
			return nil, err
		}
		end, err := validator.ParseTimestamp(room.EndTime, "end_time")
		if err != nil {
			return nil, err
		}
		input.Rooms = append(input.Rooms, services.BookingRoomInput{
			RoomID:       room.RoomID,
			StartTime:    start,
			EndTime:      end,
			PricePerHour: room.PricePerHour,
		})
	}
	return &input, nil
}

// GetBooking lấy chi tiết một booking
func GetBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := bookingService().GetBooking(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// GetBookings liệt kê booking, lọc được theo status và customer_id
func GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	err := query.Preload("Rooms").Preload("Rooms.Room").Preload("Customer").
		Order("start_time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		results = append(results, toBookingResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// ConfirmBooking xác nhận một booking đang chờ
func ConfirmBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := bookingService().ConfirmBooking(uint(id)); err != nil {
		response.FromError(c, err)
		return
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:      "booking_status",
		BookingID: uint(id),
		Status:    constants.BookingStatusConfirmed,
	})

	response.Success(c, gin.H{"id": id, "status": constants.BookingStatusConfirmed})
}

// CancelBooking hủy một booking chưa kết thúc
func CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := bookingService().CancelBooking(uint(id)); err != nil {
		response.FromError(c, err)
		return
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:      "booking_status",
		BookingID: uint(id),
		Status:    constants.BookingStatusCancelled,
	})

	response.Success(c, gin.H{"id": id, "status": constants.BookingStatusCancelled})
}

// ExtendBooking gia hạn giờ kết thúc của booking
func ExtendBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	newEnd, err := validator.ParseTimestamp(req.NewEndTime, "new_end_time")
	if err != nil {
		response.FromError(c, err)
		return
	}

	booking, err := bookingService().ExtendBooking(uint(id), newEnd)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// CompleteBookingWithPayment trả phòng booking kèm ghi nhận thanh toán
func CompleteBookingWithPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.CompleteWithPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	input := services.CompleteWithPaymentInput{
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.EndTime != "" {
		endTime, err := validator.ParseTimestamp(req.EndTime, "end_time")
		if err != nil {
			response.FromError(c, err)
			return
		}
		input.EndTime = &endTime
	}

	booking, payment, err := bookingService().CompleteBookingWithPayment(uint(id), input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:      "payment_recorded",
		BookingID: booking.ID,
		Status:    booking.Status,
		Amount:    payment.Amount,
	})

	response.Success(c, gin.H{
		"booking": toBookingResponse(booking),
		"payment": toPaymentResponse(payment),
	})
}
