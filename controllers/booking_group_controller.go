package controllers

import (
	"strconv"

	"ktv/dto"
	"ktv/models"
	"ktv/response"
	"ktv/services"
	"ktv/validator"

	"github.com/gin-gonic/gin"
)

// CreateBookingGroup tạo một nhóm booking trong một lần
func CreateBookingGroup(c *gin.Context) {
	var req dto.CreateBookingGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	input := services.CreateBookingGroupInput{
		CustomerID: req.CustomerID,
		Notes:      req.Notes,
	}
	for i := range req.Bookings {
		bookingReq := req.Bookings[i]
		if bookingReq.CustomerID == 0 {
			bookingReq.CustomerID = req.CustomerID
		}
		if err := validator.ValidateBookingRequest(&bookingReq); err != nil {
			response.FromError(c, err)
			return
		}
		parsed, err := parseBookingInput(&bookingReq)
		if err != nil {
			response.FromError(c, err)
			return
		}
		input.Bookings = append(input.Bookings, *parsed)
	}

	group, err := bookingService().CreateBookingGroup(input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:   "booking_created",
		Status: group.Status,
	})

	response.Created(c, toBookingGroupResponse(group))
}

// GetBookingGroup lấy chi tiết một nhóm booking
func GetBookingGroup(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	group, err := bookingService().GetBookingGroup(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toBookingGroupResponse(group))
}

// UpdateBookingGroupStatus đổi trạng thái nhóm, lan xuống booking thành viên
func UpdateBookingGroupStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateGroupStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := bookingService().UpdateBookingGroupStatus(uint(id), req.Status); err != nil {
		response.FromError(c, err)
		return
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:   "booking_status",
		Status: req.Status,
	})

	response.Success(c, gin.H{"id": id, "status": req.Status})
}

func toBookingGroupResponse(group *models.BookingGroup) dto.BookingGroupResponse {
	resp := dto.BookingGroupResponse{
		ID:            group.ID,
		CustomerID:    group.CustomerID,
		Status:        group.Status,
		TotalAmount:   group.TotalAmount,
		PaymentStatus: group.PaymentStatus,
		Bookings:      make([]dto.BookingResponse, 0, len(group.Bookings)),
	}
	for i := range group.Bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(&group.Bookings[i]))
	}
	return resp
}
