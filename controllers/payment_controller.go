package controllers

import (
	"strconv"

	"ktv/config"
	"ktv/dto"
	"ktv/models"
	"ktv/response"
	"ktv/services"

	"github.com/gin-gonic/gin"
)

// GetPayments liệt kê thanh toán, lọc được theo phương thức và khách hàng
func GetPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.Payment{})
	if method := c.Query("payment_method"); method != "" {
		query = query.Where("payment_method = ?", method)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var payments []models.Payment
	err := query.Order("payment_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		results = append(results, toPaymentResponse(&payments[i]))
	}
	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// CreatePayment ghi nhận một thanh toán đơn lẻ
func CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payment, err := paymentService().ProcessPayment(req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	event := services.BookingEvent{
		Type:   "payment_recorded",
		Amount: payment.Amount,
	}
	if payment.BookingID != nil {
		event.BookingID = *payment.BookingID
	}
	services.BroadcastBookingEvent(Melody, event)

	response.Created(c, toPaymentResponse(payment))
}

// CreateMultiplePayment ghi nhận một lô thanh toán, tất cả hoặc không gì cả
func CreateMultiplePayment(c *gin.Context) {
	var req dto.MultiplePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payments, err := paymentService().ProcessMultiplePayment(req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	var total float64
	results := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		results = append(results, toPaymentResponse(&payments[i]))
		total += payments[i].Amount
	}

	services.BroadcastBookingEvent(Melody, services.BookingEvent{
		Type:   "payment_recorded",
		Amount: total,
	})

	response.Created(c, results)
}

// GetUnpaidBookings liệt kê các booking còn phòng chưa thanh toán
func GetUnpaidBookings(c *gin.Context) {
	results, err := paymentService().UnpaidBookings()
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, results)
}

// GetBookingPayments liệt kê các thanh toán của một booking
func GetBookingPayments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	payments, err := paymentService().PaymentsByBooking(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}

	results := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		results = append(results, toPaymentResponse(&payments[i]))
	}
	response.Success(c, results)
}
