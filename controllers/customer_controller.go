package controllers

import (
	"strconv"

	"ktv/config"
	"ktv/dto"
	"ktv/models"
	"ktv/response"
	"ktv/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCustomers liệt kê khách hàng, tìm được theo tên hoặc số điện thoại
func GetCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.Customer{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR phone_number LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var customers []models.Customer
	err := query.Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		results = append(results, *toCustomerResponse(&customers[i]))
	}
	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// GetCustomerDetail lấy chi tiết khách hàng kèm lịch sử booking
func GetCustomerDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	err = config.DB.Preload("Rooms").
		Where("customer_id = ?", customer.ID).
		Order("start_time DESC").
		Limit(20).
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	history := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		history = append(history, toBookingResponse(&bookings[i]))
	}

	response.Success(c, gin.H{
		"customer": toCustomerResponse(&customer),
		"bookings": history,
	})
}

// GetCustomerBookings liệt kê lịch sử booking của một khách hàng
func GetCustomerBookings(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	err = config.DB.Preload("Rooms").Preload("Rooms.Room").
		Where("customer_id = ?", customer.ID).
		Order("start_time DESC").
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		results = append(results, toBookingResponse(&bookings[i]))
	}
	response.Success(c, results)
}

// CreateCustomer tạo khách hàng mới
func CreateCustomer(c *gin.Context) {
	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	customer := models.Customer{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
	if err := validator.ValidateCustomer(&customer); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, toCustomerResponse(&customer))
}

// UpdateCustomer cập nhật thông tin khách hàng
func UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.PhoneNumber != "" {
		customer.PhoneNumber = req.PhoneNumber
	}
	if req.Email != "" {
		customer.Email = req.Email
	}

	if err := validator.ValidateCustomer(&customer); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCustomerResponse(&customer))
}
