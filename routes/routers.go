package routes

import (
	"context"
	"net/http"

	"ktv/config"
	"ktv/constants"
	"ktv/controllers"
	middlewares "ktv/middleware"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	controllers.Melody = m

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/register", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.Register)

	v1.GET("/rooms", controllers.GetAllRooms)
	v1.GET("/rooms/search", controllers.SearchRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteRoom)
	v1.POST("/rooms/:id/image", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UploadRoomImage)

	v1.GET("/customers", controllers.GetCustomers)
	v1.GET("/customers/:id", controllers.GetCustomerDetail)
	v1.GET("/customers/:id/bookings", controllers.GetCustomerBookings)
	v1.POST("/customers", controllers.CreateCustomer)
	v1.PUT("/customers/:id", controllers.UpdateCustomer)

	v1.GET("/bookings/available", controllers.CheckAvailability)
	v1.POST("/bookings/available", controllers.CheckAvailability)
	v1.GET("/bookings", controllers.GetBookings)
	v1.POST("/bookings", controllers.CreateBooking)
	v1.GET("/bookings/:id", controllers.GetBooking)
	v1.PUT("/bookings/:id/confirm", controllers.ConfirmBooking)
	v1.PUT("/bookings/:id/cancel", controllers.CancelBooking)
	v1.PUT("/bookings/:id/extend", controllers.ExtendBooking)
	v1.POST("/bookings/:id/complete-with-payment", controllers.CompleteBookingWithPayment)
	v1.GET("/bookings/:id/payments", controllers.GetBookingPayments)

	v1.PUT("/booking-rooms/:id/confirm", controllers.ConfirmBookingRoom)
	v1.PUT("/booking-rooms/:id/cancel", controllers.CancelBookingRoom)
	v1.PUT("/booking-rooms/:id/check-in", controllers.CheckInBookingRoom)
	v1.PUT("/booking-rooms/:id/check-out", controllers.CheckOutBookingRoom)

	v1.POST("/booking-groups", controllers.CreateBookingGroup)
	v1.GET("/booking-groups/:id", controllers.GetBookingGroup)
	v1.PUT("/booking-groups/:id/status", controllers.UpdateBookingGroupStatus)

	v1.GET("/payments", controllers.GetPayments)
	v1.POST("/payments", controllers.CreatePayment)
	v1.POST("/payments/multiple", controllers.CreateMultiplePayment)
	v1.GET("/payments/unpaid-bookings", controllers.GetUnpaidBookings)

	// doanh thu
	v1.GET("/revenue", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff), controllers.GetRevenue)
	v1.GET("/revenue/monthly", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff), controllers.GetMonthlyRevenue)
	v1.GET("/revenue/today", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff), controllers.GetTodayRevenue)
	v1.GET("/revenue/by-method", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleStaff), controllers.GetRevenueByMethod)

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": resp.SecureURL})
	})

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			src.Close()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{"urls": urls})
	})
}
