package main

import (
	"log"
	"net/http"
	"os"

	"ktv/config"
	"ktv/jobs"
	"ktv/models"
	"ktv/routes"
	"ktv/services"
	"ktv/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	err := config.DB.AutoMigrate(
		&models.Room{},
		&models.Customer{},
		&models.User{},
		&models.BookingGroup{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetBookingSweeper(bookingService)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
