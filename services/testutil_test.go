package services_test

import (
	"testing"
	"time"

	"ktv/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Room{},
		&models.Customer{},
		&models.User{},
		&models.BookingGroup{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.Payment{},
	)
	require.NoError(t, err)
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, name string, pricePerHour float64) *models.Room {
	room := &models.Room{
		Name:         name,
		Type:         "standard",
		PricePerHour: pricePerHour,
		Capacity:     6,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB) *models.Customer {
	customer := &models.Customer{
		Name:        "Nguyễn Văn A",
		PhoneNumber: "0901234567",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
}
