package services_test

import (
	"testing"

	"ktv/constants"
	"ktv/errors"
	"ktv/models"
	"ktv/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBookingRoom(t *testing.T, db *gorm.DB, roomID uint, startHour, endHour int, status string) {
	customer := seedCustomer(t, db)
	booking := models.Booking{
		CustomerID: customer.ID,
		StartTime:  at(startHour, 0),
		EndTime:    at(endHour, 0),
		Status:     status,
	}
	require.NoError(t, db.Create(&booking).Error)

	line := models.BookingRoom{
		BookingID:     booking.ID,
		RoomID:        roomID,
		StartTime:     at(startHour, 0),
		EndTime:       at(endHour, 0),
		PricePerHour:  100000,
		Status:        status,
		PaymentStatus: constants.PaymentStatusUnpaid,
	}
	require.NoError(t, db.Create(&line).Error)
}

func TestAvailableRoomsExcludesOverlapping(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAvailabilityService(db)

	roomA := seedRoom(t, db, "Phòng A", 100000)
	roomB := seedRoom(t, db, "Phòng B", 150000)
	seedRoom(t, db, "Phòng C", 200000)

	// Phòng A bận 14h-16h, phòng B bận 10h-12h
	seedBookingRoom(t, db, roomA.ID, 14, 16, constants.BookingStatusConfirmed)
	seedBookingRoom(t, db, roomB.ID, 10, 12, constants.BookingStatusPending)

	rooms, err := svc.AvailableRooms(at(15, 0), at(17, 0))
	require.NoError(t, err)

	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, room.Name)
	}
	assert.Equal(t, []string{"Phòng B", "Phòng C"}, names)
}

func TestAvailableRoomsBoundaryTouchIsNotConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAvailabilityService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	seedBookingRoom(t, db, room.ID, 14, 16, constants.BookingStatusConfirmed)

	// Khung giờ bắt đầu đúng lúc booking cũ kết thúc
	rooms, err := svc.AvailableRooms(at(16, 0), at(18, 0))
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, room.ID, rooms[0].ID)

	// Và khung giờ kết thúc đúng lúc booking cũ bắt đầu
	rooms, err = svc.AvailableRooms(at(12, 0), at(14, 0))
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestAvailableRoomsIgnoresCancelledAndCompleted(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAvailabilityService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	seedBookingRoom(t, db, room.ID, 14, 16, constants.BookingStatusCancelled)
	seedBookingRoom(t, db, room.ID, 14, 16, constants.BookingStatusCompleted)

	rooms, err := svc.AvailableRooms(at(14, 0), at(16, 0))
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestAvailableRoomsIncludesRoomWithNoBookings(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAvailabilityService(db)

	seedRoom(t, db, "Phòng mới", 100000)

	rooms, err := svc.AvailableRooms(at(10, 0), at(12, 0))
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestAvailableRoomsRejectsInvalidRange(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAvailabilityService(db)

	_, err := svc.AvailableRooms(at(16, 0), at(14, 0))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidTimeRange))

	_, err = svc.AvailableRooms(at(14, 0), at(14, 0))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidTimeRange))
}

func TestRoomAvailable(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAvailabilityService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	seedBookingRoom(t, db, room.ID, 14, 16, constants.BookingStatusConfirmed)

	available, err := svc.RoomAvailable(room.ID, at(15, 0), at(17, 0))
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.RoomAvailable(room.ID, at(16, 0), at(18, 0))
	require.NoError(t, err)
	assert.True(t, available)
}
