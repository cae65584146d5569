package services_test

import (
	"testing"

	"ktv/constants"
	"ktv/errors"
	"ktv/models"
	"ktv/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingGroup(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)

	roomA := seedRoom(t, db, "Phòng A", 100000)
	roomB := seedRoom(t, db, "Phòng B", 150000)
	customer := seedCustomer(t, db)

	group, err := svc.CreateBookingGroup(services.CreateBookingGroupInput{
		CustomerID: customer.ID,
		Bookings: []services.CreateBookingInput{
			{Rooms: []services.BookingRoomInput{{RoomID: roomA.ID, StartTime: at(14, 0), EndTime: at(16, 0)}}},
			{Rooms: []services.BookingRoomInput{{RoomID: roomB.ID, StartTime: at(14, 0), EndTime: at(17, 0)}}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, constants.BookingStatusPending, group.Status)
	assert.Equal(t, constants.PaymentStatusUnpaid, group.PaymentStatus)
	// 2h x 100000 + 3h x 150000
	assert.Equal(t, float64(650000), group.TotalAmount)
	require.Len(t, group.Bookings, 2)
	for _, booking := range group.Bookings {
		require.NotNil(t, booking.BookingGroupID)
		assert.Equal(t, group.ID, *booking.BookingGroupID)
		assert.Equal(t, customer.ID, booking.CustomerID)
	}
}

func TestCreateBookingGroupRollsBackOnConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	customer := seedCustomer(t, db)

	// Hai booking trong nhóm tranh cùng phòng cùng khung giờ
	_, err := svc.CreateBookingGroup(services.CreateBookingGroupInput{
		CustomerID: customer.ID,
		Bookings: []services.CreateBookingInput{
			{Rooms: []services.BookingRoomInput{{RoomID: room.ID, StartTime: at(14, 0), EndTime: at(16, 0)}}},
			{Rooms: []services.BookingRoomInput{{RoomID: room.ID, StartTime: at(15, 0), EndTime: at(17, 0)}}},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConflict))

	var groups int64
	require.NoError(t, db.Model(&models.BookingGroup{}).Count(&groups).Error)
	assert.Equal(t, int64(0), groups)

	var bookings int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookings).Error)
	assert.Equal(t, int64(0), bookings)
}

func TestUpdateBookingGroupStatusCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)

	roomA := seedRoom(t, db, "Phòng A", 100000)
	roomB := seedRoom(t, db, "Phòng B", 100000)
	customer := seedCustomer(t, db)

	group, err := svc.CreateBookingGroup(services.CreateBookingGroupInput{
		CustomerID: customer.ID,
		Bookings: []services.CreateBookingInput{
			{Rooms: []services.BookingRoomInput{{RoomID: roomA.ID, StartTime: at(14, 0), EndTime: at(16, 0)}}},
			{Rooms: []services.BookingRoomInput{{RoomID: roomB.ID, StartTime: at(14, 0), EndTime: at(16, 0)}}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateBookingGroupStatus(group.ID, constants.BookingStatusConfirmed))

	var bookings []models.Booking
	require.NoError(t, db.Preload("Rooms").Where("booking_group_id = ?", group.ID).Find(&bookings).Error)
	require.Len(t, bookings, 2)
	for _, booking := range bookings {
		assert.Equal(t, constants.BookingStatusConfirmed, booking.Status)
		for _, line := range booking.Rooms {
			assert.Equal(t, constants.BookingStatusConfirmed, line.Status)
		}
	}

	err = svc.UpdateBookingGroupStatus(group.ID, "unknown")
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidStatus))

	err = svc.UpdateBookingGroupStatus(99999, constants.BookingStatusCancelled)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDBNotFound))
}
