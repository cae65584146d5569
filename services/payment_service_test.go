package services_test

import (
	"testing"

	"ktv/constants"
	"ktv/dto"
	"ktv/errors"
	"ktv/models"
	"ktv/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPaymentService(db *gorm.DB) *services.PaymentService {
	return services.NewPaymentService(services.PaymentServiceOptions{DB: db})
}

func TestProcessPaymentMarksLinePaid(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{room.ID})
	lineID := booking.Rooms[0].ID

	payment, err := paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		BookingRoomID: &lineID,
		Amount:        200000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, booking.CustomerID, payment.CustomerID)
	assert.Equal(t, float64(200000), payment.Amount)

	var line models.BookingRoom
	require.NoError(t, db.First(&line, lineID).Error)
	assert.Equal(t, constants.PaymentStatusPaid, line.PaymentStatus)
}

func TestProcessPaymentCompletesFullyPaidBooking(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	roomA := seedRoom(t, db, "Phòng A", 100000)
	roomB := seedRoom(t, db, "Phòng B", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{roomA.ID, roomB.ID})

	// Thanh toán dòng thứ nhất: booking vẫn confirmed
	lineA := booking.Rooms[0].ID
	_, err := paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		BookingRoomID: &lineA,
		Amount:        200000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	var refreshed models.Booking
	require.NoError(t, db.First(&refreshed, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, refreshed.Status)

	// Thanh toán dòng thứ hai: mọi dòng đều có payment, booking hoàn tất
	lineB := booking.Rooms[1].ID
	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		BookingRoomID: &lineB,
		Amount:        200000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&refreshed, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusCompleted, refreshed.Status)
}

func TestProcessPaymentIgnoresCancelledLinesInCoverage(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	roomA := seedRoom(t, db, "Phòng A", 100000)
	roomB := seedRoom(t, db, "Phòng B", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{roomA.ID, roomB.ID})

	// Hủy một dòng, chỉ còn một dòng cần thanh toán
	require.NoError(t, bookingSvc.CancelBookingRoom(booking.Rooms[1].ID))

	lineA := booking.Rooms[0].ID
	_, err := paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		BookingRoomID: &lineA,
		Amount:        200000,
		PaymentMethod: constants.PaymentMethodTransfer,
	})
	require.NoError(t, err)

	var refreshed models.Booking
	require.NoError(t, db.First(&refreshed, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusCompleted, refreshed.Status)
}

func TestProcessPaymentIgnoresPaymentsOnLinesCancelledAfterwards(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	roomA := seedRoom(t, db, "Phòng A", 100000)
	roomB := seedRoom(t, db, "Phòng B", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{roomA.ID, roomB.ID})

	// Thanh toán dòng A rồi mới hủy dòng A: bản ghi thanh toán đó
	// không còn tính vào độ phủ
	lineA := booking.Rooms[0].ID
	_, err := paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		BookingRoomID: &lineA,
		Amount:        200000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)
	require.NoError(t, bookingSvc.CancelBookingRoom(lineA))

	// Thanh toán cấp booking kích hoạt đối soát; dòng B chưa có
	// thanh toán nên booking không được hoàn tất
	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		Amount:        50000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	var refreshed models.Booking
	require.NoError(t, db.First(&refreshed, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusConfirmed, refreshed.Status)

	// Thanh toán dòng B thì booking mới hoàn tất
	lineB := booking.Rooms[1].ID
	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		BookingRoomID: &lineB,
		Amount:        200000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&refreshed, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusCompleted, refreshed.Status)
}

func TestProcessPaymentCoverageMonotonic(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{room.ID})

	lineID := booking.Rooms[0].ID
	_, err := paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		BookingRoomID: &lineID,
		Amount:        200000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	var refreshed models.Booking
	require.NoError(t, db.First(&refreshed, booking.ID).Error)
	require.Equal(t, constants.BookingStatusCompleted, refreshed.Status)

	// Thanh toán bổ sung sau khi hoàn tất không kéo trạng thái lùi lại
	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		Amount:        30000,
		PaymentMethod: constants.PaymentMethodTransfer,
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&refreshed, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusCompleted, refreshed.Status)
}

func TestProcessPaymentValidation(t *testing.T) {
	db := setupTestDB(t)
	paymentSvc := newPaymentService(db)

	bookingID := uint(1)
	_, err := paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &bookingID,
		Amount:        0,
		PaymentMethod: constants.PaymentMethodCash,
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidAmount))

	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		Amount:        100000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeRequiredField))

	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &bookingID,
		Amount:        100000,
		PaymentMethod: "bitcoin",
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidFormat))

	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &bookingID,
		Amount:        100000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	assert.True(t, errors.IsCode(err, errors.ErrCodeDBNotFound))
}

func TestProcessMultiplePaymentAllOrNothing(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{room.ID})

	// Mục thứ hai trỏ đến booking không tồn tại, cả lô phải bị hủy
	_, err := paymentSvc.ProcessMultiplePayment(dto.MultiplePaymentRequest{
		Items: []dto.PaymentItem{
			{BookingID: booking.ID, Amount: 200000},
			{BookingID: 99999, Amount: 100000},
		},
		PaymentMethod: constants.PaymentMethodCard,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDBNotFound))

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestProcessMultiplePayment(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	roomA := seedRoom(t, db, "Phòng A", 100000)
	roomB := seedRoom(t, db, "Phòng B", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{roomA.ID, roomB.ID})

	lineA := booking.Rooms[0].ID
	lineB := booking.Rooms[1].ID
	payments, err := paymentSvc.ProcessMultiplePayment(dto.MultiplePaymentRequest{
		Items: []dto.PaymentItem{
			{BookingID: booking.ID, BookingRoomID: &lineA, Amount: 200000},
			{BookingID: booking.ID, BookingRoomID: &lineB, Amount: 200000},
		},
		PaymentMethod: constants.PaymentMethodEWallet,
	})
	require.NoError(t, err)
	require.Len(t, payments, 2)

	// Cả hai dòng đã thanh toán nên booking hoàn tất
	var refreshed models.Booking
	require.NoError(t, db.First(&refreshed, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusCompleted, refreshed.Status)
}

func TestUnpaidBookings(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{room.ID})

	results, err := paymentSvc.UnpaidBookings()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, booking.ID, results[0].BookingID)
	require.Len(t, results[0].UnpaidRooms, 1)
	// 2 giờ trọn vẹn x 100000, tính lại trực tiếp từ khung giờ
	assert.Equal(t, 2, results[0].UnpaidRooms[0].Hours)
	assert.Equal(t, float64(200000), results[0].UnpaidRooms[0].Subtotal)
	assert.Equal(t, float64(200000), results[0].UnpaidAmount)

	// Sau khi thanh toán, booking biến mất khỏi danh sách
	lineID := booking.Rooms[0].ID
	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		BookingRoomID: &lineID,
		Amount:        200000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	results, err = paymentSvc.UnpaidBookings()
	require.NoError(t, err)
	assert.Len(t, results, 0)
}

func TestUnpaidBookingsTruncatesPartialHours(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	customer := seedCustomer(t, db)

	booking, err := bookingSvc.CreateBooking(services.CreateBookingInput{
		CustomerID: customer.ID,
		Rooms: []services.BookingRoomInput{
			{RoomID: room.ID, StartTime: at(14, 0), EndTime: at(16, 30)},
		},
	})
	require.NoError(t, err)
	require.NoError(t, bookingSvc.ConfirmBooking(booking.ID))

	// Khi tạo booking 2h30 tính tròn lên 3 giờ
	assert.Equal(t, float64(300000), booking.TotalAmount)

	// Nhưng danh sách chưa thanh toán chỉ đếm giờ trọn vẹn
	results, err := paymentSvc.UnpaidBookings()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].UnpaidRooms[0].Hours)
	assert.Equal(t, float64(200000), results[0].UnpaidAmount)
}

func TestGroupPaymentStatusReconciliation(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	roomA := seedRoom(t, db, "Phòng A", 100000)
	roomB := seedRoom(t, db, "Phòng B", 100000)
	customer := seedCustomer(t, db)

	group, err := bookingSvc.CreateBookingGroup(services.CreateBookingGroupInput{
		CustomerID: customer.ID,
		Bookings: []services.CreateBookingInput{
			{Rooms: []services.BookingRoomInput{{RoomID: roomA.ID, StartTime: at(14, 0), EndTime: at(16, 0)}}},
			{Rooms: []services.BookingRoomInput{{RoomID: roomB.ID, StartTime: at(14, 0), EndTime: at(16, 0)}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(400000), group.TotalAmount)

	// Thanh toán một nửa: partially_paid
	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingGroupID: &group.ID,
		Amount:         200000,
		PaymentMethod:  constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	var refreshed models.BookingGroup
	require.NoError(t, db.First(&refreshed, group.ID).Error)
	assert.Equal(t, constants.PaymentStatusPartiallyPaid, refreshed.PaymentStatus)

	// Thanh toán nốt: paid
	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingGroupID: &group.ID,
		Amount:         200000,
		PaymentMethod:  constants.PaymentMethodCash,
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&refreshed, group.ID).Error)
	assert.Equal(t, constants.PaymentStatusPaid, refreshed.PaymentStatus)
}

func TestPaymentsByBooking(t *testing.T) {
	db := setupTestDB(t)
	bookingSvc := newBookingService(db)
	paymentSvc := newPaymentService(db)

	room := seedRoom(t, db, "Phòng A", 100000)
	booking := createConfirmedBooking(t, db, bookingSvc, []uint{room.ID})

	_, err := paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		Amount:        50000,
		PaymentMethod: constants.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = paymentSvc.ProcessPayment(dto.PaymentRequest{
		BookingID:     &booking.ID,
		Amount:        150000,
		PaymentMethod: constants.PaymentMethodCard,
	})
	require.NoError(t, err)

	payments, err := paymentSvc.PaymentsByBooking(booking.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, float64(50000), payments[0].Amount)
	assert.Equal(t, float64(150000), payments[1].Amount)
}
