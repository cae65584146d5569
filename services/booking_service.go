package services

import (
	"fmt"
	"time"

	"ktv/builders"
	"ktv/constants"
	"ktv/errors"
	"ktv/models"
	"ktv/validator"

	"gorm.io/gorm"
)

// BookingService quản lý vòng đời booking: tạo, xác nhận, hủy, trả phòng,
// gia hạn và quét trạng thái theo giờ.
type BookingService struct {
	db  *gorm.DB
	log logger
}

type logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingServiceOptions cấu hình cho BookingService
type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// BookingRoomInput là một dòng phòng trong yêu cầu tạo booking
type BookingRoomInput struct {
	RoomID       uint
	StartTime    time.Time
	EndTime      time.Time
	PricePerHour *float64
}

// CreateBookingInput là yêu cầu tạo booking đã qua parse
type CreateBookingInput struct {
	CustomerID  uint
	Rooms       []BookingRoomInput
	TotalAmount *float64
	Notes       string
}

// BillableHours làm tròn lên thời lượng sử dụng theo giờ: giờ lẻ tính
// tròn một giờ
func BillableHours(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	hours := int(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

// ElapsedHours trả về số giờ trọn vẹn giữa hai thời điểm (cắt phần lẻ)
func ElapsedHours(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(d / time.Hour)
}

// CreateBooking tạo booking cùng các dòng phòng trong một transaction.
// Truy vấn xung đột được chạy lại bên trong transaction trước khi insert
// để hai yêu cầu tạo cùng phòng cùng khung giờ không cùng thành công.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	if input.CustomerID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "ID khách hàng không được để trống", nil)
	}
	if len(input.Rooms) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Booking phải có ít nhất một phòng", nil)
	}
	for _, line := range input.Rooms {
		if err := validator.ValidateTimeRange(line.StartTime, line.EndTime); err != nil {
			return nil, err
		}
	}

	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		created, err := s.createBookingTx(tx, input, nil)
		if err != nil {
			return err
		}
		booking = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Info("Đã tạo booking %d cho khách %d, tổng tiền %.0f", booking.ID, booking.CustomerID, booking.TotalAmount)
	}
	return booking, nil
}

// createBookingTx tạo booking bên trong một transaction sẵn có; groupID
// khác nil khi booking thuộc một nhóm.
func (s *BookingService) createBookingTx(tx *gorm.DB, input CreateBookingInput, groupID *uint) (*models.Booking, error) {
	var customer models.Customer
	if err := tx.First(&customer, input.CustomerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy khách hàng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra khách hàng", err)
	}

	builder := builders.NewBookingBuilder().
		WithCustomer(input.CustomerID).
		WithNotes(input.Notes)
	if groupID != nil {
		builder.WithGroup(*groupID)
	}

	var (
		total     float64
		spanStart time.Time
		spanEnd   time.Time
	)

	for _, line := range input.Rooms {
		var room models.Room
		if err := tx.First(&room, line.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("Không tìm thấy phòng %d", line.RoomID), err)
			}
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra phòng", err)
		}

		// Kiểm tra xung đột bên trong transaction: hai khoảng [s1,e1),
		// [s2,e2) chồng nhau khi s1 < e2 và e1 > s2
		var conflicts int64
		err := tx.Model(&models.BookingRoom{}).
			Where("room_id = ?", line.RoomID).
			Where("status IN ?", []string{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
			Where("start_time < ? AND end_time > ?", line.EndTime, line.StartTime).
			Count(&conflicts).Error
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra phòng đã đặt", err)
		}
		if conflicts > 0 {
			return nil, errors.NewAppError(errors.ErrCodeConflict,
				fmt.Sprintf("Phòng %s đã được đặt trong khoảng thời gian này", room.Name), errors.ErrRoomConflict)
		}

		price := room.PricePerHour
		if line.PricePerHour != nil {
			price = *line.PricePerHour
		}

		hours := BillableHours(line.StartTime, line.EndTime)
		total += float64(hours) * price

		builder.WithRoom(line.RoomID, line.StartTime, line.EndTime, price)

		if spanStart.IsZero() || line.StartTime.Before(spanStart) {
			spanStart = line.StartTime
		}
		if line.EndTime.After(spanEnd) {
			spanEnd = line.EndTime
		}
	}

	if input.TotalAmount != nil {
		total = *input.TotalAmount
	}

	booking := builder.
		WithTimeRange(spanStart, spanEnd).
		WithTotalAmount(total).
		Build()

	if err := tx.Create(booking).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo booking", err)
	}

	return booking, nil
}

// GetBooking lấy booking kèm các dòng phòng và khách hàng
func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Rooms").Preload("Rooms.Room").Preload("Customer").First(&booking, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy booking", err)
	}
	return &booking, nil
}

// ConfirmBookingRoom chuyển một dòng phòng pending sang confirmed.
// Update có điều kiện trên trạng thái hiện tại, đếm số dòng bị ảnh
// hưởng thay vì update vô điều kiện.
func (s *BookingService) ConfirmBookingRoom(id uint) error {
	return s.transitionBookingRoom(id,
		[]string{constants.BookingStatusPending},
		constants.BookingStatusConfirmed,
		"Chỉ xác nhận được phòng đang chờ")
}

// CancelBookingRoom hủy một dòng phòng chưa kết thúc
func (s *BookingService) CancelBookingRoom(id uint) error {
	return s.transitionBookingRoom(id,
		[]string{constants.BookingStatusPending, constants.BookingStatusConfirmed},
		constants.BookingStatusCancelled,
		"Không thể hủy phòng đã kết thúc")
}

func (s *BookingService) transitionBookingRoom(id uint, from []string, to, refuseMessage string) error {
	result := s.db.Model(&models.BookingRoom{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái phòng", result.Error)
	}
	if result.RowsAffected == 0 {
		var line models.BookingRoom
		if err := s.db.First(&line, id).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dòng đặt phòng", err)
		}
		return errors.NewAppError(errors.ErrCodeInvalidOperation, refuseMessage, nil)
	}
	return nil
}

// CheckInBookingRoom ghi nhận khách nhận phòng trên một dòng đã xác nhận
func (s *BookingService) CheckInBookingRoom(id uint) error {
	now := time.Now()
	result := s.db.Model(&models.BookingRoom{}).
		Where("id = ? AND status = ?", id, constants.BookingStatusConfirmed).
		Update("check_in_time", &now)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể ghi nhận nhận phòng", result.Error)
	}
	if result.RowsAffected == 0 {
		var line models.BookingRoom
		if err := s.db.First(&line, id).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dòng đặt phòng", err)
		}
		return errors.NewAppError(errors.ErrCodeInvalidOperation, "Chỉ nhận phòng được khi đã xác nhận", nil)
	}
	return nil
}

// CheckOutBookingRoom trả phòng một dòng đã xác nhận: ghi giờ trả và
// chuyển sang completed
func (s *BookingService) CheckOutBookingRoom(id uint) error {
	now := time.Now()
	result := s.db.Model(&models.BookingRoom{}).
		Where("id = ? AND status = ?", id, constants.BookingStatusConfirmed).
		Updates(map[string]interface{}{
			"check_out_time": &now,
			"status":         constants.BookingStatusCompleted,
		})
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể trả phòng", result.Error)
	}
	if result.RowsAffected == 0 {
		var line models.BookingRoom
		if err := s.db.First(&line, id).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dòng đặt phòng", err)
		}
		return errors.NewAppError(errors.ErrCodeInvalidOperation, "Chỉ trả phòng được khi đã xác nhận", nil)
	}
	return nil
}

// ConfirmBooking xác nhận booking đang chờ và các dòng phòng đang chờ
// của nó
func (s *BookingService) ConfirmBooking(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", id, constants.BookingStatusPending).
			Update("status", constants.BookingStatusConfirmed)
		if result.Error != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể xác nhận booking", result.Error)
		}
		if result.RowsAffected == 0 {
			var booking models.Booking
			if err := tx.First(&booking, id).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
			}
			return errors.NewAppError(errors.ErrCodeInvalidOperation, "Chỉ xác nhận được booking đang chờ", nil)
		}

		err := tx.Model(&models.BookingRoom{}).
			Where("booking_id = ? AND status = ?", id, constants.BookingStatusPending).
			Update("status", constants.BookingStatusConfirmed).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể xác nhận các phòng", err)
		}
		return nil
	})
}

// CancelBooking hủy booking đang chờ hoặc đã xác nhận. Trạng thái hủy
// lan xuống mọi dòng phòng, kể cả dòng đã completed.
func (s *BookingService) CancelBooking(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Booking{}).
			Where("id = ? AND status IN ?", id,
				[]string{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
			Update("status", constants.BookingStatusCancelled)
		if result.Error != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể hủy booking", result.Error)
		}
		if result.RowsAffected == 0 {
			var booking models.Booking
			if err := tx.First(&booking, id).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
			}
			return errors.NewAppError(errors.ErrCodeInvalidOperation, "Không thể hủy booking ở trạng thái hiện tại", nil)
		}

		err := tx.Model(&models.BookingRoom{}).
			Where("booking_id = ?", id).
			Update("status", constants.BookingStatusCancelled).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể hủy các phòng của booking", err)
		}
		return nil
	})
}

// CompleteWithPaymentInput là yêu cầu trả phòng kèm thanh toán
type CompleteWithPaymentInput struct {
	EndTime       *time.Time
	TotalAmount   *float64
	PaymentMethod string
	Notes         string
}

// CompleteBookingWithPayment trả phòng một booking đã xác nhận: chốt giờ
// kết thúc thực tế, tính lại hoặc nhận tổng tiền, ghi payment và trả mọi
// dòng phòng còn confirmed, tất cả trong một transaction.
func (s *BookingService) CompleteBookingWithPayment(id uint, input CompleteWithPaymentInput) (*models.Booking, *models.Payment, error) {
	if err := validator.ValidatePaymentMethod(input.PaymentMethod); err != nil {
		return nil, nil, err
	}

	var (
		booking models.Booking
		payment models.Payment
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Rooms").First(&booking, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy booking", err)
		}

		if err := models.GetBookingState(booking.Status).Complete(&booking); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidOperation, "Booking chưa được xác nhận", errors.ErrBookingNotConfirmed)
		}

		now := time.Now()
		endTime := booking.EndTime
		if input.EndTime != nil {
			// Giờ trả thực tế ghi đè giờ kết thúc, cho phép tính tiền trả muộn
			if !input.EndTime.After(booking.StartTime) {
				return errors.NewAppError(errors.ErrCodeInvalidTimeRange, "Giờ trả phòng phải sau giờ bắt đầu", nil)
			}
			endTime = *input.EndTime
		}

		total := 0.0
		for i := range booking.Rooms {
			line := &booking.Rooms[i]
			if line.Status == constants.BookingStatusCancelled {
				continue
			}
			lineEnd := line.EndTime
			if input.EndTime != nil {
				lineEnd = endTime
			}
			total += float64(BillableHours(line.StartTime, lineEnd)) * line.PricePerHour
		}
		if input.TotalAmount != nil {
			total = *input.TotalAmount
		}

		updates := map[string]interface{}{
			"status":       constants.BookingStatusCompleted,
			"end_time":     endTime,
			"total_amount": total,
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật booking", err)
		}

		// Các dòng còn confirmed được trả phòng cùng lúc
		err := tx.Model(&models.BookingRoom{}).
			Where("booking_id = ? AND status = ?", id, constants.BookingStatusConfirmed).
			Updates(map[string]interface{}{
				"status":         constants.BookingStatusCompleted,
				"end_time":       endTime,
				"check_out_time": &now,
				"payment_status": constants.PaymentStatusPaid,
			}).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể trả các phòng của booking", err)
		}

		payment = models.Payment{
			BookingID:     &booking.ID,
			CustomerID:    booking.CustomerID,
			Amount:        total,
			PaymentMethod: input.PaymentMethod,
			PaymentDate:   now,
			Notes:         input.Notes,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể ghi nhận thanh toán", err)
		}

		booking.Status = constants.BookingStatusCompleted
		booking.EndTime = endTime
		booking.TotalAmount = total
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if s.log != nil {
		s.log.Info("Đã trả phòng booking %d kèm thanh toán %.0f", booking.ID, payment.Amount)
	}
	return &booking, &payment, nil
}

// ExtendBooking kéo dài giờ kết thúc của booking và tính lại tổng tiền
// theo thời lượng mới của từng dòng phòng còn hoạt động
func (s *BookingService) ExtendBooking(id uint, newEndTime time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Rooms").First(&booking, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy booking", err)
		}

		if booking.Status != constants.BookingStatusPending && booking.Status != constants.BookingStatusConfirmed {
			return errors.NewAppError(errors.ErrCodeInvalidOperation, "Không thể gia hạn booking đã kết thúc", nil)
		}
		if !newEndTime.After(booking.EndTime) {
			return errors.NewAppError(errors.ErrCodeInvalidTimeRange, "Thời gian gia hạn phải sau thời gian kết thúc hiện tại", nil)
		}

		total := 0.0
		for i := range booking.Rooms {
			line := &booking.Rooms[i]
			if line.Status == constants.BookingStatusCancelled || line.Status == constants.BookingStatusCompleted {
				total += float64(BillableHours(line.StartTime, line.EndTime)) * line.PricePerHour
				continue
			}

			err := tx.Model(&models.BookingRoom{}).
				Where("id = ?", line.ID).
				Update("end_time", newEndTime).Error
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể gia hạn phòng", err)
			}
			line.EndTime = newEndTime
			total += float64(BillableHours(line.StartTime, newEndTime)) * line.PricePerHour
		}

		err := tx.Model(&booking).Updates(map[string]interface{}{
			"end_time":     newEndTime,
			"total_amount": total,
		}).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể gia hạn booking", err)
		}

		booking.EndTime = newEndTime
		booking.TotalAmount = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatusByTime quét các booking đã xác nhận quá giờ kết
// thúc và chuyển sang completed. Chạy lại nhiều lần cho cùng kết quả vì
// truy vấn chỉ lọc trên status confirmed.
func (s *BookingService) UpdateBookingStatusByTime() (int64, error) {
	now := time.Now()
	var swept int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Booking{}).
			Where("status = ? AND end_time < ?", constants.BookingStatusConfirmed, now).
			Update("status", constants.BookingStatusCompleted)
		if result.Error != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể quét booking quá giờ", result.Error)
		}
		swept = result.RowsAffected

		err := tx.Model(&models.BookingRoom{}).
			Where("status = ? AND end_time < ?", constants.BookingStatusConfirmed, now).
			Update("status", constants.BookingStatusCompleted).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể quét các phòng quá giờ", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if swept > 0 && s.log != nil {
		s.log.Info("Đã tự động hoàn tất %d booking quá giờ", swept)
	}
	return swept, nil
}
