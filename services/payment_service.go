package services

import (
	"fmt"
	"time"

	"ktv/constants"
	"ktv/dto"
	"ktv/errors"
	"ktv/models"
	"ktv/validator"

	"gorm.io/gorm"
)

// PaymentService ghi nhận thanh toán và đối soát trạng thái thanh toán
// của booking. Bản ghi payment bất biến sau khi tạo, điều chỉnh sai sót
// bằng bản ghi bù trừ chứ không sửa hay xóa.
type PaymentService struct {
	db  *gorm.DB
	log logger
}

type PaymentServiceOptions struct {
	DB     *gorm.DB
	Logger logger
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	return &PaymentService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// ProcessPayment ghi nhận một thanh toán đơn lẻ. Payment phải tham chiếu
// ít nhất một trong booking / booking group / booking room; khách hàng
// được suy ra từ tham chiếu khi request không gửi kèm.
func (s *PaymentService) ProcessPayment(req dto.PaymentRequest) (*models.Payment, error) {
	if err := validator.ValidatePaymentRequest(&req); err != nil {
		return nil, err
	}

	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		customerID := req.CustomerID

		var booking *models.Booking
		if req.BookingID != nil {
			var b models.Booking
			if err := tx.First(&b, *req.BookingID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy booking", err)
				}
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra booking", err)
			}
			booking = &b
			if customerID == 0 {
				customerID = b.CustomerID
			}
		}

		var group *models.BookingGroup
		if req.BookingGroupID != nil {
			var g models.BookingGroup
			if err := tx.First(&g, *req.BookingGroupID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy nhóm booking", err)
				}
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra nhóm booking", err)
			}
			group = &g
			if customerID == 0 {
				customerID = g.CustomerID
			}
		}

		if req.BookingRoomID != nil {
			var line models.BookingRoom
			if err := tx.First(&line, *req.BookingRoomID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dòng đặt phòng", err)
				}
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra dòng đặt phòng", err)
			}

			err := tx.Model(&models.BookingRoom{}).
				Where("id = ?", line.ID).
				Update("payment_status", constants.PaymentStatusPaid).Error
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái thanh toán phòng", err)
			}

			if booking == nil {
				var b models.Booking
				if err := tx.First(&b, line.BookingID).Error; err == nil {
					booking = &b
					if customerID == 0 {
						customerID = b.CustomerID
					}
				}
			}
		}

		if customerID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Không xác định được khách hàng cho thanh toán", nil)
		}

		payment = models.Payment{
			BookingID:      req.BookingID,
			BookingGroupID: req.BookingGroupID,
			BookingRoomID:  req.BookingRoomID,
			CustomerID:     customerID,
			Amount:         req.Amount,
			PaymentMethod:  req.PaymentMethod,
			TransactionID:  req.TransactionID,
			PaymentDate:    time.Now(),
			Notes:          req.Notes,
		}
		if payment.BookingID == nil && booking != nil {
			payment.BookingID = &booking.ID
		}
		if err := tx.Create(&payment).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể ghi nhận thanh toán", err)
		}

		if payment.BookingID != nil {
			if err := s.reconcileBooking(tx, *payment.BookingID); err != nil {
				return err
			}
		}
		if group != nil {
			if err := s.reconcileGroup(tx, group.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Info("Đã ghi nhận thanh toán %d: %.0f (%s)", payment.ID, payment.Amount, payment.PaymentMethod)
	}
	return &payment, nil
}

// ProcessMultiplePayment ghi nhận một lô thanh toán trong một
// transaction duy nhất: một mục lỗi thì cả lô không được ghi.
func (s *PaymentService) ProcessMultiplePayment(req dto.MultiplePaymentRequest) ([]models.Payment, error) {
	if err := validator.ValidateMultiplePaymentRequest(&req); err != nil {
		return nil, err
	}

	var payments []models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		seen := make(map[uint]struct{})

		for _, item := range req.Items {
			var booking models.Booking
			if err := tx.First(&booking, item.BookingID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return errors.NewAppError(errors.ErrCodeDBNotFound,
						fmt.Sprintf("Không tìm thấy booking %d", item.BookingID), err)
				}
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra booking", err)
			}

			if item.BookingRoomID != nil {
				var line models.BookingRoom
				err := tx.Where("id = ? AND booking_id = ?", *item.BookingRoomID, item.BookingID).
					First(&line).Error
				if err != nil {
					if err == gorm.ErrRecordNotFound {
						return errors.NewAppError(errors.ErrCodeDBNotFound,
							fmt.Sprintf("Không tìm thấy dòng đặt phòng %d trong booking %d", *item.BookingRoomID, item.BookingID), err)
					}
					return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra dòng đặt phòng", err)
				}

				err = tx.Model(&models.BookingRoom{}).
					Where("id = ?", line.ID).
					Update("payment_status", constants.PaymentStatusPaid).Error
				if err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái thanh toán phòng", err)
				}
			}

			bookingID := item.BookingID
			payment := models.Payment{
				BookingID:     &bookingID,
				BookingRoomID: item.BookingRoomID,
				CustomerID:    booking.CustomerID,
				Amount:        item.Amount,
				PaymentMethod: req.PaymentMethod,
				PaymentDate:   time.Now(),
				Notes:         req.Notes,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể ghi nhận thanh toán", err)
			}
			payments = append(payments, payment)
			seen[item.BookingID] = struct{}{}
		}

		// Đối soát một lần cho mỗi booking xuất hiện trong lô
		for bookingID := range seen {
			if err := s.reconcileBooking(tx, bookingID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Info("Đã ghi nhận lô %d thanh toán", len(payments))
	}
	return payments, nil
}

// reconcileBooking so số dòng phòng đã có thanh toán với tổng số dòng
// chưa hủy; đủ thì chuyển booking sang completed. Phép so chỉ đếm dòng
// có hay không có bản ghi thanh toán, không so số tiền với đơn giá.
func (s *PaymentService) reconcileBooking(tx *gorm.DB, bookingID uint) error {
	var totalLines int64
	err := tx.Model(&models.BookingRoom{}).
		Where("booking_id = ? AND status <> ?", bookingID, constants.BookingStatusCancelled).
		Count(&totalLines).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm các phòng của booking", err)
	}

	// Chỉ đếm thanh toán gắn với dòng chưa hủy: dòng có thể bị hủy sau
	// khi đã nhận thanh toán, bản ghi đó không được che cho dòng khác
	liveLines := tx.Model(&models.BookingRoom{}).
		Select("id").
		Where("booking_id = ? AND status <> ?", bookingID, constants.BookingStatusCancelled)

	var paidLines int64
	err = tx.Model(&models.Payment{}).
		Where("booking_id = ? AND booking_room_id IN (?)", bookingID, liveLines).
		Distinct("booking_room_id").
		Count(&paidLines).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm các phòng đã thanh toán", err)
	}

	if totalLines > 0 && paidLines >= totalLines {
		err := tx.Model(&models.Booking{}).
			Where("id = ?", bookingID).
			Update("status", constants.BookingStatusCompleted).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể hoàn tất booking", err)
		}
	}
	return nil
}

// reconcileGroup cập nhật trạng thái thanh toán của nhóm theo tổng tiền
// đã thu so với tổng tiền của nhóm
func (s *PaymentService) reconcileGroup(tx *gorm.DB, groupID uint) error {
	var group models.BookingGroup
	if err := tx.First(&group, groupID).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy nhóm booking", err)
	}

	var paid float64
	err := tx.Model(&models.Payment{}).
		Where("booking_group_id = ?", groupID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể tính tổng thanh toán của nhóm", err)
	}

	status := constants.PaymentStatusUnpaid
	switch {
	case paid >= group.TotalAmount && group.TotalAmount > 0:
		status = constants.PaymentStatusPaid
	case paid > 0:
		status = constants.PaymentStatusPartiallyPaid
	}

	err = tx.Model(&models.BookingGroup{}).
		Where("id = ?", groupID).
		Update("payment_status", status).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái thanh toán của nhóm", err)
	}
	return nil
}

// UnpaidBookings liệt kê các booking đã xác nhận còn dòng phòng chưa có
// thanh toán. Tiền từng dòng tính lại từ số giờ trọn vẹn nhân đơn giá,
// không đọc total_amount đã lưu.
func (s *PaymentService) UnpaidBookings() ([]dto.UnpaidBookingResponse, error) {
	var bookings []models.Booking
	err := s.db.Preload("Rooms").Preload("Rooms.Room").Preload("Customer").
		Where("status = ?", constants.BookingStatusConfirmed).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách booking", err)
	}

	var paidRoomIDs []uint
	err = s.db.Model(&models.Payment{}).
		Where("booking_room_id IS NOT NULL").
		Distinct().
		Pluck("booking_room_id", &paidRoomIDs).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy các phòng đã thanh toán", err)
	}
	paidSet := make(map[uint]struct{}, len(paidRoomIDs))
	for _, id := range paidRoomIDs {
		paidSet[id] = struct{}{}
	}

	results := make([]dto.UnpaidBookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		var unpaidRooms []dto.UnpaidRoom
		var unpaidAmount float64

		for _, line := range booking.Rooms {
			if line.Status == constants.BookingStatusCancelled {
				continue
			}
			if _, paid := paidSet[line.ID]; paid {
				continue
			}
			if line.PaymentStatus == constants.PaymentStatusPaid {
				continue
			}

			hours := ElapsedHours(line.StartTime, line.EndTime)
			subtotal := float64(hours) * line.PricePerHour
			unpaid := dto.UnpaidRoom{
				BookingRoomID: line.ID,
				RoomID:        line.RoomID,
				StartTime:     line.StartTime,
				EndTime:       line.EndTime,
				Hours:         hours,
				PricePerHour:  line.PricePerHour,
				Subtotal:      subtotal,
			}
			if line.Room != nil {
				unpaid.RoomName = line.Room.Name
			}
			unpaidRooms = append(unpaidRooms, unpaid)
			unpaidAmount += subtotal
		}

		if len(unpaidRooms) == 0 {
			continue
		}

		resp := dto.UnpaidBookingResponse{
			BookingID:    booking.ID,
			CustomerID:   booking.CustomerID,
			Status:       booking.Status,
			UnpaidRooms:  unpaidRooms,
			UnpaidAmount: unpaidAmount,
		}
		if booking.Customer != nil {
			resp.Customer = &dto.CustomerResponse{
				ID:          booking.Customer.ID,
				Name:        booking.Customer.Name,
				PhoneNumber: booking.Customer.PhoneNumber,
				Email:       booking.Customer.Email,
			}
		}
		results = append(results, resp)
	}

	return results, nil
}

// PaymentsByBooking liệt kê các thanh toán của một booking
func (s *PaymentService) PaymentsByBooking(bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("booking_id = ?", bookingID).
		Order("payment_date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách thanh toán", err)
	}
	return payments, nil
}
