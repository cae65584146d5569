package services

import (
	"ktv/constants"
	"ktv/errors"
	"ktv/models"

	"gorm.io/gorm"
)

// CreateBookingGroupInput là yêu cầu tạo nhóm booking đã qua parse
type CreateBookingGroupInput struct {
	CustomerID uint
	Bookings   []CreateBookingInput
	Notes      string
}

// CreateBookingGroup tạo nhóm booking cùng toàn bộ booking thành viên
// trong một transaction. Một booking thành viên lỗi thì cả nhóm không
// được tạo.
func (s *BookingService) CreateBookingGroup(input CreateBookingGroupInput) (*models.BookingGroup, error) {
	if input.CustomerID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "ID khách hàng không được để trống", nil)
	}
	if len(input.Bookings) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Nhóm booking phải có ít nhất một booking", nil)
	}

	var group models.BookingGroup
	err := s.db.Transaction(func(tx *gorm.DB) error {
		group = models.BookingGroup{
			CustomerID:    input.CustomerID,
			Status:        constants.BookingStatusPending,
			PaymentStatus: constants.PaymentStatusUnpaid,
		}
		if err := tx.Create(&group).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo nhóm booking", err)
		}

		var total float64
		for _, bookingInput := range input.Bookings {
			if bookingInput.CustomerID == 0 {
				bookingInput.CustomerID = input.CustomerID
			}
			created, err := s.createBookingTx(tx, bookingInput, &group.ID)
			if err != nil {
				return err
			}
			total += created.TotalAmount
			group.Bookings = append(group.Bookings, *created)
		}

		err := tx.Model(&models.BookingGroup{}).
			Where("id = ?", group.ID).
			Update("total_amount", total).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật tổng tiền nhóm booking", err)
		}
		group.TotalAmount = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.log != nil {
		s.log.Info("Đã tạo nhóm booking %d với %d booking, tổng tiền %.0f", group.ID, len(group.Bookings), group.TotalAmount)
	}
	return &group, nil
}

// GetBookingGroup lấy nhóm booking kèm các booking thành viên và dòng phòng
func (s *BookingService) GetBookingGroup(id uint) (*models.BookingGroup, error) {
	var group models.BookingGroup
	err := s.db.Preload("Bookings").Preload("Bookings.Rooms").Preload("Customer").
		First(&group, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy nhóm booking", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy nhóm booking", err)
	}
	return &group, nil
}

// UpdateBookingGroupStatus đổi trạng thái nhóm và lan xuống các booking
// thành viên cùng dòng phòng của chúng
func (s *BookingService) UpdateBookingGroupStatus(id uint, status string) error {
	switch status {
	case constants.BookingStatusConfirmed, constants.BookingStatusCancelled, constants.BookingStatusCompleted:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái nhóm booking không hợp lệ", nil)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var group models.BookingGroup
		if err := tx.First(&group, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy nhóm booking", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy nhóm booking", err)
		}

		err := tx.Model(&models.BookingGroup{}).
			Where("id = ?", id).
			Update("status", status).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật trạng thái nhóm", err)
		}

		var bookingIDs []uint
		err = tx.Model(&models.Booking{}).
			Where("booking_group_id = ?", id).
			Pluck("id", &bookingIDs).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy các booking của nhóm", err)
		}
		if len(bookingIDs) == 0 {
			return nil
		}

		err = tx.Model(&models.Booking{}).
			Where("id IN ?", bookingIDs).
			Update("status", status).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật các booking của nhóm", err)
		}

		err = tx.Model(&models.BookingRoom{}).
			Where("booking_id IN ?", bookingIDs).
			Update("status", status).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật các phòng của nhóm", err)
		}
		return nil
	})
}
