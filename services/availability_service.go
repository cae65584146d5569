package services

import (
	"time"

	"ktv/constants"
	"ktv/errors"
	"ktv/models"
	"ktv/validator"

	"gorm.io/gorm"
)

// AvailabilityService tìm phòng trống cho một khung giờ yêu cầu
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// AvailableRooms trả về danh sách phòng (sắp theo tên) không có dòng đặt
// phòng pending/confirmed nào chồng lên khoảng [start, end). Hai khoảng
// chạm biên (end == start) không tính là xung đột.
func (s *AvailabilityService) AvailableRooms(start, end time.Time) ([]models.Room, error) {
	if err := validator.ValidateTimeRange(start, end); err != nil {
		return nil, err
	}

	var allRooms []models.Room
	if err := s.db.Order("name ASC").Find(&allRooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách phòng", err)
	}

	conflicting, err := s.conflictingRoomIDs(start, end)
	if err != nil {
		return nil, err
	}

	// Lấy hiệu hai tập thay vì join để không bỏ sót phòng chưa có booking
	available := make([]models.Room, 0, len(allRooms))
	for _, room := range allRooms {
		if _, booked := conflicting[room.ID]; !booked {
			available = append(available, room)
		}
	}

	return available, nil
}

// conflictingRoomIDs trả về tập room_id có dòng đặt phòng đang hoạt động
// chồng lên [start, end)
func (s *AvailabilityService) conflictingRoomIDs(start, end time.Time) (map[uint]struct{}, error) {
	var roomIDs []uint
	err := s.db.Model(&models.BookingRoom{}).
		Where("status IN ?", []string{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
		Where("start_time < ? AND end_time > ?", end, start).
		Distinct().
		Pluck("room_id", &roomIDs).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra phòng đã đặt", err)
	}

	conflicting := make(map[uint]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		conflicting[id] = struct{}{}
	}
	return conflicting, nil
}

// RoomAvailable kiểm tra một phòng cụ thể có trống trong [start, end) không
func (s *AvailabilityService) RoomAvailable(roomID uint, start, end time.Time) (bool, error) {
	if err := validator.ValidateTimeRange(start, end); err != nil {
		return false, err
	}

	var count int64
	err := s.db.Model(&models.BookingRoom{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{constants.BookingStatusPending, constants.BookingStatusConfirmed}).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra phòng đã đặt", err)
	}

	return count == 0, nil
}
