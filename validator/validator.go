package validator

import (
	"regexp"
	"time"

	"ktv/constants"
	"ktv/dto"
	"ktv/errors"
	"ktv/models"
)

// ParseTimestamp parse chuỗi thời gian RFC3339 thành time.Time
func ParseTimestamp(value, field string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, field+" không được để trống", nil)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, field+" không hợp lệ, định dạng RFC3339", err)
	}
	return t, nil
}

// ValidateTimeRange kiểm tra khoảng thời gian [start, end) hợp lệ
func ValidateTimeRange(start, end time.Time) error {
	if !start.Before(end) {
		return errors.NewAppError(errors.ErrCodeInvalidTimeRange, "Thời gian bắt đầu phải nhỏ hơn thời gian kết thúc", nil)
	}
	return nil
}

// ValidateBookingRequest kiểm tra dữ liệu tạo booking
func ValidateBookingRequest(req *dto.CreateBookingRequest) error {
	if req.CustomerID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID khách hàng không được để trống", nil)
	}
	if len(req.Rooms) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Booking phải có ít nhất một phòng", nil)
	}
	for _, room := range req.Rooms {
		if room.RoomID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
		}
		if room.PricePerHour != nil && *room.PricePerHour < 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", nil)
		}
	}
	if req.TotalAmount != nil && *req.TotalAmount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Tổng tiền không được âm", nil)
	}
	return nil
}

// ValidatePaymentMethod kiểm tra phương thức thanh toán hợp lệ
func ValidatePaymentMethod(method string) error {
	switch method {
	case constants.PaymentMethodCash, constants.PaymentMethodCard,
		constants.PaymentMethodTransfer, constants.PaymentMethodEWallet:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidFormat, "Phương thức thanh toán không hợp lệ", nil)
}

// ValidatePaymentRequest kiểm tra dữ liệu thanh toán đơn lẻ
func ValidatePaymentRequest(req *dto.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền thanh toán phải lớn hơn 0", nil)
	}
	if req.BookingID == nil && req.BookingGroupID == nil && req.BookingRoomID == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thanh toán phải gắn với booking, nhóm booking hoặc phòng", nil)
	}
	return ValidatePaymentMethod(req.PaymentMethod)
}

// ValidateMultiplePaymentRequest kiểm tra dữ liệu thanh toán theo lô
func ValidateMultiplePaymentRequest(req *dto.MultiplePaymentRequest) error {
	if len(req.Items) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Danh sách thanh toán không được để trống", nil)
	}
	for _, item := range req.Items {
		if item.BookingID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "ID booking không được để trống", nil)
		}
		if item.Amount <= 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền thanh toán phải lớn hơn 0", nil)
		}
	}
	return ValidatePaymentMethod(req.PaymentMethod)
}

// ValidateRoom kiểm tra thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}
	if room.PricePerHour < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", nil)
	}
	if room.Capacity < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Sức chứa không được âm", nil)
	}
	if room.Type != "" {
		if err := room.ValidateType(); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Loại phòng không hợp lệ", err)
		}
	}
	return nil
}

// ValidateCustomer kiểm tra thông tin khách hàng
func ValidateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if customer.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}
	if !isValidPhone(customer.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số điện thoại khách không hợp lệ", nil)
	}
	if customer.Email != "" && !isValidEmail(customer.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email khách không hợp lệ", nil)
	}
	return nil
}

// ValidateUser kiểm tra thông tin tài khoản nhân viên
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email không hợp lệ", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	if user.Role != constants.RoleAdmin && user.Role != constants.RoleStaff {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
