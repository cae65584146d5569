package services

import (
	"ktv/errors"
	"ktv/models"
	"ktv/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService quản lý tài khoản nhân viên: đăng ký và đăng nhập
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register tạo tài khoản nhân viên mới, email phải chưa tồn tại
func (s *AuthService) Register(user *models.User) error {
	if err := validator.ValidateUser(user); err != nil {
		return err
	}

	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra email", err)
	}
	if count > 0 {
		return errors.NewAppError(errors.ErrCodeConflict, "Email đã được sử dụng", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Không thể mã hóa mật khẩu", err)
	}
	user.Password = string(hashed)

	if err := s.db.Create(user).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo tài khoản", err)
	}
	return nil
}

// Login xác thực email/mật khẩu và trả về token cùng thông tin tài khoản
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", err)
		}
		return "", nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể kiểm tra tài khoản", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Email hoặc mật khẩu không đúng", err)
	}

	token, err := CreateToken(&user)
	if err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Không thể tạo token", err)
	}
	return token, &user, nil
}
