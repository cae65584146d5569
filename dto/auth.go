package dto

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest là DTO cho request đăng ký tài khoản nhân viên
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Role        int    `json:"role"`
}

// LoginResponse là DTO cho response đăng nhập
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse là DTO cho thông tin tài khoản
type UserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        int    `json:"role"`
}
