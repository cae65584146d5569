package controllers

import (
	"ktv/dto"
	"ktv/models"
	"ktv/response"

	"github.com/gin-gonic/gin"
)

// Register tạo tài khoản nhân viên mới
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	}
	if err := authService().Register(&user); err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	})
}

// Login xác thực và trả về token
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(c, "Email và mật khẩu không được để trống")
		return
	}

	token, user, err := authService().Login(req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Role:        user.Role,
		},
	})
}
