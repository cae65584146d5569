package response

import (
	"net/http"

	apperrors "ktv/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Meta       interface{} `json:"meta,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Thành công",
		Data:    data,
	})
}

// SuccessWithMeta trả về response thành công kèm metadata
func SuccessWithMeta(c *gin.Context, data interface{}, meta interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Thành công",
		Data:    data,
		Meta:    meta,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Thành công",
		Data:    data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Created trả về response tạo mới thành công
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Thành công",
		Data:    data,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
		Error:   string(apperrors.ErrCodeValidation),
	})
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
		Error:   string(apperrors.ErrCodeValidation),
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: "Không tìm thấy",
		Error:   string(apperrors.ErrCodeDBNotFound),
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Xung đột dữ liệu"
	}
	c.JSON(http.StatusConflict, Response{
		Success: false,
		Message: message,
		Error:   string(apperrors.ErrCodeConflict),
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: "Lỗi server",
		Error:   string(apperrors.ErrCodeDBError),
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Success: false,
		Message: "Chưa xác thực",
		Error:   string(apperrors.ErrCodeUnauthorized),
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Success: false,
		Message: "Không có quyền truy cập",
		Error:   string(apperrors.ErrCodeInvalidRole),
	})
}

// FromError ánh xạ AppError sang HTTP status tương ứng
func FromError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidAmount,
		apperrors.ErrCodeInvalidTimeRange, apperrors.ErrCodeInvalidStatus,
		apperrors.ErrCodeInvalidOperation:
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: appErr.Message,
			Error:   string(appErr.Code),
		})
	case apperrors.ErrCodeDBNotFound:
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Message: appErr.Message,
			Error:   string(appErr.Code),
		})
	case apperrors.ErrCodeConflict:
		c.JSON(http.StatusConflict, Response{
			Success: false,
			Message: appErr.Message,
			Error:   string(appErr.Code),
		})
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken:
		Unauthorized(c)
	case apperrors.ErrCodeInvalidRole:
		Forbidden(c)
	default:
		ServerError(c)
	}
}
