package dto

// CustomerRequest là DTO cho request tạo/cập nhật khách hàng
type CustomerRequest struct {
	ID          uint   `json:"id,omitempty"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
}

// CustomerResponse là DTO cho response khách hàng
type CustomerResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
}
