package models

import "time"

// User là tài khoản nhân viên/quản trị của quán
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100"`
	Email       string    `json:"email" gorm:"size:100;uniqueIndex"`
	Password    string    `json:"-" gorm:"size:100"`
	PhoneNumber string    `json:"phoneNumber" gorm:"size:15"`
	Role        int       `json:"role" gorm:"default:2"` // 1: admin, 2: nhân viên
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
