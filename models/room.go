package models

import (
	"fmt"
	"time"

	"ktv/constants"
)

type Room struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;uniqueIndex"`
	Type         string    `json:"type" gorm:"size:20;default:standard"` // standard, vip, party
	PricePerHour float64   `json:"pricePerHour"`
	Capacity     int       `json:"capacity"`
	Description  string    `json:"description"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	BookingRooms []BookingRoom `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateType() error {
	switch r.Type {
	case constants.RoomTypeStandard, constants.RoomTypeVIP, constants.RoomTypeParty:
		return nil
	}
	return fmt.Errorf("invalid room type: %s", r.Type)
}
