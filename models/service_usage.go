package models

import (
	"time"
)

// ServiceUsage charges one hotel service use to a checked-in booking room.
type ServiceUsage struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BookingRoomID  uint      `gorm:"index;column:booking_room_id" json:"bookingRoomId"`
	HotelServiceID uint      `gorm:"index;column:hotel_service_id" json:"hotelServiceId"`
	Quantity       int       `gorm:"default:1" json:"quantity"`
	UnitPrice      float64   `gorm:"column:unit_price" json:"unitPrice"`
	Total          float64   `json:"total"`
	UsedAt         time.Time `json:"usedAt"`
	CreatedAt      time.Time `json:"created_at"`

	HotelService HotelService `gorm:"foreignKey:HotelServiceID;references:ID" json:"service,omitempty"`
	BookingRoom  BookingRoom  `gorm:"foreignKey:BookingRoomID;references:ID" json:"-"`
}
