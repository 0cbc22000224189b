package models

import (
	"time"

	"gorm.io/gorm"
)

// A transfer keeps the booking room Checked-In on its new room; the move
// itself is recorded as a RoomTransfer row.
const (
	BookingRoomStatusReserved   = "Reserved"
	BookingRoomStatusCheckedIn  = "Checked-In"
	BookingRoomStatusCheckedOut = "Checked-Out"
)

// BookingRoom is one specific room instance tied to one stay within a
// (possibly multi-room) booking.
type BookingRoom struct {
	gorm.Model
	BookingID uint `gorm:"index;column:booking_id" json:"bookingId"`
	RoomID    uint `gorm:"index;column:room_id" json:"roomId"`

	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`

	Guests        int     `gorm:"column:guests;default:1" json:"guests"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`
	Nights        int     `gorm:"column:nights;default:0" json:"nights"`
	TotalPrice    float64 `gorm:"column:total_price" json:"totalPrice"`
	Status        string  `gorm:"column:status;size:64;index" json:"status"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"-"`
	Room    Room    `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
