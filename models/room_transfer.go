package models

import (
	"gorm.io/gorm"
)

// Transfer reasons. ReasonOther requires a free-text note.
const (
	TransferReasonBroken       = "broken"
	TransferReasonUpgrade      = "upgrade"
	TransferReasonGuestRequest = "guest_request"
	TransferReasonDowngrade    = "downgrade"
	TransferReasonOther        = "other"
)

// RoomTransfer records moving a checked-in booking room to a different room,
// with the signed price reconciliation over the remaining nights
// (> 0 additional charge, < 0 refund).
type RoomTransfer struct {
	gorm.Model

	BookingRoomID uint   `gorm:"index;column:booking_room_id" json:"bookingRoomId"`
	FromRoomID    uint   `gorm:"column:from_room_id" json:"fromRoomId"`
	ToRoomID      uint   `gorm:"column:to_room_id" json:"toRoomId"`
	Reason        string `gorm:"size:32" json:"reason"`
	ReasonNote    string `gorm:"type:text" json:"reasonNote,omitempty"`

	RemainingNights int     `gorm:"column:remaining_nights" json:"remainingNights"`
	PriceDifference float64 `gorm:"column:price_difference" json:"priceDifference"`

	EmployeeID uint `gorm:"column:employee_id" json:"employeeId"`

	BookingRoom BookingRoom `gorm:"foreignKey:BookingRoomID;references:ID" json:"-"`
	FromRoom    Room        `gorm:"foreignKey:FromRoomID;references:ID" json:"fromRoom,omitempty"`
	ToRoom      Room        `gorm:"foreignKey:ToRoomID;references:ID" json:"toRoom,omitempty"`
}
