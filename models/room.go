package models

import (
	"gorm.io/gorm"
)

// Room statuses. Availability for a date range additionally checks overlapping
// booking rooms; see services.RoomService.Available.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusCleaning    = "cleaning"
)

type Room struct {
	gorm.Model

	// Nullable so an incomplete payload doesn't try to insert FK 0.
	RoomTypeID *uint  `json:"roomTypeId,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`
	Status     string `json:"status" gorm:"size:32;index;default:available"`

	// Per-room override; when zero the room type's base price applies.
	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`
	Description   string  `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType"`
}

// Rate resolves the nightly price, falling back from the per-room override to
// the room type's base price. The single place where the two fields meet.
func (r Room) Rate() float64 {
	if r.PricePerNight > 0 {
		return r.PricePerNight
	}
	return r.RoomType.BasePrice
}
