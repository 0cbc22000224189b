package models

import (
	"time"

	"gorm.io/gorm"
)

// HotelService is a catalog entry for chargeable in-stay services
// (laundry, minibar, spa, ...).
type HotelService struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `json:"price"`
	Unit        string         `gorm:"size:32" json:"unit"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
