package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;uniqueIndex" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Capacity    int     `gorm:"column:capacity" json:"capacity"`
	BedCount    int     `gorm:"column:bed_count" json:"bedCount"`
	BasePrice   float64 `gorm:"column:base_price" json:"basePrice"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
