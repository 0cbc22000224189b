package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName     string `gorm:"size:255" json:"fullName"`
	Phone        string `gorm:"size:20;index" json:"phone"`
	Email        string `gorm:"size:150;index" json:"email"`
	IdentityCard string `gorm:"column:identity_card;size:50" json:"identityCard"`
	Address      string `gorm:"type:text" json:"address"`

	// Guest-portal credential. Walk-in customers created at the desk get the
	// documented default; never returned in JSON.
	Password string `gorm:"size:255" json:"-"`
}
