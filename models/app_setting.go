package models

import (
	"time"

	"gorm.io/datatypes"
)

// AppSetting is a JSON value addressed by key, e.g. "deposit_percentage"
// stored as {"percentage": 30}.
type AppSetting struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Key       string         `gorm:"column:setting_key;size:100;uniqueIndex" json:"key"`
	Value     datatypes.JSON `gorm:"column:setting_value" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
