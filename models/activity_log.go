package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is an append-only feed of front-desk operations
// (booking created, room transferred, check-in, check-out, ...).
type ActivityLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Action     string         `gorm:"size:64;index" json:"action"`
	EntityType string         `gorm:"size:64" json:"entityType"`
	EntityID   uint           `gorm:"index" json:"entityId"`
	Payload    datatypes.JSON `json:"payload,omitempty"`
	EmployeeID uint           `gorm:"index" json:"employeeId"`
	CreatedAt  time.Time      `json:"created_at"`
}
