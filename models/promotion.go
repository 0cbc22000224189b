package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PromotionTypePercentage  = "PERCENTAGE"
	PromotionTypeFixedAmount = "FIXED_AMOUNT"

	PromotionScopeAll     = "ALL"
	PromotionScopeRoom    = "ROOM"
	PromotionScopeService = "SERVICE"

	PromotionStatusActive   = "active"
	PromotionStatusInactive = "inactive"
)

type Promotion struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Code        string  `gorm:"size:64;uniqueIndex" json:"code"`
	Name        string  `gorm:"size:255" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Type        string  `gorm:"size:32" json:"type"`
	Value       float64 `gorm:"type:decimal(10,2)" json:"value"`
	Scope       string  `gorm:"size:32;default:ALL" json:"scope"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	MaxUsage  int       `gorm:"default:0" json:"maxUsage"`
	Status    string    `gorm:"size:32;default:active" json:"status"`
}

// CustomerPromotion is a claim of a promotion by a customer; one claim per
// (customer, promotion) pair.
type CustomerPromotion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CustomerID  uint       `gorm:"index:idx_customer_promotion,unique" json:"customerId"`
	PromotionID uint       `gorm:"index:idx_customer_promotion,unique" json:"promotionId"`
	ClaimedAt   time.Time  `json:"claimedAt"`
	UsedAt      *time.Time `json:"usedAt,omitempty"`

	Promotion Promotion `gorm:"foreignKey:PromotionID;references:ID" json:"promotion,omitempty"`
}
