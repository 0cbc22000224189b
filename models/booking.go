package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCheckedIn  = "Checked-In"
	BookingStatusCheckedOut = "Checked-Out"
	BookingStatusCancelled  = "Cancelled"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CustomerID    uint   `gorm:"index;column:customer_id" json:"customerId"`
	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	Status        string `gorm:"column:status;size:64;index" json:"status"`

	// Stay dates, normalized to midnight at the service boundary.
	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`

	// Actual transition times.
	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`

	Nights         int `gorm:"column:nights" json:"nights"`
	NumberOfGuests int `gorm:"column:number_of_guests" json:"numberOfGuests"`

	TotalAmount      float64 `gorm:"column:total_amount" json:"totalAmount"`
	DepositAmount    float64 `gorm:"column:deposit_amount" json:"depositAmount"`
	DepositMethod    string  `gorm:"column:deposit_method;size:32" json:"depositMethod,omitempty"`
	DepositConfirmed bool    `gorm:"column:deposit_confirmed;default:false" json:"depositConfirmed"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	Customer Customer      `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Rooms    []BookingRoom `gorm:"foreignKey:BookingID" json:"rooms"`
}
