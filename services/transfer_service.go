package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

type TransferService struct {
	DB       *gorm.DB
	Cache    *QueryCache
	Activity *ActivityService
}

func NewTransferService(db *gorm.DB, cache *QueryCache, activity *ActivityService) *TransferService {
	return &TransferService{DB: db, Cache: cache, Activity: activity}
}

type TransferInput struct {
	BookingRoomID uint   `json:"bookingRoomId"`
	NewRoomID     uint   `json:"newRoomId"`
	Reason        string `json:"reason"`
	ReasonNote    string `json:"reasonNote"`
	EmployeeID    uint   `json:"-"`
}

// TransferResult is what the success dialog renders: old/new room numbers
// and types plus the signed price adjustment and its explanatory sentence.
type TransferResult struct {
	TransferID      uint    `json:"transferId"`
	BookingRoomID   uint    `json:"bookingRoomId"`
	GuestName       string  `json:"guestName"`
	OldRoomNumber   string  `json:"oldRoomNumber"`
	OldRoomType     string  `json:"oldRoomType"`
	NewRoomNumber   string  `json:"newRoomNumber"`
	NewRoomType     string  `json:"newRoomType"`
	Reason          string  `json:"reason"`
	ReasonNote      string  `json:"reasonNote,omitempty"`
	RemainingNights int     `json:"remainingNights"`
	PriceDifference float64 `json:"priceDifference"`
	PriceLabel      string  `json:"priceLabel,omitempty"`
}

// ValidateTransferReason checks the reason against the enumerated set and
// requires a free-text note for "other".
func ValidateTransferReason(reason, note string) error {
	switch reason {
	case models.TransferReasonBroken, models.TransferReasonUpgrade,
		models.TransferReasonGuestRequest, models.TransferReasonDowngrade:
		return nil
	case models.TransferReasonOther:
		if strings.TrimSpace(note) == "" {
			return Validationf("a note is required when the reason is \"other\"")
		}
		return nil
	default:
		return Validationf("unknown transfer reason %q", reason)
	}
}

// Transfer moves a checked-in booking room to a currently available room in
// one transaction: the booking room re-points to the new room at its rate,
// totals absorb the signed difference over the remaining nights, the old
// room goes to cleaning and the new one to occupied. On any failure nothing
// is mutated.
func (s *TransferService) Transfer(ctx context.Context, in TransferInput, now time.Time) (*TransferResult, error) {
	if err := ValidateTransferReason(in.Reason, in.ReasonNote); err != nil {
		return nil, err
	}

	var result TransferResult

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var br models.BookingRoom
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Room").
			Preload("Room.RoomType").
			Preload("Booking").
			Preload("Booking.Customer").
			First(&br, in.BookingRoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load booking room %d: %w", in.BookingRoomID, err)
		}
		if br.Status != models.BookingRoomStatusCheckedIn {
			return Conflictf("only checked-in rooms can be transferred")
		}
		if br.RoomID == in.NewRoomID {
			return Validationf("the new room must differ from the current room")
		}
		if br.CheckOutDate == nil {
			return Conflictf("booking room %d has no check-out date", br.ID)
		}

		var newRoom models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("RoomType").
			First(&newRoom, in.NewRoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", in.NewRoomID, err)
		}
		if newRoom.Status != models.RoomStatusAvailable {
			return Conflictf("room %s is no longer available", newRoom.RoomNumber)
		}

		oldRoom := br.Room
		oldRate := br.PricePerNight
		newRate := newRoom.Rate()
		remaining := utils.RemainingNights(*br.CheckOutDate, now)
		diff := utils.PriceDifference(oldRate, newRate, remaining)

		if err := tx.Model(&br).Updates(map[string]interface{}{
			"room_id":         newRoom.ID,
			"price_per_night": newRate,
			"total_price":     br.TotalPrice + diff,
		}).Error; err != nil {
			return fmt.Errorf("failed to move booking room: %w", err)
		}
		if err := tx.Model(&models.Booking{}).Where("id = ?", br.BookingID).
			Update("total_amount", gorm.Expr("total_amount + ?", diff)).Error; err != nil {
			return fmt.Errorf("failed to adjust booking total: %w", err)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", oldRoom.ID).
			Update("status", models.RoomStatusCleaning).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", newRoom.ID).
			Update("status", models.RoomStatusOccupied).Error; err != nil {
			return err
		}

		record := models.RoomTransfer{
			BookingRoomID:   br.ID,
			FromRoomID:      oldRoom.ID,
			ToRoomID:        newRoom.ID,
			Reason:          in.Reason,
			ReasonNote:      strings.TrimSpace(in.ReasonNote),
			RemainingNights: remaining,
			PriceDifference: diff,
			EmployeeID:      in.EmployeeID,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record transfer: %w", err)
		}

		result = TransferResult{
			TransferID:      record.ID,
			BookingRoomID:   br.ID,
			GuestName:       br.Booking.Customer.FullName,
			OldRoomNumber:   oldRoom.RoomNumber,
			OldRoomType:     oldRoom.RoomType.Name,
			NewRoomNumber:   newRoom.RoomNumber,
			NewRoomType:     newRoom.RoomType.Name,
			Reason:          in.Reason,
			ReasonNote:      record.ReasonNote,
			RemainingNights: remaining,
			PriceDifference: diff,
			PriceLabel:      utils.PriceDifferenceLabel(diff),
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Cache.Invalidate(ctx, "availability:", "report:")
	s.Activity.Record(ctx, ActivityRoomTransferred, "booking_room", result.BookingRoomID, in.EmployeeID, map[string]interface{}{
		"fromRoom":        result.OldRoomNumber,
		"toRoom":          result.NewRoomNumber,
		"reason":          in.Reason,
		"priceDifference": result.PriceDifference,
	})
	return &result, nil
}

// History lists past transfers, newest first.
func (s *TransferService) History(ctx context.Context, limit int) ([]models.RoomTransfer, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var transfers []models.RoomTransfer
	if err := s.DB.WithContext(ctx).
		Preload("FromRoom").
		Preload("ToRoom").
		Order("id DESC").
		Limit(limit).
		Find(&transfers).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}
