package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// Activity actions recorded by the other services.
const (
	ActivityBookingCreated  = "booking.created"
	ActivityBookingUpdated  = "booking.updated"
	ActivityCheckIn         = "booking.checked_in"
	ActivityCheckOut        = "booking.checked_out"
	ActivityRoomTransferred = "room.transferred"
	ActivityPromotionClaim  = "promotion.claimed"
	ActivityServiceUsage    = "service.recorded"
)

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

// Record appends one activity entry. Best-effort: a failed write logs a
// warning and never fails the operation that produced it.
func (s *ActivityService) Record(ctx context.Context, action, entityType string, entityID, employeeID uint, payload map[string]interface{}) {
	if s == nil || s.DB == nil {
		return
	}

	var raw datatypes.JSON
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			raw = datatypes.JSON(b)
		}
	}

	entry := models.ActivityLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    raw,
		EmployeeID: employeeID,
	}
	if err := s.DB.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Warn().Err(err).Str("action", action).Msg("failed to record activity")
	}
}

// Recent returns the latest entries, newest first.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var entries []models.ActivityLog
	if err := s.DB.WithContext(ctx).Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}
