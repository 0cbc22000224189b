package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// DefaultDepositPercentage applies when the setting is absent or malformed.
const DefaultDepositPercentage = 30

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the setting stored under key.
func (s *SettingsService) Get(ctx context.Context, key string) (*models.AppSetting, error) {
	var setting models.AppSetting
	if err := s.DB.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load setting %s: %w", key, err)
	}
	return &setting, nil
}

// Put upserts the JSON value stored under key.
func (s *SettingsService) Put(ctx context.Context, key string, value json.RawMessage) (*models.AppSetting, error) {
	if !json.Valid(value) {
		return nil, Validationf("setting value must be valid JSON")
	}

	var setting models.AppSetting
	err := s.DB.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.AppSetting{Key: key, Value: datatypes.JSON(value)}
		if err := s.DB.WithContext(ctx).Create(&setting).Error; err != nil {
			return nil, fmt.Errorf("failed to create setting %s: %w", key, err)
		}
		return &setting, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load setting %s: %w", key, err)
	}

	if err := s.DB.WithContext(ctx).Model(&setting).Update("setting_value", datatypes.JSON(value)).Error; err != nil {
		return nil, fmt.Errorf("failed to update setting %s: %w", key, err)
	}
	setting.Value = datatypes.JSON(value)
	return &setting, nil
}

// DepositPercentage reads deposit_percentage as {"percentage": n}, falling
// back to the default when the setting is missing or unreadable.
func (s *SettingsService) DepositPercentage(ctx context.Context) float64 {
	setting, err := s.Get(ctx, "deposit_percentage")
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Msg("deposit_percentage lookup failed, using default")
		}
		return DefaultDepositPercentage
	}

	var payload struct {
		Percentage float64 `json:"percentage"`
	}
	if err := json.Unmarshal(setting.Value, &payload); err != nil || payload.Percentage <= 0 {
		return DefaultDepositPercentage
	}
	return payload.Percentage
}
