package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

type PromotionService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewPromotionService(db *gorm.DB, activity *ActivityService) *PromotionService {
	return &PromotionService{DB: db, Activity: activity}
}

type PromotionInput struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	Scope       string    `json:"scope"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	MaxUsage    int       `json:"maxUsage"`
	Status      string    `json:"status"`
}

// ValidatePromotionInput enforces the form rules before anything is
// persisted, notably that a percentage value never exceeds 100.
func ValidatePromotionInput(in PromotionInput) error {
	if utils.IsEmpty(in.Code) {
		return Validationf("promotion code is required")
	}
	if utils.IsEmpty(in.Name) {
		return Validationf("promotion name is required")
	}
	switch in.Type {
	case models.PromotionTypePercentage:
		if in.Value <= 0 || in.Value > 100 {
			return Validationf("percentage value must be between 1 and 100")
		}
	case models.PromotionTypeFixedAmount:
		if in.Value <= 0 {
			return Validationf("fixed amount must be positive")
		}
	default:
		return Validationf("unknown promotion type %q", in.Type)
	}
	switch in.Scope {
	case models.PromotionScopeAll, models.PromotionScopeRoom, models.PromotionScopeService:
	default:
		return Validationf("unknown promotion scope %q", in.Scope)
	}
	if !in.EndDate.After(in.StartDate) {
		return Validationf("end date must be after start date")
	}
	return nil
}

// List returns promotions, optionally only active ones.
func (s *PromotionService) List(ctx context.Context, status string) ([]models.Promotion, error) {
	q := s.DB.WithContext(ctx).Model(&models.Promotion{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var promos []models.Promotion
	if err := q.Order("created_at DESC").Find(&promos).Error; err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promos, nil
}

// ByID loads one promotion.
func (s *PromotionService) ByID(ctx context.Context, id uint) (*models.Promotion, error) {
	var promo models.Promotion
	if err := s.DB.WithContext(ctx).First(&promo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load promotion %d: %w", id, err)
	}
	return &promo, nil
}

// Create validates and persists a promotion.
func (s *PromotionService) Create(ctx context.Context, in PromotionInput) (*models.Promotion, error) {
	if err := ValidatePromotionInput(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = models.PromotionStatusActive
	}

	promo := models.Promotion{
		Code:        strings.ToUpper(strings.TrimSpace(in.Code)),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Type:        in.Type,
		Value:       in.Value,
		Scope:       in.Scope,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		MaxUsage:    in.MaxUsage,
		Status:      status,
	}
	if err := s.DB.WithContext(ctx).Create(&promo).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, Conflictf("promotion code %q already exists", promo.Code)
		}
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}
	return &promo, nil
}

// Update validates and replaces a promotion's editable fields.
func (s *PromotionService) Update(ctx context.Context, id uint, in PromotionInput) (*models.Promotion, error) {
	if err := ValidatePromotionInput(in); err != nil {
		return nil, err
	}

	promo, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"code":        strings.ToUpper(strings.TrimSpace(in.Code)),
		"name":        strings.TrimSpace(in.Name),
		"description": in.Description,
		"type":        in.Type,
		"value":       in.Value,
		"scope":       in.Scope,
		"start_date":  in.StartDate,
		"end_date":    in.EndDate,
		"max_usage":   in.MaxUsage,
	}
	if in.Status != "" {
		updates["status"] = in.Status
	}
	if err := s.DB.WithContext(ctx).Model(promo).Updates(updates).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, Conflictf("promotion code already exists")
		}
		return nil, fmt.Errorf("failed to update promotion %d: %w", id, err)
	}
	return s.ByID(ctx, id)
}

// Claim records a claim of the promotion code for a customer. One claim per
// customer; the code must be active and inside its validity window, and the
// usage cap must not be exhausted.
func (s *PromotionService) Claim(ctx context.Context, code string, customerID uint, now time.Time) (*models.CustomerPromotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, Validationf("promotion code is required")
	}

	var promo models.Promotion
	if err := s.DB.WithContext(ctx).Where("code = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up promotion: %w", err)
	}

	if promo.Status != models.PromotionStatusActive {
		return nil, Conflictf("promotion %s is not active", promo.Code)
	}
	if now.Before(promo.StartDate) || now.After(promo.EndDate) {
		return nil, Conflictf("promotion %s is outside its validity period", promo.Code)
	}
	if promo.MaxUsage > 0 {
		var claims int64
		if err := s.DB.WithContext(ctx).Model(&models.CustomerPromotion{}).
			Where("promotion_id = ?", promo.ID).Count(&claims).Error; err != nil {
			return nil, fmt.Errorf("failed to count claims: %w", err)
		}
		if claims >= int64(promo.MaxUsage) {
			return nil, Conflictf("promotion %s has been fully claimed", promo.Code)
		}
	}

	claim := models.CustomerPromotion{
		CustomerID:  customerID,
		PromotionID: promo.ID,
		ClaimedAt:   now,
	}
	if err := s.DB.WithContext(ctx).Create(&claim).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, Conflictf("promotion %s was already claimed by this customer", promo.Code)
		}
		return nil, fmt.Errorf("failed to claim promotion: %w", err)
	}

	claim.Promotion = promo
	s.Activity.Record(ctx, ActivityPromotionClaim, "promotion", promo.ID, 0, map[string]interface{}{
		"customerId": customerID,
		"code":       promo.Code,
	})
	return &claim, nil
}

// ClaimsForCustomer lists a customer's claimed promotions.
func (s *PromotionService) ClaimsForCustomer(ctx context.Context, customerID uint) ([]models.CustomerPromotion, error) {
	var claims []models.CustomerPromotion
	if err := s.DB.WithContext(ctx).Preload("Promotion").
		Where("customer_id = ?", customerID).
		Order("claimed_at DESC").
		Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}

// Delete removes a promotion and its claims.
func (s *PromotionService) Delete(ctx context.Context, id uint) error {
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_id = ?", id).Delete(&models.CustomerPromotion{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Promotion{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete promotion %d: %w", id, txErr)
	}
	return nil
}
