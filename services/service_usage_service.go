package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

type ServiceUsageService struct {
	DB       *gorm.DB
	Activity *ActivityService
}

func NewServiceUsageService(db *gorm.DB, activity *ActivityService) *ServiceUsageService {
	return &ServiceUsageService{DB: db, Activity: activity}
}

// Catalog lists the chargeable hotel services.
func (s *ServiceUsageService) Catalog(ctx context.Context) ([]models.HotelService, error) {
	var services []models.HotelService
	if err := s.DB.WithContext(ctx).Order("name ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotel services: %w", err)
	}
	return services, nil
}

type ServiceUsageInput struct {
	BookingRoomID  uint `json:"bookingRoomId"`
	HotelServiceID uint `json:"hotelServiceId"`
	Quantity       int  `json:"quantity"`
	EmployeeID     uint `json:"-"`
}

// Record charges a service use to a checked-in booking room at the catalog
// price.
func (s *ServiceUsageService) Record(ctx context.Context, in ServiceUsageInput, now time.Time) (*models.ServiceUsage, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	var br models.BookingRoom
	if err := s.DB.WithContext(ctx).First(&br, in.BookingRoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking room %d: %w", in.BookingRoomID, err)
	}
	if br.Status != models.BookingRoomStatusCheckedIn {
		return nil, Conflictf("services can only be charged to checked-in rooms")
	}

	var svc models.HotelService
	if err := s.DB.WithContext(ctx).First(&svc, in.HotelServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hotel service %d: %w", in.HotelServiceID, err)
	}

	usage := models.ServiceUsage{
		BookingRoomID:  in.BookingRoomID,
		HotelServiceID: in.HotelServiceID,
		Quantity:       in.Quantity,
		UnitPrice:      svc.Price,
		Total:          svc.Price * float64(in.Quantity),
		UsedAt:         now,
	}
	if err := s.DB.WithContext(ctx).Create(&usage).Error; err != nil {
		return nil, fmt.Errorf("failed to record service usage: %w", err)
	}

	usage.HotelService = svc
	s.Activity.Record(ctx, ActivityServiceUsage, "booking_room", in.BookingRoomID, in.EmployeeID, map[string]interface{}{
		"service":  svc.Name,
		"quantity": in.Quantity,
		"total":    usage.Total,
	})
	return &usage, nil
}

// ForBooking lists the charges accumulated by a booking's rooms.
func (s *ServiceUsageService) ForBooking(ctx context.Context, bookingID uint) ([]models.ServiceUsage, error) {
	var usages []models.ServiceUsage
	if err := s.DB.WithContext(ctx).
		Preload("HotelService").
		Joins("JOIN booking_rooms ON booking_rooms.id = service_usages.booking_room_id").
		Where("booking_rooms.booking_id = ?", bookingID).
		Order("service_usages.used_at DESC").
		Find(&usages).Error; err != nil {
		return nil, fmt.Errorf("failed to list service usage: %w", err)
	}
	return usages, nil
}
