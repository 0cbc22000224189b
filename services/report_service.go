package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

// maxReportRangeDays caps a report window; occupancy walks the range
// day by day.
const maxReportRangeDays = 92

type ReportService struct {
	DB    *gorm.DB
	Cache *QueryCache
}

func NewReportService(db *gorm.DB, cache *QueryCache) *ReportService {
	return &ReportService{DB: db, Cache: cache}
}

func normalizeRange(from, to time.Time) (time.Time, time.Time, error) {
	from = utils.MidnightOf(from)
	to = utils.MidnightOf(to)
	if to.Before(from) {
		return from, to, Validationf("end date must not be before start date")
	}
	if int(to.Sub(from).Hours()/24) > maxReportRangeDays {
		return from, to, Validationf("report range cannot exceed %d days", maxReportRangeDays)
	}
	return from, to, nil
}

type RevenueItem struct {
	Date     string  `json:"date"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type RevenueReport struct {
	From          string        `json:"from"`
	To            string        `json:"to"`
	Items         []RevenueItem `json:"items"`
	TotalBookings int           `json:"totalBookings"`
	TotalRevenue  float64       `json:"totalRevenue"`
}

// Revenue aggregates non-cancelled bookings by check-in date.
func (s *ReportService) Revenue(ctx context.Context, from, to time.Time) (*RevenueReport, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("report:revenue:%s:%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	var cached RevenueReport
	if s.Cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	var items []RevenueItem
	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Select("DATE(check_in_date) AS date, COUNT(*) AS bookings, SUM(total_amount) AS revenue").
		Where("status <> ?", models.BookingStatusCancelled).
		Where("check_in_date >= ? AND check_in_date < ?", from, to.AddDate(0, 0, 1)).
		Group("DATE(check_in_date)").
		Order("date ASC").
		Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	report := RevenueReport{
		From:  from.Format("2006-01-02"),
		To:    to.Format("2006-01-02"),
		Items: items,
	}
	for _, it := range items {
		report.TotalBookings += it.Bookings
		report.TotalRevenue += it.Revenue
	}

	s.Cache.Set(ctx, key, report)
	return &report, nil
}

type OccupancyItem struct {
	Date          string  `json:"date"`
	OccupiedRooms int     `json:"occupiedRooms"`
	Rate          float64 `json:"rate"`
}

type OccupancyReport struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	TotalRooms int64           `json:"totalRooms"`
	Items      []OccupancyItem `json:"items"`
}

// Occupancy counts, per day in the range, booking rooms whose stay covers
// that day.
func (s *ReportService) Occupancy(ctx context.Context, from, to time.Time) (*OccupancyReport, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("report:occupancy:%s:%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	var cached OccupancyReport
	if s.Cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	var totalRooms int64
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}

	report := OccupancyReport{
		From:       from.Format("2006-01-02"),
		To:         to.Format("2006-01-02"),
		TotalRooms: totalRooms,
		Items:      []OccupancyItem{},
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		var occupied int64
		if err := s.DB.WithContext(ctx).Model(&models.BookingRoom{}).
			Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id AND bookings.deleted_at IS NULL").
			Where("bookings.status <> ?", models.BookingStatusCancelled).
			Where("booking_rooms.deleted_at IS NULL").
			Where("booking_rooms.check_in_date <= ? AND booking_rooms.check_out_date > ?", day, day).
			Count(&occupied).Error; err != nil {
			return nil, fmt.Errorf("failed to count occupancy for %s: %w", day.Format("2006-01-02"), err)
		}

		item := OccupancyItem{Date: day.Format("2006-01-02"), OccupiedRooms: int(occupied)}
		if totalRooms > 0 {
			item.Rate = float64(occupied) / float64(totalRooms)
		}
		report.Items = append(report.Items, item)
	}

	s.Cache.Set(ctx, key, report)
	return &report, nil
}

type CustomerReportItem struct {
	CustomerID uint    `json:"customerId"`
	FullName   string  `json:"fullName"`
	Bookings   int     `json:"bookings"`
	TotalSpent float64 `json:"totalSpent"`
}

// TopCustomers ranks customers by spend over the range.
func (s *ReportService) TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]CustomerReportItem, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var items []CustomerReportItem
	if err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Select("bookings.customer_id AS customer_id, customers.full_name AS full_name, COUNT(*) AS bookings, SUM(bookings.total_amount) AS total_spent").
		Joins("JOIN customers ON customers.id = bookings.customer_id").
		Where("bookings.status <> ?", models.BookingStatusCancelled).
		Where("bookings.check_in_date >= ? AND bookings.check_in_date < ?", from, to.AddDate(0, 0, 1)).
		Group("bookings.customer_id, customers.full_name").
		Order("total_spent DESC").
		Limit(limit).
		Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate customers: %w", err)
	}
	return items, nil
}

type ServiceReportItem struct {
	HotelServiceID uint    `json:"hotelServiceId"`
	ServiceName    string  `json:"serviceName"`
	Quantity       int     `json:"quantity"`
	Revenue        float64 `json:"revenue"`
}

// ServiceBreakdown aggregates in-stay service charges over the range.
func (s *ReportService) ServiceBreakdown(ctx context.Context, from, to time.Time) ([]ServiceReportItem, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}

	var items []ServiceReportItem
	if err := s.DB.WithContext(ctx).Model(&models.ServiceUsage{}).
		Select("service_usages.hotel_service_id AS hotel_service_id, hotel_services.name AS service_name, SUM(service_usages.quantity) AS quantity, SUM(service_usages.total) AS revenue").
		Joins("JOIN hotel_services ON hotel_services.id = service_usages.hotel_service_id").
		Where("service_usages.used_at >= ? AND service_usages.used_at < ?", from, to.AddDate(0, 0, 1)).
		Group("service_usages.hotel_service_id, hotel_services.name").
		Order("revenue DESC").
		Scan(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate service usage: %w", err)
	}
	return items, nil
}
