package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

type BookingService struct {
	DB       *gorm.DB
	Cache    *QueryCache
	Activity *ActivityService
	MaxRooms int
}

func NewBookingService(db *gorm.DB, cache *QueryCache, activity *ActivityService) *BookingService {
	return &BookingService{
		DB:       db,
		Cache:    cache,
		Activity: activity,
		MaxRooms: utils.EnvIntOrDefault("MAX_ROOMS_PER_BOOKING", 5),
	}
}

// RoomSelection is one room of a create request. PricePerNight zero means
// "use the room's effective rate".
type RoomSelection struct {
	RoomID        uint    `json:"roomId"`
	Guests        int     `json:"guests"`
	PricePerNight float64 `json:"pricePerNight,omitempty"`
}

type CreateBookingInput struct {
	CustomerID       uint            `json:"customerId"`
	CheckInDate      time.Time       `json:"checkInDate"`
	CheckOutDate     time.Time       `json:"checkOutDate"`
	Rooms            []RoomSelection `json:"rooms"`
	TotalGuests      int             `json:"totalGuests"`
	DepositAmount    float64         `json:"depositAmount"`
	DepositMethod    string          `json:"depositMethod"`
	DepositConfirmed bool            `json:"depositConfirmed"`
	Notes            string          `json:"notes"`
	EmployeeID       uint            `json:"-"`
}

// CreateBooking persists a multi-room booking in one transaction: the
// booking row, one booking room per selection and nothing else — room status
// only changes at check-in, availability is decided by overlap. Every room is
// re-verified inside the transaction so a room grabbed by a parallel booking
// fails the whole request with a conflict.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if len(in.Rooms) == 0 {
		return nil, Validationf("select at least one room")
	}
	if len(in.Rooms) > s.MaxRooms {
		return nil, Validationf("cannot book more than %d rooms at once", s.MaxRooms)
	}

	checkIn := utils.MidnightOf(in.CheckInDate)
	checkOut := utils.MidnightOf(in.CheckOutDate)
	if !checkOut.After(checkIn) {
		return nil, Validationf("check-out date must be after check-in date")
	}

	seen := map[uint]bool{}
	for _, sel := range in.Rooms {
		if sel.RoomID == 0 {
			return nil, Validationf("invalid room id 0")
		}
		if seen[sel.RoomID] {
			return nil, Validationf("room %d is selected twice", sel.RoomID)
		}
		seen[sel.RoomID] = true
	}

	var cust models.Customer
	if err := s.DB.WithContext(ctx).First(&cust, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Validationf("customer %d does not exist", in.CustomerID)
		}
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}

	nights := utils.Nights(checkIn, checkOut)
	var bookingID uint

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking := models.Booking{
			CustomerID:       in.CustomerID,
			ReferenceCode:    newReferenceCode(),
			Status:           models.BookingStatusConfirmed,
			CheckInDate:      &checkIn,
			CheckOutDate:     &checkOut,
			Nights:           nights,
			NumberOfGuests:   in.TotalGuests,
			DepositAmount:    in.DepositAmount,
			DepositMethod:    in.DepositMethod,
			DepositConfirmed: in.DepositConfirmed,
			Notes:            in.Notes,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID

		var totalAmount float64
		var totalGuests int
		for _, sel := range in.Rooms {
			var room models.Room
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Preload("RoomType").
				First(&room, sel.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return Validationf("room %d does not exist", sel.RoomID)
				}
				return fmt.Errorf("failed to load room %d: %w", sel.RoomID, err)
			}
			if room.Status != models.RoomStatusAvailable {
				return Conflictf("room %s is not available", room.RoomNumber)
			}

			var overlaps int64
			if err := tx.Model(&models.BookingRoom{}).
				Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id AND bookings.deleted_at IS NULL").
				Where("booking_rooms.room_id = ? AND booking_rooms.deleted_at IS NULL", sel.RoomID).
				Where("bookings.status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
				Where("booking_rooms.status IN ?", []string{models.BookingRoomStatusReserved, models.BookingRoomStatusCheckedIn}).
				Where("booking_rooms.check_in_date < ? AND booking_rooms.check_out_date > ?", checkOut, checkIn).
				Count(&overlaps).Error; err != nil {
				return fmt.Errorf("failed to check overlaps for room %d: %w", sel.RoomID, err)
			}
			if overlaps > 0 {
				return Conflictf("room %s is no longer available for the selected dates", room.RoomNumber)
			}

			rate := sel.PricePerNight
			if rate <= 0 {
				rate = room.Rate()
			}
			guests := sel.Guests
			if guests <= 0 {
				guests = 1
			}

			br := models.BookingRoom{
				BookingID:     booking.ID,
				RoomID:        sel.RoomID,
				CheckInDate:   &checkIn,
				CheckOutDate:  &checkOut,
				Guests:        guests,
				PricePerNight: rate,
				Nights:        nights,
				TotalPrice:    utils.RoomTotal(rate, nights),
				Status:        models.BookingRoomStatusReserved,
			}
			if err := tx.Create(&br).Error; err != nil {
				return fmt.Errorf("failed to create booking room for room %d: %w", sel.RoomID, err)
			}

			totalAmount += br.TotalPrice
			totalGuests += guests
		}

		updates := map[string]interface{}{"total_amount": totalAmount}
		if in.TotalGuests <= 0 {
			updates["number_of_guests"] = totalGuests
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to finalize booking totals: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Cache.Invalidate(ctx, "availability:", "report:")
	s.Activity.Record(ctx, ActivityBookingCreated, "booking", bookingID, in.EmployeeID, map[string]interface{}{
		"customerId": in.CustomerID,
		"rooms":      len(in.Rooms),
	})

	return s.Details(ctx, bookingID)
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Details loads a booking with customer, rooms and room types.
func (s *BookingService) Details(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).
		Preload("Customer").
		Preload("Rooms").
		Preload("Rooms.Room").
		Preload("Rooms.Room.RoomType").
		First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}
	if booking.Rooms == nil {
		booking.Rooms = []models.BookingRoom{}
	}
	return &booking, nil
}

type BookingListFilter struct {
	Status   string
	From     *time.Time
	To       *time.Time
	Search   string // customer name or reference code
	Page     int
	PageSize int
}

// List returns bookings with relations, newest first.
func (s *BookingService) List(ctx context.Context, f BookingListFilter) ([]models.Booking, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}

	q := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Joins("JOIN customers ON customers.id = bookings.customer_id")
	if f.Status != "" {
		q = q.Where("bookings.status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("bookings.check_in_date >= ?", utils.MidnightOf(*f.From))
	}
	if f.To != nil {
		q = q.Where("bookings.check_out_date <= ?", utils.MidnightOf(*f.To))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(customers.full_name) LIKE ? OR LOWER(bookings.reference_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var bookings []models.Booking
	if err := q.
		Preload("Customer").
		Preload("Rooms").
		Preload("Rooms.Room").
		Preload("Rooms.Room.RoomType").
		Order("bookings.created_at DESC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&bookings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	for i := range bookings {
		if bookings[i].Rooms == nil {
			bookings[i].Rooms = []models.BookingRoom{}
		}
	}
	return bookings, total, nil
}

type UpdateBookingInput struct {
	CheckInDate    *time.Time `json:"checkInDate"`
	CheckOutDate   *time.Time `json:"checkOutDate"`
	NumberOfGuests *int       `json:"numberOfGuests"`
	Status         *string    `json:"status"`
	Notes          *string    `json:"notes"`
	EmployeeID     uint       `json:"-"`
}

// Update applies a partial update. Date changes are only allowed before
// check-in and recompute every room's nights and totals.
func (s *BookingService) Update(ctx context.Context, id uint, in UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.Details(ctx, id)
	if err != nil {
		return nil, err
	}

	datesChange := in.CheckInDate != nil || in.CheckOutDate != nil
	if datesChange && booking.Status != models.BookingStatusConfirmed {
		return nil, Conflictf("dates can only change before check-in")
	}

	checkIn := booking.CheckInDate
	checkOut := booking.CheckOutDate
	if in.CheckInDate != nil {
		t := utils.MidnightOf(*in.CheckInDate)
		checkIn = &t
	}
	if in.CheckOutDate != nil {
		t := utils.MidnightOf(*in.CheckOutDate)
		checkOut = &t
	}
	if checkIn != nil && checkOut != nil && !checkOut.After(*checkIn) {
		return nil, Validationf("check-out date must be after check-in date")
	}

	if in.Status != nil {
		switch *in.Status {
		case models.BookingStatusConfirmed, models.BookingStatusCancelled:
		default:
			return nil, Validationf("status %q cannot be set directly, use check-in/check-out", *in.Status)
		}
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if in.NumberOfGuests != nil {
			updates["number_of_guests"] = *in.NumberOfGuests
		}
		if in.Status != nil {
			updates["status"] = *in.Status
		}
		if in.Notes != nil {
			updates["notes"] = *in.Notes
		}

		if datesChange {
			nights := utils.Nights(*checkIn, *checkOut)
			updates["check_in_date"] = *checkIn
			updates["check_out_date"] = *checkOut
			updates["nights"] = nights

			var totalAmount float64
			for _, br := range booking.Rooms {
				total := utils.RoomTotal(br.PricePerNight, nights)
				if err := tx.Model(&models.BookingRoom{}).Where("id = ?", br.ID).Updates(map[string]interface{}{
					"check_in_date":  *checkIn,
					"check_out_date": *checkOut,
					"nights":         nights,
					"total_price":    total,
				}).Error; err != nil {
					return fmt.Errorf("failed to update booking room %d: %w", br.ID, err)
				}
				totalAmount += total
			}
			updates["total_amount"] = totalAmount
		}

		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&models.Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking %d: %w", id, err)
		}

		if in.Status != nil && *in.Status == models.BookingStatusCancelled {
			if err := tx.Model(&models.BookingRoom{}).Where("booking_id = ?", id).
				Update("status", models.BookingRoomStatusCheckedOut).Error; err != nil {
				return fmt.Errorf("failed to release booking rooms: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Cache.Invalidate(ctx, "availability:", "report:")
	s.Activity.Record(ctx, ActivityBookingUpdated, "booking", id, in.EmployeeID, nil)
	return s.Details(ctx, id)
}

// CheckIn transitions a confirmed booking to Checked-In and its rooms to
// occupied.
func (s *BookingService) CheckIn(ctx context.Context, id, employeeID uint) (*models.Booking, error) {
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Rooms").First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusConfirmed {
			return Conflictf("booking is %s and cannot be checked in", booking.Status)
		}

		now := time.Now().UTC()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":        models.BookingStatusCheckedIn,
			"checked_in_at": now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.BookingRoom{}).Where("booking_id = ?", id).
			Update("status", models.BookingRoomStatusCheckedIn).Error; err != nil {
			return err
		}
		for _, br := range booking.Rooms {
			if err := tx.Model(&models.Room{}).Where("id = ?", br.RoomID).
				Update("status", models.RoomStatusOccupied).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Cache.Invalidate(ctx, "availability:", "report:")
	s.Activity.Record(ctx, ActivityCheckIn, "booking", id, employeeID, nil)
	return s.Details(ctx, id)
}

// Checkout transitions a checked-in booking to Checked-Out and its rooms to
// cleaning until housekeeping flips them back to available.
func (s *BookingService) Checkout(ctx context.Context, id, employeeID uint) (*models.Booking, error) {
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Rooms").First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if booking.Status != models.BookingStatusCheckedIn {
			return Conflictf("booking is %s and cannot be checked out", booking.Status)
		}

		now := time.Now().UTC()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":         models.BookingStatusCheckedOut,
			"checked_out_at": now,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.BookingRoom{}).
			Where("booking_id = ? AND status = ?", id, models.BookingRoomStatusCheckedIn).
			Update("status", models.BookingRoomStatusCheckedOut).Error; err != nil {
			return err
		}
		for _, br := range booking.Rooms {
			if err := tx.Model(&models.Room{}).Where("id = ?", br.RoomID).
				Update("status", models.RoomStatusCleaning).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Cache.Invalidate(ctx, "availability:", "report:")
	s.Activity.Record(ctx, ActivityCheckOut, "booking", id, employeeID, nil)
	return s.Details(ctx, id)
}

// Delete soft-deletes a booking that never reached check-in.
func (s *BookingService) Delete(ctx context.Context, id uint) error {
	booking, err := s.Details(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status == models.BookingStatusCheckedIn {
		return Conflictf("checked-in bookings cannot be deleted")
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&models.BookingRoom{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, id).Error
	})
	if txErr != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, txErr)
	}

	s.Cache.Invalidate(ctx, "availability:", "report:")
	return nil
}

// CheckedInRoom is one row of the transfer page's "from" list.
type CheckedInRoom struct {
	BookingRoomID   uint       `json:"bookingRoomId"`
	BookingID       uint       `json:"bookingId"`
	ReferenceCode   string     `json:"referenceCode"`
	RoomID          uint       `json:"roomId"`
	RoomNumber      string     `json:"roomNumber"`
	RoomTypeName    string     `json:"roomTypeName"`
	GuestName       string     `json:"guestName"`
	CheckInDate     *time.Time `json:"checkInDate"`
	CheckOutDate    *time.Time `json:"checkOutDate"`
	PricePerNight   float64    `json:"pricePerNight"`
	RemainingNights int        `json:"remainingNights"`
}

// CheckedInRooms lists currently checked-in booking rooms. Remaining nights
// is derived from now, injected by the caller, never stored.
func (s *BookingService) CheckedInRooms(ctx context.Context, now time.Time) ([]CheckedInRoom, error) {
	var rows []models.BookingRoom
	if err := s.DB.WithContext(ctx).
		Preload("Room").
		Preload("Room.RoomType").
		Preload("Booking").
		Preload("Booking.Customer").
		Where("status = ?", models.BookingRoomStatusCheckedIn).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list checked-in rooms: %w", err)
	}

	out := make([]CheckedInRoom, 0, len(rows))
	for _, br := range rows {
		item := CheckedInRoom{
			BookingRoomID: br.ID,
			BookingID:     br.BookingID,
			ReferenceCode: br.Booking.ReferenceCode,
			RoomID:        br.RoomID,
			RoomNumber:    br.Room.RoomNumber,
			RoomTypeName:  br.Room.RoomType.Name,
			GuestName:     br.Booking.Customer.FullName,
			CheckInDate:   br.CheckInDate,
			CheckOutDate:  br.CheckOutDate,
			PricePerNight: br.PricePerNight,
		}
		if br.CheckOutDate != nil {
			item.RemainingNights = utils.RemainingNights(*br.CheckOutDate, now)
		}
		out = append(out, item)
	}
	return out, nil
}
