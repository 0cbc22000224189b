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

type RoomService struct {
	DB    *gorm.DB
	Cache *QueryCache
}

func NewRoomService(db *gorm.DB, cache *QueryCache) *RoomService {
	return &RoomService{DB: db, Cache: cache}
}

// AvailabilityFilter narrows the available-rooms query. Zero values mean
// "no filter".
type AvailabilityFilter struct {
	RoomTypeID  uint
	MinPrice    float64
	MaxPrice    float64
	Search      string // room-number substring
	ExcludeIDs  []uint // rooms already selected in the current wizard session
}

// RoomTypeGroup is the availability list grouped by room type for display;
// the group price is the type's base price, individual rooms keep their own
// effective rate.
type RoomTypeGroup struct {
	RoomType models.RoomType `json:"roomType"`
	Rooms    []models.Room   `json:"rooms"`
}

// effectiveRate is the SQL twin of models.Room.Rate.
const effectiveRate = "COALESCE(NULLIF(rooms.price_per_night, 0), room_types.base_price)"

// Available lists rooms sellable for the given date range: status permits
// sale and no booking room of a live booking overlaps [checkIn, checkOut).
func (s *RoomService) Available(ctx context.Context, checkIn, checkOut time.Time, filter AvailabilityFilter) ([]RoomTypeGroup, error) {
	checkIn = utils.MidnightOf(checkIn)
	checkOut = utils.MidnightOf(checkOut)
	if !checkOut.After(checkIn) {
		return nil, Validationf("check-out date must be after check-in date")
	}

	cacheKey := availabilityCacheKey(checkIn, checkOut, filter)
	var cached []RoomTypeGroup
	if s.Cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	overlapping := s.DB.WithContext(ctx).
		Model(&models.BookingRoom{}).
		Select("booking_rooms.room_id").
		Joins("JOIN bookings ON bookings.id = booking_rooms.booking_id AND bookings.deleted_at IS NULL").
		Where("booking_rooms.deleted_at IS NULL").
		Where("bookings.status IN ?", []string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Where("booking_rooms.status IN ?", []string{models.BookingRoomStatusReserved, models.BookingRoomStatusCheckedIn}).
		Where("booking_rooms.check_in_date < ? AND booking_rooms.check_out_date > ?", checkOut, checkIn)

	q := s.DB.WithContext(ctx).
		Model(&models.Room{}).
		Preload("RoomType").
		Joins("LEFT JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.status = ?", models.RoomStatusAvailable).
		Where("rooms.id NOT IN (?)", overlapping)

	if filter.RoomTypeID != 0 {
		q = q.Where("rooms.room_type_id = ?", filter.RoomTypeID)
	}
	if filter.MinPrice > 0 {
		q = q.Where(effectiveRate+" >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where(effectiveRate+" <= ?", filter.MaxPrice)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		q = q.Where("rooms.room_number LIKE ?", "%"+term+"%")
	}
	if len(filter.ExcludeIDs) > 0 {
		q = q.Where("rooms.id NOT IN ?", filter.ExcludeIDs)
	}

	var rooms []models.Room
	if err := q.Order("rooms.room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}

	groups := GroupRoomsByType(rooms)
	s.Cache.Set(ctx, cacheKey, groups)
	return groups, nil
}

// GroupRoomsByType buckets rooms under their room type, preserving the room
// order within each bucket.
func GroupRoomsByType(rooms []models.Room) []RoomTypeGroup {
	groups := []RoomTypeGroup{}
	index := map[uint]int{}
	for _, room := range rooms {
		var typeID uint
		if room.RoomTypeID != nil {
			typeID = *room.RoomTypeID
		}
		i, ok := index[typeID]
		if !ok {
			i = len(groups)
			index[typeID] = i
			groups = append(groups, RoomTypeGroup{RoomType: room.RoomType, Rooms: []models.Room{}})
		}
		groups[i].Rooms = append(groups[i].Rooms, room)
	}
	return groups
}

func availabilityCacheKey(checkIn, checkOut time.Time, f AvailabilityFilter) string {
	return fmt.Sprintf("availability:%s:%s:%d:%.0f:%.0f:%s:%v",
		checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"),
		f.RoomTypeID, f.MinPrice, f.MaxPrice, strings.TrimSpace(f.Search), f.ExcludeIDs)
}

// RoomByID loads one room with its type.
func (s *RoomService) RoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

// List returns all rooms with their types, optionally filtered by status.
func (s *RoomService) List(ctx context.Context, status string) ([]models.Room, error) {
	q := s.DB.WithContext(ctx).Preload("RoomType")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rooms []models.Room
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

type RoomInput struct {
	RoomTypeID    *uint   `json:"roomTypeId"`
	RoomNumber    string  `json:"roomNumber"`
	Floor         string  `json:"floor"`
	Status        string  `json:"status"`
	PricePerNight float64 `json:"pricePerNight"`
	Description   string  `json:"description"`
}

func validRoomStatus(status string) bool {
	switch status {
	case models.RoomStatusAvailable, models.RoomStatusOccupied,
		models.RoomStatusMaintenance, models.RoomStatusCleaning:
		return true
	}
	return false
}

// Create persists a room after checking number and type.
func (s *RoomService) Create(ctx context.Context, in RoomInput) (*models.Room, error) {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if in.RoomNumber == "" {
		return nil, Validationf("room number is required")
	}
	if in.Status == "" {
		in.Status = models.RoomStatusAvailable
	}
	if !validRoomStatus(in.Status) {
		return nil, Validationf("unknown room status %q", in.Status)
	}
	if in.RoomTypeID != nil {
		var rt models.RoomType
		if err := s.DB.WithContext(ctx).First(&rt, *in.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, Validationf("room type %d does not exist", *in.RoomTypeID)
			}
			return nil, fmt.Errorf("failed to check room type: %w", err)
		}
	}

	room := models.Room{
		RoomTypeID:    in.RoomTypeID,
		RoomNumber:    in.RoomNumber,
		Floor:         in.Floor,
		Status:        in.Status,
		PricePerNight: in.PricePerNight,
		Description:   in.Description,
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, Conflictf("room number %q already exists", room.RoomNumber)
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.Cache.Invalidate(ctx, "availability:")
	return s.RoomByID(ctx, room.ID)
}

// Update applies a partial update (status changes included) to a room.
func (s *RoomService) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.Room, error) {
	// Never let a payload rewrite identity or audit columns.
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")
	delete(updates, "deleted_at")

	if status, ok := updates["status"].(string); ok && !validRoomStatus(status) {
		return nil, Validationf("unknown room status %q", status)
	}

	room, err := s.RoomByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return room, nil
	}

	if err := s.DB.WithContext(ctx).Model(room).Updates(updates).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, Conflictf("room number already exists")
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}

	s.Cache.Invalidate(ctx, "availability:")
	return s.RoomByID(ctx, id)
}

// Delete removes a room that has no live booking rooms.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	var live int64
	if err := s.DB.WithContext(ctx).Model(&models.BookingRoom{}).
		Where("room_id = ? AND status IN ?", id,
			[]string{models.BookingRoomStatusReserved, models.BookingRoomStatusCheckedIn}).
		Count(&live).Error; err != nil {
		return fmt.Errorf("failed to check room usage: %w", err)
	}
	if live > 0 {
		return Conflictf("room has active bookings and cannot be deleted")
	}

	res := s.DB.WithContext(ctx).Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	s.Cache.Invalidate(ctx, "availability:")
	return nil
}

// RoomTypes lists the reference data the booking flow fetches per session.
func (s *RoomService) RoomTypes(ctx context.Context) ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.WithContext(ctx).Order("base_price ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	return types, nil
}

// CreateRoomType adds a room type to the catalog.
func (s *RoomService) CreateRoomType(ctx context.Context, rt models.RoomType) (*models.RoomType, error) {
	if utils.IsEmpty(rt.Name) {
		return nil, Validationf("room type name is required")
	}
	if rt.BasePrice <= 0 {
		return nil, Validationf("base price must be positive")
	}
	if err := s.DB.WithContext(ctx).Create(&rt).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, Conflictf("room type %q already exists", rt.Name)
		}
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}
	return &rt, nil
}
