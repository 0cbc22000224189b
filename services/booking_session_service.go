package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hotel-frontdesk/models"
	"hotel-frontdesk/utils"
)

// Small lookups the wizard needs from the rest of the system. Kept as
// interfaces so the engine stays a pure state machine.
type customerFinder interface {
	CustomerByID(ctx context.Context, id uint) (*models.Customer, error)
}

type roomFinder interface {
	RoomByID(ctx context.Context, id uint) (*models.Room, error)
}

type depositRater interface {
	DepositPercentage(ctx context.Context) float64
}

type bookingCreator interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
}

// BookingSessionService drives the 3-step booking wizard:
// CUSTOMER -> ROOMS -> SUMMARY, forward transitions guarded, backward
// unconditional, terminal submit from SUMMARY. All state lives in the
// SessionStore; nothing touches the booking tables until Submit.
type BookingSessionService struct {
	Store     SessionStore
	Customers customerFinder
	Rooms     roomFinder
	Settings  depositRater
	Bookings  bookingCreator

	MaxRooms int
	Now      func() time.Time
}

func NewBookingSessionService(store SessionStore, customers customerFinder, rooms roomFinder, settings depositRater, bookings bookingCreator) *BookingSessionService {
	return &BookingSessionService{
		Store:     store,
		Customers: customers,
		Rooms:     rooms,
		Settings:  settings,
		Bookings:  bookings,
		MaxRooms:  utils.EnvIntOrDefault("MAX_ROOMS_PER_BOOKING", 5),
		Now:       time.Now,
	}
}

// Open starts a fresh wizard: empty customer, no rooms, check-in today and
// check-out tomorrow, deposit unconfirmed. There is never a retained draft.
func (s *BookingSessionService) Open(ctx context.Context) (*BookingSession, error) {
	today := utils.MidnightOf(s.Now())
	sess := &BookingSession{
		ID:           uuid.NewString(),
		Step:         StepCustomer,
		Rooms:        []SelectedRoom{},
		CheckInDate:  today,
		CheckOutDate: today.AddDate(0, 0, 1),
		CreatedAt:    s.Now(),
		UpdatedAt:    s.Now(),
	}
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get loads a session by id.
func (s *BookingSessionService) Get(ctx context.Context, id string) (*BookingSession, error) {
	return s.Store.Get(ctx, id)
}

// Close discards a session without submitting.
func (s *BookingSessionService) Close(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}

// SelectCustomer binds an existing customer to the session. The record is
// resolved against the database, not a search page, so stale ids fail loudly.
func (s *BookingSessionService) SelectCustomer(ctx context.Context, sessionID string, customerID uint) (*BookingSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cust, err := s.Customers.CustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	sess.Customer = &SessionCustomer{
		ID:           cust.ID,
		FullName:     cust.FullName,
		Phone:        cust.Phone,
		Email:        cust.Email,
		IdentityCard: cust.IdentityCard,
		Address:      cust.Address,
	}
	return s.save(ctx, sess)
}

// SetDates updates the stay range and recomputes every selected room's
// nights and totals against it.
func (s *BookingSessionService) SetDates(ctx context.Context, sessionID string, checkIn, checkOut time.Time) (*BookingSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	checkIn = utils.MidnightOf(checkIn)
	checkOut = utils.MidnightOf(checkOut)
	if !checkOut.After(checkIn) {
		return nil, Validationf("check-out date must be after check-in date")
	}

	sess.CheckInDate = checkIn
	sess.CheckOutDate = checkOut
	nights := utils.Nights(checkIn, checkOut)
	for i := range sess.Rooms {
		sess.Rooms[i].CheckInDate = checkIn
		sess.Rooms[i].CheckOutDate = checkOut
		sess.Rooms[i].Nights = nights
		sess.Rooms[i].TotalPrice = utils.RoomTotal(sess.Rooms[i].PricePerNight, nights)
	}
	return s.save(ctx, sess)
}

// AddRoom converts a room into a SelectedRoom bound to the session's date
// range. A room already selected is rejected, and the selection is capped at
// MaxRooms; both are no-ops on the selection itself.
func (s *BookingSessionService) AddRoom(ctx context.Context, sessionID string, roomID uint, guests int) (*BookingSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.CheckOutDate.After(sess.CheckInDate) {
		return nil, Validationf("check-out date must be after check-in date")
	}
	if sess.HasRoom(roomID) {
		return nil, Validationf("room is already selected")
	}
	if len(sess.Rooms) >= s.MaxRooms {
		return nil, Validationf("cannot select more than %d rooms per booking", s.MaxRooms)
	}

	room, err := s.Rooms.RoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if guests <= 0 {
		guests = 1
	}

	sess.Rooms = append(sess.Rooms, newSelectedRoom(room, sess.CheckInDate, sess.CheckOutDate, guests))
	sess.TotalGuests = totalGuests(sess.Rooms)
	return s.save(ctx, sess)
}

// RemoveRoom drops a room from the selection. Purely local; no server-side
// reservation exists before submit.
func (s *BookingSessionService) RemoveRoom(ctx context.Context, sessionID string, roomID uint) (*BookingSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := sess.Rooms[:0]
	for _, r := range sess.Rooms {
		if r.RoomID != roomID {
			kept = append(kept, r)
		}
	}
	sess.Rooms = kept
	sess.TotalGuests = totalGuests(sess.Rooms)
	return s.save(ctx, sess)
}

// SetDeposit lets the user override the suggested amount, confirm the
// deposit and pick a payment method before submit.
func (s *BookingSessionService) SetDeposit(ctx context.Context, sessionID string, amount *float64, confirmed *bool, method *string) (*BookingSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if amount != nil {
		if *amount < 0 {
			return nil, Validationf("deposit amount cannot be negative")
		}
		sess.Deposit.Amount = *amount
	}
	if confirmed != nil {
		sess.Deposit.Confirmed = *confirmed
	}
	if method != nil {
		sess.Deposit.PaymentMethod = *method
	}
	return s.save(ctx, sess)
}

// SetNotes attaches free-text notes to the session.
func (s *BookingSessionService) SetNotes(ctx context.Context, sessionID, notes string) (*BookingSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.Notes = notes
	return s.save(ctx, sess)
}

// Next advances the wizard one step. Guard failures leave the current step
// unchanged and report a validation error.
func (s *BookingSessionService) Next(ctx context.Context, sessionID string) (*BookingSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch sess.Step {
	case StepCustomer:
		if sess.Customer == nil || sess.Customer.ID == 0 {
			return nil, Validationf("select a customer before continuing")
		}
		sess.Step = StepRooms
	case StepRooms:
		if !sess.CheckOutDate.After(sess.CheckInDate) {
			return nil, Validationf("check-out date must be after check-in date")
		}
		if len(sess.Rooms) == 0 {
			return nil, Validationf("select at least one room before continuing")
		}
		sess.Step = StepSummary
		s.syncDeposit(ctx, sess)
	default:
		return nil, Validationf("already at the last step")
	}
	return s.save(ctx, sess)
}

// Back moves one step backwards, unconditionally.
func (s *BookingSessionService) Back(ctx context.Context, sessionID string) (*BookingSession, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch sess.Step {
	case StepSummary:
		sess.Step = StepRooms
	case StepRooms:
		sess.Step = StepCustomer
	}
	return s.save(ctx, sess)
}

// Submit turns the session into a booking. Only valid from SUMMARY. On
// success the session is discarded; on failure it is kept intact so the user
// can retry without re-entering anything.
func (s *BookingSessionService) Submit(ctx context.Context, sessionID string) (*models.Booking, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Step != StepSummary {
		return nil, Validationf("complete the wizard before submitting")
	}
	if sess.Customer == nil || len(sess.Rooms) == 0 {
		return nil, Validationf("session is missing a customer or rooms")
	}

	input := CreateBookingInput{
		CustomerID:       sess.Customer.ID,
		CheckInDate:      sess.CheckInDate,
		CheckOutDate:     sess.CheckOutDate,
		TotalGuests:      sess.TotalGuests,
		DepositAmount:    sess.Deposit.Amount,
		DepositMethod:    sess.Deposit.PaymentMethod,
		DepositConfirmed: sess.Deposit.Confirmed,
		Notes:            sess.Notes,
	}
	for _, r := range sess.Rooms {
		input.Rooms = append(input.Rooms, RoomSelection{
			RoomID:        r.RoomID,
			Guests:        r.Guests,
			PricePerNight: r.PricePerNight,
		})
	}

	booking, err := s.Bookings.CreateBooking(ctx, input)
	if err != nil {
		return nil, err
	}

	_ = s.Store.Delete(ctx, sessionID)
	return booking, nil
}

// syncDeposit applies the one-way suggestion sync on entering the summary
// step: amount = round(totalAmount * depositPercentage / 100).
func (s *BookingSessionService) syncDeposit(ctx context.Context, sess *BookingSession) {
	pct := s.Settings.DepositPercentage(ctx)
	sess.Deposit.Amount = utils.SuggestedDeposit(sess.TotalAmount(), pct)
}

func (s *BookingSessionService) save(ctx context.Context, sess *BookingSession) (*BookingSession, error) {
	sess.UpdatedAt = s.Now()
	if err := s.Store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// newSelectedRoom is the single adapter from a room record to the wizard's
// canonical SelectedRoom shape; the per-room/base-price fallback lives in
// Room.Rate.
func newSelectedRoom(room *models.Room, checkIn, checkOut time.Time, guests int) SelectedRoom {
	nights := utils.Nights(checkIn, checkOut)
	rate := room.Rate()

	sel := SelectedRoom{
		RoomID:        room.ID,
		RoomNumber:    room.RoomNumber,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Guests:        guests,
		PricePerNight: rate,
		Nights:        nights,
		TotalPrice:    utils.RoomTotal(rate, nights),
	}
	if room.RoomTypeID != nil {
		sel.RoomTypeID = *room.RoomTypeID
	}
	sel.RoomTypeName = room.RoomType.Name
	return sel
}

func totalGuests(rooms []SelectedRoom) int {
	var n int
	for _, r := range rooms {
		n += r.Guests
	}
	return n
}
