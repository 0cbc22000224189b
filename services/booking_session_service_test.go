package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

type fakeCustomers struct {
	customers map[uint]*models.Customer
}

func (f *fakeCustomers) CustomerByID(_ context.Context, id uint) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

type fakeRooms struct {
	rooms map[uint]*models.Room
}

func (f *fakeRooms) RoomByID(_ context.Context, id uint) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

type fakeSettings struct {
	percentage float64
}

func (f *fakeSettings) DepositPercentage(_ context.Context) float64 {
	return f.percentage
}

type fakeBookings struct {
	created []CreateBookingInput
	err     error
}

func (f *fakeBookings) CreateBooking(_ context.Context, in CreateBookingInput) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &models.Booking{ID: uint(len(f.created)), CustomerID: in.CustomerID}, nil
}

func testRoom(id uint, number string, pricePerNight, basePrice float64) *models.Room {
	typeID := uint(1)
	return &models.Room{
		Model:         gorm.Model{ID: id},
		RoomTypeID:    &typeID,
		RoomNumber:    number,
		Status:        models.RoomStatusAvailable,
		PricePerNight: pricePerNight,
		RoomType:      models.RoomType{Name: "Deluxe", BasePrice: basePrice},
	}
}

func newTestSessionService(bookings *fakeBookings) *BookingSessionService {
	return &BookingSessionService{
		Store: NewMemorySessionStore(),
		Customers: &fakeCustomers{customers: map[uint]*models.Customer{
			7: {ID: 7, FullName: "Nguyễn Văn A", Phone: "0912345678", IdentityCard: "079123456789"},
		}},
		Rooms: &fakeRooms{rooms: map[uint]*models.Room{
			1: testRoom(1, "101", 800000, 600000),
			2: testRoom(2, "102", 0, 500000),
			3: testRoom(3, "103", 700000, 700000),
			4: testRoom(4, "201", 900000, 900000),
		}},
		Settings: &fakeSettings{percentage: 30},
		Bookings: bookings,
		MaxRooms: 3,
		Now: func() time.Time {
			return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		},
	}
}

func TestOpenStartsFromZeroState(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()

	sess, err := svc.Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if sess.Step != StepCustomer {
		t.Errorf("new session step = %q, want %q", sess.Step, StepCustomer)
	}
	if sess.Customer != nil || len(sess.Rooms) != 0 {
		t.Error("new session should have no customer and no rooms")
	}
	wantIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !sess.CheckInDate.Equal(wantIn) || !sess.CheckOutDate.Equal(wantIn.AddDate(0, 0, 1)) {
		t.Errorf("default dates = %v / %v, want today/tomorrow", sess.CheckInDate, sess.CheckOutDate)
	}
}

func TestNextGuardsCustomerStep(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	if _, err := svc.Next(ctx, sess.ID); !IsValidation(err) {
		t.Fatalf("Next without a customer: err = %v, want validation error", err)
	}
	got, _ := svc.Get(ctx, sess.ID)
	if got.Step != StepCustomer {
		t.Fatalf("failed guard advanced the step to %q", got.Step)
	}
}

func TestNextGuardsRoomsStep(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	if _, err := svc.SelectCustomer(ctx, sess.ID, 7); err != nil {
		t.Fatalf("SelectCustomer: %v", err)
	}
	if _, err := svc.Next(ctx, sess.ID); err != nil {
		t.Fatalf("Next to rooms: %v", err)
	}
	if _, err := svc.Next(ctx, sess.ID); !IsValidation(err) {
		t.Fatalf("Next with no rooms: err = %v, want validation error", err)
	}
	got, _ := svc.Get(ctx, sess.ID)
	if got.Step != StepRooms {
		t.Fatalf("failed guard advanced the step to %q", got.Step)
	}
}

func TestAddRoomDeduplicatesAndCaps(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	if _, err := svc.AddRoom(ctx, sess.ID, 1, 2); err != nil {
		t.Fatalf("AddRoom: %v", err)
	}
	if _, err := svc.AddRoom(ctx, sess.ID, 1, 2); !IsValidation(err) {
		t.Fatalf("duplicate AddRoom: err = %v, want validation error", err)
	}

	got, _ := svc.Get(ctx, sess.ID)
	if len(got.Rooms) != 1 {
		t.Fatalf("duplicate add changed the selection: %d rooms", len(got.Rooms))
	}

	if _, err := svc.AddRoom(ctx, sess.ID, 2, 1); err != nil {
		t.Fatalf("AddRoom second: %v", err)
	}
	if _, err := svc.AddRoom(ctx, sess.ID, 3, 1); err != nil {
		t.Fatalf("AddRoom third: %v", err)
	}
	if _, err := svc.AddRoom(ctx, sess.ID, 4, 1); !IsValidation(err) {
		t.Fatalf("AddRoom over cap: err = %v, want validation error", err)
	}
	got, _ = svc.Get(ctx, sess.ID)
	if len(got.Rooms) != 3 {
		t.Fatalf("cap breach changed the selection: %d rooms", len(got.Rooms))
	}
}

func TestAddRoomNormalizesRate(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	// Room 1 has its own nightly price; room 2 falls back to the type's
	// base price.
	svc.AddRoom(ctx, sess.ID, 1, 2)
	got, _ := svc.AddRoom(ctx, sess.ID, 2, 1)

	if got.Rooms[0].PricePerNight != 800000 {
		t.Errorf("room 1 rate = %v, want 800000", got.Rooms[0].PricePerNight)
	}
	if got.Rooms[1].PricePerNight != 500000 {
		t.Errorf("room 2 rate = %v, want base price 500000", got.Rooms[1].PricePerNight)
	}
	if got.TotalGuests != 3 {
		t.Errorf("total guests = %d, want 3", got.TotalGuests)
	}
}

func TestSetDatesRecomputesRoomTotals(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()
	sess, _ := svc.Open(ctx)
	svc.AddRoom(ctx, sess.ID, 1, 2)

	got, err := svc.SetDates(ctx, sess.ID,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("SetDates: %v", err)
	}
	if got.Rooms[0].Nights != 3 || got.Rooms[0].TotalPrice != 2400000 {
		t.Fatalf("room after SetDates = %d nights / %v total, want 3 / 2400000",
			got.Rooms[0].Nights, got.Rooms[0].TotalPrice)
	}

	if _, err := svc.SetDates(ctx, sess.ID,
		time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)); !IsValidation(err) {
		t.Fatalf("inverted SetDates: err = %v, want validation error", err)
	}
}

func TestEnteringSummarySyncsDeposit(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	svc.SelectCustomer(ctx, sess.ID, 7)
	svc.Next(ctx, sess.ID)
	svc.SetDates(ctx, sess.ID,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC))
	svc.AddRoom(ctx, sess.ID, 1, 2) // 800k x 2 nights
	svc.AddRoom(ctx, sess.ID, 2, 1) // 500k x 2 nights

	got, err := svc.Next(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Next to summary: %v", err)
	}
	if got.Step != StepSummary {
		t.Fatalf("step = %q, want %q", got.Step, StepSummary)
	}
	// 30% of 2,600,000.
	if got.Deposit.Amount != 780000 {
		t.Fatalf("synced deposit = %v, want 780000", got.Deposit.Amount)
	}

	// Going back and re-entering the summary re-syncs over any override.
	amount := 100000.0
	svc.SetDeposit(ctx, sess.ID, &amount, nil, nil)
	svc.Back(ctx, sess.ID)
	got, _ = svc.Next(ctx, sess.ID)
	if got.Deposit.Amount != 780000 {
		t.Fatalf("re-entered deposit = %v, want 780000", got.Deposit.Amount)
	}
}

func TestSubmitOnlyFromSummary(t *testing.T) {
	t.Parallel()
	bookings := &fakeBookings{}
	svc := newTestSessionService(bookings)
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	if _, err := svc.Submit(ctx, sess.ID); !IsValidation(err) {
		t.Fatalf("Submit from first step: err = %v, want validation error", err)
	}
	if len(bookings.created) != 0 {
		t.Fatal("premature submit reached the booking service")
	}
}

func TestSubmitCreatesBookingAndDiscardsSession(t *testing.T) {
	t.Parallel()
	bookings := &fakeBookings{}
	svc := newTestSessionService(bookings)
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	svc.SelectCustomer(ctx, sess.ID, 7)
	svc.Next(ctx, sess.ID)
	svc.AddRoom(ctx, sess.ID, 1, 2)
	svc.Next(ctx, sess.ID)

	confirmed := true
	method := "cash"
	svc.SetDeposit(ctx, sess.ID, nil, &confirmed, &method)

	booking, err := svc.Submit(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if booking.CustomerID != 7 {
		t.Errorf("booking customer = %d, want 7", booking.CustomerID)
	}
	if len(bookings.created) != 1 {
		t.Fatalf("CreateBooking calls = %d, want 1", len(bookings.created))
	}
	in := bookings.created[0]
	if len(in.Rooms) != 1 || in.Rooms[0].RoomID != 1 || in.Rooms[0].PricePerNight != 800000 {
		t.Errorf("unexpected submitted rooms: %+v", in.Rooms)
	}
	if !in.DepositConfirmed || in.DepositMethod != "cash" {
		t.Errorf("deposit not carried over: %+v", in)
	}

	if _, err := svc.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("session after submit: err = %v, want ErrNotFound", err)
	}
}

func TestFailedSubmitKeepsSession(t *testing.T) {
	t.Parallel()
	bookings := &fakeBookings{err: Conflictf("room 101 is no longer available for the selected dates")}
	svc := newTestSessionService(bookings)
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	svc.SelectCustomer(ctx, sess.ID, 7)
	svc.Next(ctx, sess.ID)
	svc.AddRoom(ctx, sess.ID, 1, 2)
	svc.Next(ctx, sess.ID)

	if _, err := svc.Submit(ctx, sess.ID); !IsConflict(err) {
		t.Fatalf("Submit: err = %v, want conflict", err)
	}
	got, err := svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("session gone after failed submit: %v", err)
	}
	if got.Step != StepSummary || len(got.Rooms) != 1 {
		t.Fatalf("session mutated after failed submit: %+v", got)
	}
}

func TestBackIsUnconditional(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	svc.SelectCustomer(ctx, sess.ID, 7)
	svc.Next(ctx, sess.ID)

	got, err := svc.Back(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if got.Step != StepCustomer {
		t.Fatalf("step after Back = %q, want %q", got.Step, StepCustomer)
	}
	// Back at the first step is a no-op, not an error.
	got, err = svc.Back(ctx, sess.ID)
	if err != nil || got.Step != StepCustomer {
		t.Fatalf("Back at first step: step=%q err=%v", got.Step, err)
	}
}

func TestSelectedRoomIDs(t *testing.T) {
	t.Parallel()
	svc := newTestSessionService(&fakeBookings{})
	ctx := context.Background()
	sess, _ := svc.Open(ctx)

	svc.AddRoom(ctx, sess.ID, 1, 2)
	got, _ := svc.AddRoom(ctx, sess.ID, 3, 1)

	ids := got.SelectedRoomIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("SelectedRoomIDs() = %v, want [1 3]", ids)
	}
}
