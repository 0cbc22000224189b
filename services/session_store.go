package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel-frontdesk/utils"
)

// Wizard steps, linear, forward/backward only.
const (
	StepCustomer = "CUSTOMER"
	StepRooms    = "ROOMS"
	StepSummary  = "SUMMARY"
)

// SessionCustomer is the normalized customer selection held by a session.
type SessionCustomer struct {
	ID           uint   `json:"id"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IdentityCard string `json:"identityCard"`
	Address      string `json:"address"`
}

// SelectedRoom is a room bound to a stay within a session: transient, derived
// entirely from the room record and the session's date range.
type SelectedRoom struct {
	RoomID        uint      `json:"roomId"`
	RoomNumber    string    `json:"roomNumber"`
	RoomTypeID    uint      `json:"roomTypeId"`
	RoomTypeName  string    `json:"roomTypeName"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	Guests        int       `json:"guests"`
	PricePerNight float64   `json:"pricePerNight"`
	Nights        int       `json:"nights"`
	TotalPrice    float64   `json:"totalPrice"`
}

// SessionDeposit mirrors the summary step's deposit block. Amount is one-way
// synced to the suggestion whenever the summary step is entered; the user may
// override it afterwards, before submit.
type SessionDeposit struct {
	Amount        float64 `json:"amount"`
	Confirmed     bool    `json:"confirmed"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// BookingSession is the whole wizard state. It exists only between opening
// the booking modal and a successful submit; nothing is persisted to the
// booking tables until submit succeeds.
type BookingSession struct {
	ID           string           `json:"id"`
	Step         string           `json:"step"`
	Customer     *SessionCustomer `json:"customer,omitempty"`
	Rooms        []SelectedRoom   `json:"rooms"`
	CheckInDate  time.Time        `json:"checkInDate"`
	CheckOutDate time.Time        `json:"checkOutDate"`
	TotalGuests  int              `json:"totalGuests"`
	Deposit      SessionDeposit   `json:"deposit"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// TotalAmount sums the selected rooms' totals. Recomputed, never stored.
func (s *BookingSession) TotalAmount() float64 {
	var total float64
	for _, r := range s.Rooms {
		total += r.TotalPrice
	}
	return total
}

// HasRoom reports whether a room id is already selected.
func (s *BookingSession) HasRoom(roomID uint) bool {
	for _, r := range s.Rooms {
		if r.RoomID == roomID {
			return true
		}
	}
	return false
}

// SelectedRoomIDs returns the ids to exclude from availability lists.
func (s *BookingSession) SelectedRoomIDs() []uint {
	ids := make([]uint, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		ids = append(ids, r.RoomID)
	}
	return ids
}

// SessionStore persists wizard sessions. Get returns ErrNotFound for unknown
// or expired ids.
type SessionStore interface {
	Get(ctx context.Context, id string) (*BookingSession, error)
	Save(ctx context.Context, sess *BookingSession) error
	Delete(ctx context.Context, id string) error
}

// NewSessionStore picks the Redis-backed store when a client is available and
// falls back to the in-memory store otherwise.
func NewSessionStore(client *redis.Client) SessionStore {
	ttl := time.Duration(utils.EnvIntOrDefault("SESSION_TTL_MIN", 120)) * time.Minute
	if client != nil {
		return &RedisSessionStore{client: client, ttl: ttl}
	}
	return NewMemorySessionStore()
}

// RedisSessionStore keeps sessions as JSON values with a TTL, so abandoned
// wizards expire on their own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *RedisSessionStore) key(id string) string { return "frontdesk:session:" + id }

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*BookingSession, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess BookingSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *BookingSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sess.ID), raw, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

// MemorySessionStore is the single-process fallback, also used by tests.
// Entries carry the same TTL as the Redis store, refreshed on every Save and
// enforced lazily on Get, so abandoned wizards don't accumulate forever.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memorySession
}

type memorySession struct {
	sess    *BookingSession
	savedAt time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      time.Duration(utils.EnvIntOrDefault("SESSION_TTL_MIN", 120)) * time.Minute,
		now:      time.Now,
		sessions: make(map[string]memorySession),
	}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.ttl > 0 && s.now().Sub(entry.savedAt) > s.ttl {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	cp := *entry.sess
	cp.Rooms = append([]SelectedRoom(nil), entry.sess.Rooms...)
	return &cp, nil
}

func (s *MemorySessionStore) Save(_ context.Context, sess *BookingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	cp.Rooms = append([]SelectedRoom(nil), sess.Rooms...)
	s.sessions[sess.ID] = memorySession{sess: &cp, savedAt: s.now()}
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
