package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemorySessionStoreExpiresAbandonedSessions(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore()
	store.ttl = 30 * time.Minute
	store.now = func() time.Time { return clock }
	ctx := context.Background()

	if err := store.Save(ctx, &BookingSession{ID: "s1", Step: StepCustomer}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	clock = clock.Add(29 * time.Minute)
	if _, err := store.Get(ctx, "s1"); err != nil {
		t.Fatalf("Get inside TTL: %v", err)
	}

	clock = clock.Add(2 * time.Minute)
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get past TTL: err = %v, want ErrNotFound", err)
	}
	// The expired entry is gone, not resurrectable.
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired entry came back: %v", err)
	}
}

func TestMemorySessionStoreSaveRefreshesTTL(t *testing.T) {
	t.Parallel()

	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore()
	store.ttl = 30 * time.Minute
	store.now = func() time.Time { return clock }
	ctx := context.Background()

	store.Save(ctx, &BookingSession{ID: "s1", Step: StepCustomer})

	// Touch the session just before it would expire.
	clock = clock.Add(25 * time.Minute)
	store.Save(ctx, &BookingSession{ID: "s1", Step: StepRooms})

	clock = clock.Add(25 * time.Minute)
	sess, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get after refresh: %v", err)
	}
	if sess.Step != StepRooms {
		t.Fatalf("step = %q, want %q", sess.Step, StepRooms)
	}
}
