package controllers

import (
	"context"
	"errors"
	"testing"

	"hotel-frontdesk/services"
)

type fakeSessions struct {
	sessions map[string]*services.BookingSession
}

func (f *fakeSessions) Get(_ context.Context, id string) (*services.BookingSession, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return sess, nil
}

func TestAvailabilityExclusions(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{sessions: map[string]*services.BookingSession{
		"s1": {
			ID: "s1",
			Rooms: []services.SelectedRoom{
				{RoomID: 3, RoomNumber: "103"},
				{RoomID: 5, RoomNumber: "105"},
			},
		},
		"empty": {ID: "empty"},
	}}
	ctx := context.Background()

	ids, err := availabilityExclusions(ctx, sessions, "s1")
	if err != nil {
		t.Fatalf("availabilityExclusions: %v", err)
	}
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 5 {
		t.Fatalf("excluded ids = %v, want [3 5]", ids)
	}

	// No session id means no exclusions, not an error.
	ids, err = availabilityExclusions(ctx, sessions, "")
	if err != nil || ids != nil {
		t.Fatalf("no session id: ids=%v err=%v, want nil/nil", ids, err)
	}

	// A session with no rooms excludes nothing.
	ids, err = availabilityExclusions(ctx, sessions, "empty")
	if err != nil || len(ids) != 0 {
		t.Fatalf("empty session: ids=%v err=%v, want empty/nil", ids, err)
	}

	// A stale session id fails loudly.
	if _, err := availabilityExclusions(ctx, sessions, "gone"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("stale session id: err = %v, want ErrNotFound", err)
	}
}
