package services

import "testing"

func TestUniqueIDs(t *testing.T) {
	t.Parallel()

	got := uniqueIDs([]uint{7, 7, 3, 7, 3, 9})
	if len(got) != 3 || got[0] != 7 || got[1] != 3 || got[2] != 9 {
		t.Fatalf("uniqueIDs = %v, want [7 3 9]", got)
	}
	if got := uniqueIDs(nil); len(got) != 0 {
		t.Fatalf("uniqueIDs(nil) = %v, want empty", got)
	}
	if got := uniqueIDs([]uint{5}); len(got) != 1 || got[0] != 5 {
		t.Fatalf("uniqueIDs single = %v, want [5]", got)
	}
}
